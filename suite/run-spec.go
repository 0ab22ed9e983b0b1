package suite

import (
	"fmt"
	"os"
	"strings"
)

// Method is how the scheduler submits a task's job.
type Method string

const (
	// Background runs the task's script directly on the suite host.
	Background Method = "background"
	// Slurm submits the task's script as a SLURM batch job.
	Slurm Method = "slurm"
)

// RunSpec is the resolved execution of one task: the submission
// method, the script to run and the batch directives, if any, to
// submit the job with.
type RunSpec struct {
	Method     Method
	Command    string
	Directives string
}

// directiveIndent aligns every directive line under the
// [[[directives]]] section of a task block.
const directiveIndent = "\n      "

// ResolveRunSpec selects how a task runs. A configured, non empty
// directivesFile selects the slurm method: slurmCommand becomes the
// task script and the directives are the verbatim content of the
// file, re-indented to sit inside the task block. Otherwise the task
// runs command in the background, with no directives. An absent
// directivesFile configuration key reaches here as an empty string,
// so absent and empty resolve identically.
//
// An unreadable directivesFile is an error: requested batch
// directives cannot be silently dropped.
func ResolveRunSpec(directivesFile, command, slurmCommand string) (RunSpec, error) {
	if directivesFile == "" {
		return RunSpec{Method: Background, Command: command}, nil
	}

	content, err := os.ReadFile(directivesFile)
	if err != nil {
		return RunSpec{}, fmt.Errorf("ResolveRunSpec: cannot read directives `%s`: %w", directivesFile, err)
	}

	return RunSpec{
		Method:     Slurm,
		Command:    slurmCommand,
		Directives: strings.ReplaceAll(string(content), "\n", directiveIndent),
	}, nil
}
