package fsutil

import (
	"fmt"
	"log"
	"os"
)

// Transaction groups a sequence of filesystem effects
// under a common root directory. The first operation that
// fails saves its error in Err and turns every following
// operation into a no-op, so call sites can run a whole
// sequence and check Err once at the end.
type Transaction struct {
	Root Path
	Log  *log.Logger
	Err  error
}

func (tr *Transaction) logf(format string, args ...interface{}) {
	if tr.Log != nil {
		tr.Log.Printf(format, args...)
	}
}

// Exists reports whether a file or directory exists under Root.
func (tr *Transaction) Exists(file Path) bool {
	if tr.Err != nil {
		return false
	}
	_, err := os.Stat(tr.Root.JoinP(file).String())
	if !os.IsNotExist(err) && err != nil {
		tr.Err = fmt.Errorf("Exists `%s`: Stat error: %w", file.String(), err)
	}
	return err == nil
}

// MkDir creates a directory under Root, together with any
// missing parent. An already existing directory is not an error.
func (tr *Transaction) MkDir(dir Path) {
	if tr.Err != nil {
		return
	}

	err := os.MkdirAll(tr.Root.JoinP(dir).String(), os.FileMode(0755))
	if err != nil {
		tr.Err = fmt.Errorf("MkDir `%s`: MkdirAll error: %w", dir.String(), err)
		return
	}
	tr.logf("\tMkDir %s\n", tr.Root.JoinP(dir).String())
}

// Save writes content to a file under Root, creating the file
// if missing and truncating any previous content.
func (tr *Transaction) Save(targetPath Path, content []byte) {
	if tr.Err != nil {
		return
	}

	err := os.WriteFile(
		tr.Root.JoinP(targetPath).String(),
		content,
		os.FileMode(0664),
	)
	if err != nil {
		tr.Err = fmt.Errorf("Save to `%s`: WriteFile error: %w", targetPath.String(), err)
		return
	}
	tr.logf("\tSave %s\n", tr.Root.JoinP(targetPath).String())
}
