package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/folders"
	"github.com/Sytse47/wrfpy/fsutil"
	"github.com/Sytse47/wrfpy/suite"
)

// Version of the command
var Version string = "development"

const usage = `
Usage: wrfpy [-v] (--init | --create) --suitename <name> [--basedir <dir>]

--init initialize the directory structure and a starter config.json
for a new suite. An existing config.json is never overwritten, so the
option is safe to repeat.
--create read <basedir>/<suitename>/config.json and write the cylc
suite.rc definition next to it, replacing any previous one.

Only one of '--init' and '--create' is allowed.

--suitename name of the suite. Required.
--basedir directory containing the suites. Default is ~/cylc-suites.

-v print version to stdout
`

func failed(err error) {
	log.Fatalf("%s\n\n%s\n", err, usage)
}

func syntaxInvalid(reason string) {
	failed(errors.New(reason))
}

func main() {
	showver := flag.Bool("v", false, "")
	initF := flag.Bool("init", false, "")
	createF := flag.Bool("create", false, "")
	basedirF := flag.String("basedir", "", "")
	suitenameF := flag.String("suitename", "", "")

	flag.Parse()

	if showver != nil && *showver {
		fmt.Printf("wrfpy ver. %s\n", Version)
		return
	}

	if *initF == *createF {
		syntaxInvalid("Only one of '--init' and '--create' is allowed.")
	}

	if *suitenameF == "" {
		syntaxInvalid("A suite name is required.")
	}

	basedir := fsutil.Path(*basedirF)
	if basedir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			failed(fmt.Errorf("cannot locate the default suites directory: %w", err))
		}
		basedir = fsutil.Path(home).Join("cylc-suites")
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *initF {
		initSuite(logger, basedir, *suitenameF)
		return
	}
	createSuite(logger, basedir, *suitenameF)
}

// initSuite scaffolds a new suite directory. Re-running it on an
// existing suite is harmless.
func initSuite(logger *log.Logger, basedir fsutil.Path, name string) {
	tr := fsutil.Transaction{Root: folders.SuiteDir(basedir, name), Log: logger}
	suite.CreateStructure(&tr)
	if tr.Err != nil {
		logger.Fatal(tr.Err)
	}
	logger.Printf("suite `%s` initialized in %s\n", name, tr.Root.String())
}

// createSuite renders the suite definition from the suite's
// config.json and writes it next to it. Rendering failures leave any
// previously written suite.rc untouched.
func createSuite(logger *log.Logger, basedir fsutil.Path, name string) {
	config, err := conf.Read(folders.ConfigFile(basedir, name).String())
	if err != nil {
		logger.Fatal(err)
	}

	text, err := suite.Render(config)
	if err != nil {
		logger.Fatal(err)
	}

	tr := fsutil.Transaction{Root: folders.SuiteDir(basedir, name), Log: logger}
	tr.Save("suite.rc", []byte(text))
	if tr.Err != nil {
		logger.Fatal(tr.Err)
	}
	logger.Printf("suite definition written to %s\n", folders.SuiteFile(basedir, name).String())
}
