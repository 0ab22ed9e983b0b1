package folders

// This module contains the path computations shared by the
// command: the layout of a suite directory and the working
// directories of the tasks the generated suite runs.

import (
	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/fsutil"
)

// SubDirs are the directories created inside every new suite.
var SubDirs = []fsutil.Path{"bin", "control", "doc", "inc"}

// SuiteDir returns the directory of a named suite.
func SuiteDir(basedir fsutil.Path, name string) fsutil.Path {
	return basedir.Join(name)
}

// ConfigFile returns the config.json of a named suite.
func ConfigFile(basedir fsutil.Path, name string) fsutil.Path {
	return SuiteDir(basedir, name).Join("config.json")
}

// SuiteFile returns the suite.rc of a named suite.
func SuiteFile(basedir fsutil.Path, name string) fsutil.Path {
	return SuiteDir(basedir, name).Join("suite.rc")
}

// WRFWorkDir is where the suite runs real.exe and wrf.exe.
func WRFWorkDir(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WRFRunDir)
}

// ObsprocWorkDir is where the suite runs obsproc.exe, one
// directory per observation file.
func ObsprocWorkDir(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WorkDir).Join("obsproc").Join(fs.ObsFilename)
}

// WRFDAWorkDir is where the suite runs the data assimilation.
func WRFDAWorkDir(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WorkDir).Join("wrfda")
}

// WPSWorkDir is where the suite runs the preprocessing system.
func WPSWorkDir(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WorkDir).Join("wps")
}

// UngribExe returns the path of the ungrib.exe binary inside
// the WPS installation directory.
func UngribExe(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WPSDir).Join("ungrib").Join("ungrib.exe")
}

// MetgridExe returns the path of the metgrid.exe binary inside
// the WPS installation directory.
func MetgridExe(fs conf.FilesystemConf) fsutil.Path {
	return fsutil.Path(fs.WPSDir).Join("metgrid").Join("metgrid.exe")
}
