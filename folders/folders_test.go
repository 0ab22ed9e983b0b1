package folders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/fsutil"
)

func TestSuiteLayout(t *testing.T) {
	basedir := fsutil.Path("/home/wrf/cylc-suites")

	assert.Equal(t, "/home/wrf/cylc-suites/test", SuiteDir(basedir, "test").String())
	assert.Equal(t, "/home/wrf/cylc-suites/test/config.json", ConfigFile(basedir, "test").String())
	assert.Equal(t, "/home/wrf/cylc-suites/test/suite.rc", SuiteFile(basedir, "test").String())
	assert.Equal(t, []fsutil.Path{"bin", "control", "doc", "inc"}, SubDirs)
}

func TestWorkDirs(t *testing.T) {
	fs := conf.FilesystemConf{
		WorkDir:     "/data/run",
		WRFRunDir:   "/data/run/wrf",
		WPSDir:      "/opt/wps",
		ObsFilename: "obs.2024",
	}

	assert.Equal(t, "/data/run/wrf", WRFWorkDir(fs).String())
	assert.Equal(t, "/data/run/obsproc/obs.2024", ObsprocWorkDir(fs).String())
	assert.Equal(t, "/data/run/wrfda", WRFDAWorkDir(fs).String())
	assert.Equal(t, "/data/run/wps", WPSWorkDir(fs).String())
}

func TestWPSBinaries(t *testing.T) {
	fs := conf.FilesystemConf{WPSDir: "/opt/wps"}

	assert.Equal(t, "/opt/wps/ungrib/ungrib.exe", UngribExe(fs).String())
	assert.Equal(t, "/opt/wps/metgrid/metgrid.exe", MetgridExe(fs).String())
}
