package suite

import (
	"fmt"

	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/folders"
)

const runtimeRootTemplate = `[runtime]
  [[root]] # suite defaults
    [[[job submission]]]
      method = background
`

// RuntimeRoot renders the defaults every task inherits.
func RuntimeRoot() (string, error) {
	return runtimeRootTemplate, nil
}

const initTaskTemplate = `
  [[<% .Name %>]]
    script = """
<% .Command %>
"""
`

type initTaskData struct {
	Name    string
	Command string
}

// RuntimeWRFInit renders the per-cycle WRF initialization task. It
// always runs in the background; the cadence of the forecast cycle
// is passed to the init script together with the cycle point.
func RuntimeWRFInit(general conf.GeneralConf) (string, error) {
	if general.RunHours < 1 {
		return "", fmt.Errorf("options_general.run_hours: not set")
	}

	return execTemplate("wrf_init", initTaskTemplate, initTaskData{
		Name:    "wrf_init",
		Command: fmt.Sprintf("wrf_init.py $CYLC_TASK_CYCLE_POINT %d", general.RunHours),
	})
}

// RuntimeObsprocInit renders the observation preprocessing
// initialization task. It always runs in the background.
func RuntimeObsprocInit() (string, error) {
	return execTemplate("obsproc_init", initTaskTemplate, initTaskData{
		Name:    "obsproc_init",
		Command: "wrfda_obsproc_init.py $CYLC_TASK_CYCLE_POINT",
	})
}

const exeTaskTemplate = `
  [[<% .Name %>]]
    script = """
<% .Command %>
"""
    [[[environment]]]
      WORKDIR = <% .WorkDir %>
      CYLC_TASK_WORK_DIR = $WORKDIR
    [[[job submission]]]
      method = <% .Method %>
    [[[directives]]]
      <% .Directives %>
`

type exeTaskData struct {
	Name    string
	WorkDir string
	RunSpec
}

// RuntimeReal renders the real.exe task, which prepares the initial
// and boundary conditions of each cycle.
func RuntimeReal(slurm conf.SlurmConf, fs conf.FilesystemConf) (string, error) {
	if fs.WRFRunDir == "" {
		return "", fmt.Errorf("filesystem.wrf_run_dir: not set")
	}

	spec, err := ResolveRunSpec(slurm.RealExe, "./real.exe", "srun ./real.exe")
	if err != nil {
		return "", err
	}

	return execTemplate("wrf_real", exeTaskTemplate, exeTaskData{
		Name:    "wrf_real",
		WorkDir: folders.WRFWorkDir(fs).String(),
		RunSpec: spec,
	})
}

// slurmWRFCommand sizes OMP to the cpus per task the batch
// scheduler assigned, or to a single thread outside of it.
const slurmWRFCommand = `#!/usr/bin/env bash
if [ -n "$SLURM_CPUS_PER_TASK" ]; then
  omp_threads=$SLURM_CPUS_PER_TASK
else
  omp_threads=1
fi
export OMP_NUM_THREADS=$omp_threads
srun ./wrf.exe`

// RuntimeWRF renders the wrf.exe task, the forecast model run of
// each cycle.
func RuntimeWRF(slurm conf.SlurmConf, fs conf.FilesystemConf) (string, error) {
	if fs.WRFRunDir == "" {
		return "", fmt.Errorf("filesystem.wrf_run_dir: not set")
	}

	spec, err := ResolveRunSpec(slurm.WrfExe, "./wrf.exe", slurmWRFCommand)
	if err != nil {
		return "", err
	}

	return execTemplate("wrf_run", exeTaskTemplate, exeTaskData{
		Name:    "wrf_run",
		WorkDir: folders.WRFWorkDir(fs).String(),
		RunSpec: spec,
	})
}

// RuntimeObsproc renders the obsproc.exe task, which formats the
// observations assimilated by wrfda.
func RuntimeObsproc(slurm conf.SlurmConf, fs conf.FilesystemConf) (string, error) {
	if fs.WorkDir == "" {
		return "", fmt.Errorf("filesystem.work_dir: not set")
	}
	if fs.ObsFilename == "" {
		return "", fmt.Errorf("filesystem.obs_filename: not set")
	}

	spec, err := ResolveRunSpec(slurm.ObsprocExe, "./obsproc.exe", "srun ./obsproc.exe")
	if err != nil {
		return "", err
	}

	return execTemplate("obsproc_run", exeTaskTemplate, exeTaskData{
		Name:    "obsproc_run",
		WorkDir: folders.ObsprocWorkDir(fs).String(),
		RunSpec: spec,
	})
}

// RuntimeWRFDA renders the data assimilation task. The script is
// the same under either method; slurm directives only change how it
// is submitted.
func RuntimeWRFDA(slurm conf.SlurmConf, fs conf.FilesystemConf) (string, error) {
	if fs.WorkDir == "" {
		return "", fmt.Errorf("filesystem.work_dir: not set")
	}

	command := "wrfda_run.py $CYLC_TASK_CYCLE_POINT"
	spec, err := ResolveRunSpec(slurm.DaWrfvarExe, command, command)
	if err != nil {
		return "", err
	}

	return execTemplate("wrfda", exeTaskTemplate, exeTaskData{
		Name:    "wrfda",
		WorkDir: folders.WRFDAWorkDir(fs).String(),
		RunSpec: spec,
	})
}

const uppTaskTemplate = `
  [[upp]]
    script = """
upp.py $CYLC_TASK_CYCLE_POINT
"""
    [[[environment]]]
`

// RuntimeUPP renders the unified post processing task. It has no
// working directory of its own.
func RuntimeUPP() (string, error) {
	return uppTaskTemplate, nil
}

const wpsTaskTemplate = `
  [[wps]]
    pre-script = """
wps_init.py $CYLC_TASK_CYCLE_POINT <% .RunHours %>
"""
    script = """
<% .Ungrib %>
<% .Metgrid %>
"""
    post-script = """
wps_post.py
"""
    [[[environment]]]
      WORKDIR = <% .WorkDir %>
      CYLC_TASK_WORK_DIR = $WORKDIR
`

type wpsTaskData struct {
	RunHours int
	Ungrib   string
	Metgrid  string
	WorkDir  string
}

// RuntimeWPS renders the preprocessing task: ungrib and metgrid run
// on the cadence of their own cycle, bracketed by the wps init and
// post scripts.
func RuntimeWPS(wps conf.WPSConf, fs conf.FilesystemConf) (string, error) {
	if wps.RunHours < 1 {
		return "", fmt.Errorf("options_wps.run_hours: not set")
	}
	if fs.WorkDir == "" {
		return "", fmt.Errorf("filesystem.work_dir: not set")
	}
	if fs.WPSDir == "" {
		return "", fmt.Errorf("filesystem.wps_dir: not set")
	}

	return execTemplate("wps", wpsTaskTemplate, wpsTaskData{
		RunHours: wps.RunHours,
		Ungrib:   folders.UngribExe(fs).String(),
		Metgrid:  folders.MetgridExe(fs).String(),
		WorkDir:  folders.WPSWorkDir(fs).String(),
	})
}
