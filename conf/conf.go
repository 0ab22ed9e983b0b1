package conf

// This module contains the data structures that keep the
// configuration variables consumed by the command, together
// with the loader that reads them from a suite config.json.

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// DateLayout is the format of the date_start and
// date_end configuration values.
const DateLayout = "2006-01-02 15:04"

// GeneralConf contains the forecast time window and the
// cadence, in hours, of the main cycle.
type GeneralConf struct {
	DateStart string `mapstructure:"date_start"`
	DateEnd   string `mapstructure:"date_end"`
	RunHours  int    `mapstructure:"run_hours"`
}

// WPSConf contains the cadence, in hours, of the
// preprocessing cycle. It is independent from the main one.
type WPSConf struct {
	RunHours int `mapstructure:"run_hours"`
}

// SlurmConf contains, for each executable task, the path of a
// file with the SLURM directives to submit it with. An empty or
// missing path means the task runs as a background job.
type SlurmConf struct {
	RealExe     string `mapstructure:"slurm_real.exe"`
	WrfExe      string `mapstructure:"slurm_wrf.exe"`
	ObsprocExe  string `mapstructure:"slurm_obsproc.exe"`
	DaWrfvarExe string `mapstructure:"slurm_da_wrfvar.exe"`
}

// FilesystemConf contains the paths of the directories and files
// the generated suite refers to.
type FilesystemConf struct {
	WorkDir     string `mapstructure:"work_dir"`
	WRFRunDir   string `mapstructure:"wrf_run_dir"`
	WPSDir      string `mapstructure:"wps_dir"`
	ObsFilename string `mapstructure:"obs_filename"`
}

// Configuration contains all configuration sub structures.
type Configuration struct {
	General    GeneralConf
	WPS        WPSConf
	Slurm      SlurmConf
	Filesystem FilesystemConf
}

// Read loads the configuration from the `confPath` JSON file.
//
// The file holds a mapping of sections; keys the command does not
// consume are ignored. A section missing altogether leaves its
// zero value, so an absent options_slurm key and an empty one
// select the same behaviour.
func Read(confPath string) (*Configuration, error) {
	content, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("Read `%s`: %w", confPath, err)
	}

	var sections map[string]interface{}
	if err := json.Unmarshal(content, &sections); err != nil {
		return nil, fmt.Errorf("Read `%s`: malformed JSON: %w", confPath, err)
	}

	var config Configuration

	if section, ok := sections["options_general"]; ok {
		if err := mapstructure.Decode(section, &config.General); err != nil {
			return nil, fmt.Errorf("Read `%s`: options_general: %w", confPath, err)
		}
	}

	if section, ok := sections["options_wps"]; ok {
		if err := mapstructure.Decode(section, &config.WPS); err != nil {
			return nil, fmt.Errorf("Read `%s`: options_wps: %w", confPath, err)
		}
	}

	if section, ok := sections["options_slurm"]; ok {
		if err := mapstructure.Decode(section, &config.Slurm); err != nil {
			return nil, fmt.Errorf("Read `%s`: options_slurm: %w", confPath, err)
		}
	}

	if section, ok := sections["filesystem"]; ok {
		if err := mapstructure.Decode(section, &config.Filesystem); err != nil {
			return nil, fmt.Errorf("Read `%s`: filesystem: %w", confPath, err)
		}
	}

	return &config, nil
}

// Skeleton returns the content of the starter config.json written
// in a newly initialized suite directory, with every consumed key
// present and waiting for a value.
func Skeleton() []byte {
	return []byte(skeleton)
}

const skeleton = `{
  "options_general": {
    "date_start": "",
    "date_end": "",
    "run_hours": 0
  },
  "options_wps": {
    "run_hours": 0
  },
  "options_slurm": {
    "slurm_real.exe": "",
    "slurm_wrf.exe": "",
    "slurm_obsproc.exe": "",
    "slurm_da_wrfvar.exe": ""
  },
  "filesystem": {
    "work_dir": "",
    "wrf_run_dir": "",
    "wps_dir": "",
    "obs_filename": ""
  }
}
`
