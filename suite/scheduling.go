package suite

import (
	"fmt"
	"time"

	"github.com/Sytse47/wrfpy/conf"
)

// cyclePointLayout is the format of a cylc cycle point, pinned in
// the generated [cylc] section as %Y%m%d%H.
const cyclePointLayout = "2006010215"

const headerTemplate = `#!Jinja2

{% set START = "<% .Start %>" %}
{% set STOP = "<% .Stop %>" %}

[cylc]
  # set required cycle point format
  cycle point format = %Y%m%d%H

`

type headerData struct {
	Start string
	Stop  string
}

// Header renders the suite preamble: the Jinja2 START and STOP
// variables holding the forecast window as cycle points, and the
// [cylc] section.
func Header(general conf.GeneralConf) (string, error) {
	start, err := parseDate("options_general.date_start", general.DateStart)
	if err != nil {
		return "", err
	}
	stop, err := parseDate("options_general.date_end", general.DateEnd)
	if err != nil {
		return "", err
	}

	return execTemplate("header", headerTemplate, headerData{
		Start: start.Format(cyclePointLayout),
		Stop:  stop.Format(cyclePointLayout),
	})
}

const schedulingTemplate = `[scheduling]
  initial cycle point = {{ START }}
  final cycle time   = {{ STOP }}
  [[dependencies]]
    # Initial cycle point
    [[[R1/T<% .StartHour %>]]]
      graph = """
        wrf_init => wps => wrf_real => wrfda => wrf_run => upp
        obsproc_init => obsproc_run => wrfda
      """
    # Repeat every <% .RunHours %> hours, starting <% .RunHours %> hours after initial cycle point
    [[[+PT<% .RunHours %>H/PT<% .RunHours %>H]]]
      graph = """
        wrf_run[-PT<% .RunHours %>H] => wrf_init => wrf_real => wrfda => wrf_run => upp
        wrfda[-PT<% .RunHours %>H] => wrf_init
        obsproc_init => obsproc_run => wrfda
      """
    # Repeat every <% .WPSRunHours %> hours, starting <% .WPSRunHours %> hours after initial cycle point
    [[[+PT<% .WPSRunHours %>H/PT<% .WPSRunHours %>H]]]
      graph = """
        wps[-PT<% .WPSRunHours %>H] => wps
      """

`

type schedulingData struct {
	StartHour   string
	RunHours    int
	WPSRunHours int
}

// Scheduling renders the dependency graphs of the suite: the run of
// the initial cycle point, the forecast cycle repeating every
// options_general.run_hours and the preprocessing cycle repeating
// every options_wps.run_hours. The two cadences are independent.
func Scheduling(general conf.GeneralConf, wps conf.WPSConf) (string, error) {
	start, err := parseDate("options_general.date_start", general.DateStart)
	if err != nil {
		return "", err
	}
	if general.RunHours < 1 {
		return "", fmt.Errorf("options_general.run_hours: not set")
	}
	if wps.RunHours < 1 {
		return "", fmt.Errorf("options_wps.run_hours: not set")
	}

	return execTemplate("scheduling", schedulingTemplate, schedulingData{
		StartHour:   start.Format("15"),
		RunHours:    general.RunHours,
		WPSRunHours: wps.RunHours,
	})
}

const visualizationTemplate = `
[visualization]
  initial cycle point = {{ START }}
  final cycle time   = {{ STOP }}
  default node attributes = "style=filled", "fillcolor=grey"
`

// Visualization renders the fixed node styling of the suite graph.
func Visualization() (string, error) {
	return visualizationTemplate, nil
}

func parseDate(key, value string) (time.Time, error) {
	date, err := time.Parse(conf.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return date, nil
}
