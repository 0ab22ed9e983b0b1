package suite

// This module renders cylc suite definitions for the WRF
// forecasting pipeline. Each section of the suite.rc is rendered by
// its own function from the configuration values it consumes; Render
// concatenates them in the order the scheduler expects.

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Sytse47/wrfpy/conf"
)

// execTemplate renders one section template. The generated text is
// itself a Jinja2 template for cylc, which reserves both {{ }} and
// {% %}, so the Go template actions use <% %> delimiters.
func execTemplate(name, text string, data interface{}) (string, error) {
	t, err := template.New(name).Delims("<%", "%>").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}
	builder := &strings.Builder{}
	err = t.Execute(builder, data)
	if err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return builder.String(), nil
}

// Render produces the complete suite.rc text for the given
// configuration: header, scheduling, one runtime block per task and
// visualization. Directive files named by the configuration are read
// while rendering; nothing is written, and any failure returns an
// error before a single byte of output exists.
func Render(config *conf.Configuration) (string, error) {
	renderers := []func() (string, error){
		func() (string, error) { return Header(config.General) },
		func() (string, error) { return Scheduling(config.General, config.WPS) },
		RuntimeRoot,
		func() (string, error) { return RuntimeWRFInit(config.General) },
		RuntimeObsprocInit,
		func() (string, error) { return RuntimeReal(config.Slurm, config.Filesystem) },
		func() (string, error) { return RuntimeWRF(config.Slurm, config.Filesystem) },
		func() (string, error) { return RuntimeObsproc(config.Slurm, config.Filesystem) },
		func() (string, error) { return RuntimeWRFDA(config.Slurm, config.Filesystem) },
		RuntimeUPP,
		func() (string, error) { return RuntimeWPS(config.WPS, config.Filesystem) },
		Visualization,
	}

	suite := &strings.Builder{}
	for _, render := range renderers {
		block, err := render()
		if err != nil {
			return "", err
		}
		suite.WriteString(block)
	}

	return suite.String(), nil
}
