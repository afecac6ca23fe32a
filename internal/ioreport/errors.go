package ioreport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/pkg/errcode"
)

// ReadError is returned when a report description cannot be read.
func ReadError(path string, err error) error {
	msg := `Cannot read report description <em>%s</em>

<em>Expected format (YAML or JSON):</em>
  project:
    id: P12345
    name: Liver study
  samples: [P12345_101, P12345_102]`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// ProjectIDError is returned when a report has no project identifier.
func ProjectIDError(source string) error {
	msg := `Report from <em>%s</em> has no project ID

<em>How to fix:</em>
  Use <em>--project</em> flag or set <em>project.id</em> in the report file`
	vars := []any{source}
	return &gn.Error{
		Code: errcode.ReportProjectIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty project id in %s", source),
	}
}

// FormatError is returned for an unsupported output format.
func FormatError(format string) error {
	msg := `Unknown report format <em>%s</em>

Supported formats: json, pretty, yaml`
	vars := []any{format}
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown format %q", format),
	}
}

// WriteError is returned when the enriched report cannot be written.
func WriteError(projectID string, err error) error {
	msg := "Cannot write report for project <em>%s</em>"
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write report: %w", fn, err),
	}
}
