package ioload

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/pkg/errcode"
)

// DocumentError is returned when a project document file cannot be
// parsed.
func DocumentError(path string, err error) error {
	msg := `Cannot load project document <em>%s</em>

<em>How to fix:</em>
  Check that the file is a valid JSON or YAML project document`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadDocumentError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load %s: %w", fn, path, err),
	}
}

// NoFilesError is returned when there is nothing to load.
func NoFilesError() error {
	msg := `No project documents to load

<em>Usage:</em>
  ngireports load P001.json P002.yaml ...`
	return &gn.Error{
		Code: errcode.LoadNoFilesError,
		Msg:  msg,
		Err:  errors.New("no files given"),
	}
}
