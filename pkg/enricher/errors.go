package enricher

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/pkg/errcode"
)

// ConnectionError is returned when the status database cannot be reached.
// Errors that already carry a user message are returned unchanged.
func ConnectionError(projectID string, err error) error {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return err
	}
	msg := "Could not connect to status database for project <em>%s</em>"
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatusDBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to status database: %w",
			fn, err),
	}
}

// NotConnectedError is returned when the enricher has no connector.
func NotConnectedError() error {
	msg := "Enrichment attempted without status database connector"
	return &gn.Error{
		Code: errcode.StatusDBNotConnectedError,
		Msg:  msg,
		Err:  errors.New("status database connector is nil"),
	}
}
