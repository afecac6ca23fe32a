package iostatusdb

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/pkg/errcode"
)

// BackendError is returned for an unknown status database backend.
func BackendError(backend string) error {
	msg := `Unknown status database backend <em>%s</em>

<em>How to fix:</em>
  Set <em>status_db.backend</em> to one of:
  postgres, mongo, couchdb, sqlite, file`
	vars := []any{backend}
	return &gn.Error{
		Code: errcode.StatusDBBackendError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown backend %q", backend),
	}
}

// ConfigError is returned when a setting required by a backend is empty.
func ConfigError(backend, field string) error {
	msg := "Backend <em>%s</em> requires <em>status_db.%s</em> setting"
	vars := []any{backend, field}
	return &gn.Error{
		Code: errcode.StatusDBConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("backend %s: empty %s", backend, field),
	}
}

// ConnectionError is returned when the status database cannot be opened.
func ConnectionError(backend, target string, err error) error {
	msg := `Cannot connect to status database

<em>Possible causes:</em>
  - The database server is not running
  - Connection settings are incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check that <em>%s</em> is reachable
  2. Review <em>status_db</em> section of the config file

Backend: %s`
	vars := []any{target, backend}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatusDBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s: %w",
			fn, target, err),
	}
}

// NotConnectedError is returned when a closed connection is used.
func NotConnectedError() error {
	msg := "Status database operation attempted without connection"
	return &gn.Error{
		Code: errcode.StatusDBNotConnectedError,
		Msg:  msg,
		Err:  errors.New("not connected to status database"),
	}
}

// QueryError is returned when a project document cannot be fetched.
func QueryError(projectID string, err error) error {
	msg := "Cannot query status database for project <em>%s</em>"
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatusDBQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot get project %s: %w",
			fn, projectID, err),
	}
}

// DecodeError is returned when a project document is malformed.
func DecodeError(source string, err error) error {
	msg := "Cannot decode project document from <em>%s</em>"
	vars := []any{source}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatusDBDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decode %s: %w",
			fn, source, err),
	}
}

// WriteError is returned when a project document cannot be stored.
func WriteError(projectID string, err error) error {
	msg := "Cannot save project <em>%s</em> to status database"
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatusDBWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save project %s: %w",
			fn, projectID, err),
	}
}

// ReadOnlyError is returned when documents are written through
// a connection that was opened without OptWritable.
func ReadOnlyError(backend string) error {
	msg := "Status database <em>%s</em> was opened read-only"
	vars := []any{backend}
	return &gn.Error{
		Code: errcode.StatusDBReadOnlyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("backend %s is read-only", backend),
	}
}
