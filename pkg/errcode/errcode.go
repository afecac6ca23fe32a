package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Status database errors
	StatusDBBackendError
	StatusDBConfigError
	StatusDBConnectionError
	StatusDBNotConnectedError
	StatusDBQueryError
	StatusDBDecodeError
	StatusDBWriteError
	StatusDBReadOnlyError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Report errors
	ReportReadError
	ReportProjectIDError
	ReportFormatError
	ReportWriteError

	// Load errors
	LoadDocumentError
	LoadNoFilesError
)
