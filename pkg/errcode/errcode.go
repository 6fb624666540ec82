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

	// Input errors
	InputOpenError
	InputSchemaError
	InputRowError

	// Reference store errors
	ReferenceNotFoundError
	ReferenceConnectionError
	ReferenceNotConnectedError
	ReferenceSchemaError
	ReferenceQueryError

	// Resolution errors
	ResolveQueryError
	ResolveCancelledError

	// Sink errors
	SinkConnectionError
	SinkSchemaError
	SinkWriteError
	SinkDumpError

	// Report errors
	ReportFormatError
	ReportWriteError

	// Name parsing errors
	ParseNameError
)
