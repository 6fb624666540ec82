package ioreport

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
)

// ErrUnknownFormat is wrapped by FormatError.
var ErrUnknownFormat = errors.New("unknown report format")

// FormatError is returned for unsupported report formats.
func FormatError(format string) error {
	msg := `Unknown report format <em>%s</em>

Use one of: table, csv, tsv, compact, pretty, yaml, sql`
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: '%s': %w",
			fn.Name(), format, ErrUnknownFormat),
	}
}

// WriteError is returned when a report cannot be written.
func WriteError(format Format, err error) error {
	msg := "Cannot print <em>%s</em> report"
	vars := []any{string(format)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
