package iocsv

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
)

// HeaderError describes a mismatch between a header and a schema.
type HeaderError struct {
	Column   int
	Expected int
	Found    int
	Want     string
	Got      string
}

func (e *HeaderError) Error() string {
	if e.Expected != e.Found {
		return fmt.Sprintf("expected %d fields, found %d", e.Expected, e.Found)
	}
	return fmt.Sprintf(
		"field name mismatch, expected field named '%s' in column %d, found '%s'",
		e.Want, e.Column, e.Got,
	)
}

// OpenError is returned when an input file cannot be opened.
func OpenError(path string, err error) error {
	msg := "Cannot open input file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}

// EmptyFileError is returned when an input has no header.
func EmptyFileError(path string) error {
	msg := "Input file <em>%s</em> is empty"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.InputSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty input %s", path),
	}
}

// SchemaError is returned when the header does not match the schema.
func SchemaError(path string, s Schema, err error) error {
	msg := `Failed to parse input file <em>%s</em>: %s

<em>Expected %s header:</em>
  %s`
	vars := []any{path, err.Error(), s.Name, strings.Join(s.Fields, ",")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: wrong header in %s: %w",
			fn.Name(), path, err),
	}
}

// RowError is returned for rows that cannot be read.
func RowError(path string, line int, err error) error {
	msg := "Cannot read line %d of <em>%s</em>"
	vars := []any{line, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputRowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: bad row in %s: %w",
			fn.Name(), path, err),
	}
}
