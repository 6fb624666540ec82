package iosink

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
)

// ConnectionError is returned when the output database cannot be opened.
func ConnectionError(path string, err error) error {
	msg := "Cannot open output database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SinkConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}

// GORMConnectionError is returned when GORM cannot wrap a connection.
func GORMConnectionError(err error) error {
	msg := "Cannot prepare output database"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SinkConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: gorm open failed: %w", fn.Name(), err),
	}
}

// SchemaError is returned when an output table cannot be created.
func SchemaError(table string, err error) error {
	msg := "Cannot create output table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SinkSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot recreate %s: %w",
			fn.Name(), table, err),
	}
}

// WriteError is returned when rows cannot be stored.
func WriteError(table string, err error) error {
	msg := "Cannot store rows in <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SinkWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert into %s failed: %w",
			fn.Name(), table, err),
	}
}

// DumpError is returned when a table cannot be dumped as SQL.
func DumpError(table string, err error) error {
	msg := "Cannot dump table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SinkDumpError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot dump %s: %w",
			fn.Name(), table, err),
	}
}
