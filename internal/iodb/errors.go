package iodb

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/errcode"
)

// NotFoundError is returned when the SQLite reference file is missing.
func NotFoundError(path string, err error) error {
	msg := `Reference database <em>%s</em> not found

<em>How to fix:</em>
  1. Download an ITIS SQLite snapshot
  2. Point to it with <em>--db</em> or <em>reference.path</em> in config.yaml`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot find %s: %w",
			fn.Name(), path, err),
	}
}

// SQLiteConnectionError is returned when SQLite file cannot be opened.
func SQLiteConnectionError(path string, err error) error {
	msg := "Cannot open SQLite database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}

// PostgresConnectionError is returned when PostgreSQL connection fails.
func PostgresConnectionError(cfg *config.ReferenceConfig, err error) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Check your configuration file:
     <em>~/.config/itismatch/config.yaml</em>

<em>Connection settings:</em>
  Host: %s
  Port: %d
  Database: %s
  User: %s`
	vars := []any{
		cfg.Host, cfg.Port,
		cfg.Host, cfg.Port, cfg.Database, cfg.User,
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			fn.Name(), cfg.Host, cfg.Port, cfg.Database, err),
	}
}

// NotConnectedError is returned when a query is attempted before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.ReferenceNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when a table existence check fails.
func TableCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceSchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot check table %s: %w",
			fn.Name(), table, err),
	}
}

// MissingTablesError is returned when required tables are absent.
func MissingTablesError(tables []string) error {
	list := strings.Join(tables, ", ")
	msg := `Database does not look like an ITIS snapshot

<warning>Missing tables:</warning> <em>%s</em>`
	vars := []any{list}
	return &gn.Error{
		Code: errcode.ReferenceSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing tables: %s", list),
	}
}
