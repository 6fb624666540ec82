package iosink

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gnames/itismatch/pkg/db"
)

var errDumpDriver = errors.New("only SQLite sinks can be dumped")

var errNoTable = errors.New("table does not exist")

// Dump implements sink.Sink. The output follows the layout of the
// SQLite .dump command: table definition, rows, indices, all inside one
// transaction.
func (s *gormSink) Dump(ctx context.Context, w io.Writer, table string) error {
	if s.driver != db.SQLite {
		return DumpError(table, errDumpDriver)
	}

	tableSQL, indexSQL, err := s.definitions(ctx, table)
	if err != nil {
		return DumpError(table, err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "BEGIN TRANSACTION;")
	fmt.Fprintf(bw, "%s;\n", tableSQL)
	if err = s.dumpRows(ctx, bw, table); err != nil {
		return DumpError(table, err)
	}
	for _, v := range indexSQL {
		fmt.Fprintf(bw, "%s;\n", v)
	}
	fmt.Fprintln(bw, "COMMIT;")

	if err = bw.Flush(); err != nil {
		return DumpError(table, err)
	}
	return nil
}

func (s *gormSink) definitions(
	ctx context.Context,
	table string,
) (string, []string, error) {
	q := `SELECT type, sql FROM sqlite_master
  WHERE tbl_name = ? AND sql IS NOT NULL
  ORDER BY CASE type WHEN 'table' THEN 0 ELSE 1 END, name`
	rows, err := s.sqlDB.QueryContext(ctx, q, table)
	if err != nil {
		return "", nil, err
	}
	defer rows.Close()

	var tableSQL string
	var indexSQL []string
	for rows.Next() {
		var typ, stmt string
		if err = rows.Scan(&typ, &stmt); err != nil {
			return "", nil, err
		}
		switch typ {
		case "table":
			tableSQL = stmt
		case "index":
			indexSQL = append(indexSQL, stmt)
		}
	}
	if err = rows.Err(); err != nil {
		return "", nil, err
	}
	if tableSQL == "" {
		return "", nil, errNoTable
	}
	return tableSQL, indexSQL, nil
}

func (s *gormSink) dumpRows(
	ctx context.Context,
	w io.Writer,
	table string,
) error {
	name := quoteIdent(table)
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT * FROM "+name+" ORDER BY rowid")
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	lits := make([]string, len(cols))
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range vals {
			lits[i] = literal(v)
		}
		_, err = fmt.Fprintf(w, "INSERT INTO %s VALUES(%s);\n",
			name, strings.Join(lits, ","))
		if err != nil {
			return err
		}
	}
	return rows.Err()
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// literal renders a scanned value as an SQLite literal.
func literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	case string:
		return quoteString(t)
	case []byte:
		return "X'" + hex.EncodeToString(t) + "'"
	case time.Time:
		return quoteString(t.Format(time.RFC3339Nano))
	case sql.RawBytes:
		return quoteString(string(t))
	default:
		return quoteString(fmt.Sprint(t))
	}
}
