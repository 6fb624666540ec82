/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iocsv"
	"github.com/gnames/itismatch/internal/iodb"
	"github.com/gnames/itismatch/internal/ioitis"
	"github.com/gnames/itismatch/internal/ioreport"
	"github.com/gnames/itismatch/internal/iosink"
	"github.com/gnames/itismatch/pkg/db"
	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/sink"
)

// readRows validates the header of a checklist and reads all its rows.
// Nothing is read from the reference store before this succeeds.
func readRows(path string, s iocsv.Schema) ([]iocsv.Row, error) {
	r, err := iocsv.Open(path, s)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

// openReference connects to the reference store in read-only mode and
// makes sure the given tables exist.
func openReference(
	ctx context.Context,
	tables ...string,
) (db.Operator, reference.Accessor, error) {
	op := iodb.NewOperator(iodb.ReadOnly)
	if err := op.Connect(ctx, &cfg.Reference); err != nil {
		return nil, nil, err
	}
	if err := iodb.CheckTables(ctx, op, tables...); err != nil {
		op.Close()
		return nil, nil, err
	}
	return op, ioitis.New(op, cfg, logger), nil
}

// storeMapping writes a final mapping into the output database. Without
// an output database the mapping is kept in memory, which is enough to
// dump it as SQL.
func storeMapping(
	ctx context.Context,
	w io.Writer,
	f ioreport.Format,
	table string,
	write func(sink.Sink) error,
) error {
	path := cfg.Output.Path
	if path == "" && f != ioreport.FormatSQL {
		return nil
	}
	if path == "" {
		path = iodb.Memory
	}

	snk, err := iosink.OpenSQLite(ctx, path, cfg.Output.BatchSize)
	if err != nil {
		return err
	}
	defer snk.Close()

	if err = write(snk); err != nil {
		return err
	}
	if path != iodb.Memory {
		gn.Info("Stored <em>%s</em> in <em>%s</em>", table, path)
	}

	if f == ioreport.FormatSQL {
		return snk.Dump(ctx, w, table)
	}
	return nil
}

// updateReference writes a mapping into the reference store through a
// separate read-write connection.
func updateReference(
	ctx context.Context,
	table string,
	write func(sink.Sink) error,
) error {
	op := iodb.NewOperator(iodb.ReadWrite)
	if err := op.Connect(ctx, &cfg.Reference); err != nil {
		return err
	}
	defer op.Close()

	snk, err := iosink.FromOperator(op, cfg.Output.BatchSize)
	if err != nil {
		return err
	}
	defer snk.Close()

	if err = write(snk); err != nil {
		return err
	}
	gn.Info("Updated <em>%s</em> in the reference database", table)
	return nil
}
