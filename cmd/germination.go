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
	"os"
	"os/signal"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iocsv"
	"github.com/gnames/itismatch/internal/iomatch"
	"github.com/gnames/itismatch/internal/ioreport"
	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/schema"
	"github.com/gnames/itismatch/pkg/sink"
	"github.com/spf13/cobra"
)

// getGerminationCmd returns the germination command.
func getGerminationCmd() *cobra.Command {
	germCmd := &cobra.Command{
		Use:     "germination <germination.csv>",
		Aliases: []string{"germ"},
		Short:   "Link germination codes of checklist species to ITIS taxa",
		Long: `Resolve species of a germination checklist to accepted ITIS taxa and
link them to germination codes of the sc_germination_codes table.

The checklist is a CSV file with the header:
  X,genus,X,species,subttype,subtaxa,germcode

Rows with hybrids or with unknown germination codes are skipped.
Duplicate (germid, tsn) pairs are stored once.

The result is the sc_taxon_germination table. Without --outdb it is
built in memory and printed as SQL statements.

Examples:
  # Print SQL that recreates sc_taxon_germination
  itismatch germination germination.csv -d ITIS.sqlite > germ.sql

  # Write the table into a SQLite file and print pairs as CSV
  itismatch germination germination.csv -o germ.sqlite -f csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGermination(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	germCmd.Flags().StringP("outdb", "o", "",
		"SQLite file to write sc_taxon_germination into")

	return germCmd
}

func runGermination(cmd *cobra.Command, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	f, err := ioreport.NewFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if f == ioreport.FormatNone {
		f = ioreport.FormatSQL
	}

	rows, err := readRows(path, iocsv.GerminationSchema)
	if err != nil {
		return err
	}

	tables := append(
		schema.ResolutionTables(),
		schema.GerminationCode{}.TableName(),
	)
	op, acc, err := openReference(ctx, tables...)
	if err != nil {
		return err
	}
	defer op.Close()

	deduper := aggregator.NewCodeDeduper()
	decode := iomatch.GerminationDecoder(acc, logger)
	m := iomatch.New(cfg, acc, decode, deduper, logger)
	out, err := m.Match(ctx, rows)
	if err != nil {
		return err
	}

	pairs := deduper.Pairs()
	table := schema.TaxonGermination{}.TableName()
	write := func(snk sink.Sink) error {
		return snk.WriteGermination(ctx, pairs)
	}

	w := cmd.OutOrStdout()
	if err = storeMapping(ctx, w, f, table, write); err != nil {
		return err
	}

	if f != ioreport.FormatSQL {
		if err = ioreport.WriteGermination(w, f, pairs); err != nil {
			return err
		}
	}

	out.Summary.Report()
	return nil
}
