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

// getStatusCmd returns the status command.
func getStatusCmd() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status <species.csv>",
		Short: "Map native status of checklist species to ITIS taxa",
		Long: `Resolve species of a regional checklist to accepted ITIS taxa and
merge their native status.

The checklist is a CSV file with the header:
  X,genus,X,species,subttype,subtaxa,native_status,rarity_status,invasive_status

Hybrid rows (X in the first or third column) are skipped.
Statuses are N (native), I (introduced) and U (unknown). When several
rows resolve to the same taxon, native wins over introduced, introduced
wins over unknown.

The result is the mntaxa table (tsn, native_status).

Examples:
  # Resolve and print a summary
  itismatch status species.csv -d ITIS.sqlite

  # Write mntaxa into a new SQLite file
  itismatch status species.csv -o mntaxa.sqlite

  # Replace mntaxa in the reference database
  itismatch status species.csv -u

  # Print the merged mapping as CSV
  itismatch status species.csv -f csv

  # Print resolution of every row as CSV
  itismatch status species.csv -f csv -r`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStatus(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statusCmd.Flags().StringP("outdb", "o", "",
		"SQLite file to write mntaxa into")
	statusCmd.Flags().BoolP("updatedb", "u", false,
		"replace mntaxa in the reference database")
	statusCmd.Flags().BoolP("rows", "r", false,
		"print resolution of every row instead of the merged mapping")

	return statusCmd
}

func runStatus(cmd *cobra.Command, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	f, err := ioreport.NewFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	rows, err := readRows(path, iocsv.StatusSchema)
	if err != nil {
		return err
	}

	op, acc, err := openReference(ctx, schema.ResolutionTables()...)
	if err != nil {
		return err
	}
	defer op.Close()

	merger := aggregator.NewStatusMerger()
	m := iomatch.New(cfg, acc, iomatch.StatusDecoder(logger), merger, logger)
	out, err := m.Match(ctx, rows)
	if err != nil {
		return err
	}

	entries := merger.Entries()
	table := schema.MnTaxon{}.TableName()
	write := func(snk sink.Sink) error {
		return snk.WriteStatus(ctx, entries)
	}

	w := cmd.OutOrStdout()
	if err = storeMapping(ctx, w, f, table, write); err != nil {
		return err
	}

	switch {
	case !cfg.Output.UpdateReference:
	case len(entries) == 0:
		gn.Warn("Nothing was resolved, <em>%s</em> is left unchanged", table)
	default:
		// the read-only connection is not needed anymore
		op.Close()
		if err = updateReference(ctx, table, write); err != nil {
			return err
		}
	}

	showRows, _ := cmd.Flags().GetBool("rows")
	switch {
	case f == ioreport.FormatSQL:
	case showRows:
		rep := ioreport.FromItems(out.Items)
		err = ioreport.WriteResults(w, f, rep)
	default:
		err = ioreport.WriteStatus(w, f, entries)
	}
	if err != nil {
		return err
	}

	out.Summary.Report()
	return nil
}
