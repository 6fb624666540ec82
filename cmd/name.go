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
	"github.com/gnames/gn"
	"github.com/gnames/gnuuid"
	"github.com/gnames/itismatch/internal/ioreport"
	"github.com/gnames/itismatch/pkg/normalizer"
	"github.com/gnames/itismatch/pkg/parserpool"
	"github.com/gnames/itismatch/pkg/resolver"
	"github.com/gnames/itismatch/pkg/schema"
	"github.com/spf13/cobra"
)

// getNameCmd returns the name command.
func getNameCmd() *cobra.Command {
	nameCmd := &cobra.Command{
		Use:   "name <name>...",
		Short: "Resolve scientific names to ITIS taxa",
		Long: `Resolve free-text scientific names to accepted ITIS taxa.

Names are parsed with the botanical code, so authorships and rank
abbreviations are allowed. Only species, varieties and subspecies can
be resolved. Hybrid formulas are skipped.

Examples:
  itismatch name "Aster novae-angliae L." "Acer rubrum"
  itismatch name "Poa annua subsp. supina (Schrad.) Link" -f yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runName(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return nameCmd
}

func runName(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()

	f, err := ioreport.NewFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	switch f {
	case ioreport.FormatNone:
		f = ioreport.FormatTable
	case ioreport.FormatSQL:
		return ioreport.FormatError(string(f))
	}

	op, acc, err := openReference(ctx, schema.ResolutionTables()...)
	if err != nil {
		return err
	}
	defer op.Close()

	pool := parserpool.NewPool(1)
	defer pool.Close()

	norm := normalizer.New(logger, cfg.LegacySubspecies)
	res := resolver.New(acc, logger)

	rows := make([]ioreport.Row, 0, len(names))
	for _, v := range names {
		rec, err := norm.FromParsed(pool.Parse(v), "")
		if err != nil {
			logger.Warn("Cannot resolve name", "name", v, "reason", err)
			rows = append(rows, ioreport.Row{
				NameID:     gnuuid.New(v).String(),
				Name:       v,
				Skipped:    true,
				Resolution: "skipped",
			})
			continue
		}

		r, err := res.Resolve(ctx, rec)
		if err != nil {
			return err
		}
		rows = append(rows, ioreport.FromResult(r, false))
	}

	return ioreport.WriteResults(cmd.OutOrStdout(), f, rows)
}
