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
	"github.com/gnames/itismatch/pkg/config"
	"github.com/spf13/cobra"
)

// funcFlag converts a flag into a config option. It returns nil when
// the flag was not set on the command line.
type funcFlag func(cmd *cobra.Command) config.Option

var flagFuncs = []funcFlag{
	dbFlag,
	formatFlag,
	jobsFlag,
	legacySubspeciesFlag,
	outdbFlag,
	updatedbFlag,
}

// flagOptions collects options of all flags set by a user.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, fn := range flagFuncs {
		if opt := fn(cmd); opt != nil {
			res = append(res, opt)
		}
	}
	return res
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func dbFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "db") {
		return nil
	}
	s, _ := cmd.Flags().GetString("db")
	return config.OptReferencePath(s)
}

func formatFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "format") {
		return nil
	}
	s, _ := cmd.Flags().GetString("format")
	return config.OptOutputFormat(s)
}

func jobsFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "jobs") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("jobs")
	return config.OptJobsNumber(i)
}

func legacySubspeciesFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "legacy-subspecies") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("legacy-subspecies")
	return config.OptLegacySubspecies(b)
}

func outdbFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "outdb") {
		return nil
	}
	s, _ := cmd.Flags().GetString("outdb")
	return config.OptOutputPath(s)
}

func updatedbFlag(cmd *cobra.Command) config.Option {
	if !changed(cmd, "updatedb") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("updatedb")
	return config.OptOutputUpdateReference(b)
}
