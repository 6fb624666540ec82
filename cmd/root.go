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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iofs"
	"github.com/gnames/itismatch/internal/iologger"
	app "github.com/gnames/itismatch/pkg"
	"github.com/gnames/itismatch/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
	logger  *slog.Logger
)

// getRootCmd returns the root command with all subcommands attached.
// A fresh instance is created on every call.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "itismatch",
		Short:   "Match plant checklists to ITIS taxa",
		Long: `itismatch maps regional plant checklists onto the ITIS taxonomy.

Every row of a checklist is resolved to an accepted ITIS taxon (TSN):
  1. exact match of an accepted name
  2. match of a synonym, followed to its accepted taxon
  3. retry with the accepted genus when the genus is a synonym
  4. for names that are still unresolved, similar taxa are logged

Resolved rows become one of two mappings:
  - native status per taxon (status command), written to mntaxa
  - germination codes per taxon (germination command), written to
    sc_taxon_germination

Configuration is kept in ~/.config/itismatch/config.yaml and can be
overridden by ITISMATCH_* environment variables and flags.
DEBUG=1 switches logs to debug level.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for itismatch")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default ~/.config/itismatch/config.yaml)")
	pf.StringP("db", "d", "", "ITIS SQLite database")
	pf.StringP("format", "f", "",
		"report format: table, csv, tsv, compact, pretty, yaml, sql")
	pf.IntP("jobs", "j", 0, "number of concurrent resolution workers")
	pf.Bool("legacy-subspecies", false,
		"look up subspecies with the species rank")

	rootCmd.AddCommand(
		getStatusCmd(),
		getGerminationCmd(),
		getNameCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	defer iologger.Close()
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// defaults until the config file is read
	if logger, err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := config.ConfigFilePath(homeDir)
	if s, _ := cmd.Flags().GetString("config"); s != "" {
		cfgPath = s
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	if os.Getenv("DEBUG") == "1" {
		cfg.Update([]config.Option{config.OptLogLevel("debug")})
	}
	cfg.Update(flagOptions(cmd))
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if logger, err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg.LegacySubspecies {
		slog.Warn("Legacy subspecies lookup is on, subsp. records are matched as species")
	}

	slog.Debug("Configuration loaded", "config_file", cfgPath)
	return nil
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds ITISMATCH_* variables. They match the fields
// included in config.ToOptions(), so only persistent settings can be
// set from the environment.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("ITISMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"reference.driver",
		"reference.path",
		"reference.host",
		"reference.port",
		"reference.user",
		"reference.password",
		"reference.database",
		"reference.ssl_mode",
		"reference.kingdom_id",

		"output.format",
		"output.batch_size",
		"output.candidates_limit",

		"log.level",
		"log.format",
		"log.destination",

		"jobs_number",
		"legacy_subspecies",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.AutomaticEnv()
}
