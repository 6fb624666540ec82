// Package config provides configuration management for itismatch.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Reference: driver, path, host, port, user, password, database,
//     ssl_mode, kingdom_id
//   - Output: format, batch_size, candidates_limit
//   - Log: level, format, destination
//   - General: jobs_number, legacy_subspecies
//
// Runtime-only fields (CLI flags only):
//   - Output.Path, Output.UpdateReference (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use ITISMATCH_ prefix with underscores for nesting:
//
//	ITISMATCH_REFERENCE_PATH=ITIS.sqlite
//	ITISMATCH_REFERENCE_KINGDOM_ID=3
//	ITISMATCH_LOG_LEVEL=debug
//	ITISMATCH_JOBS_NUMBER=4
//
// DEBUG=1 is honored as a shortcut for ITISMATCH_LOG_LEVEL=debug.
package config

import "github.com/gnames/itismatch/pkg/taxon"

// Config represents the complete itismatch configuration.
type Config struct {
	// Reference contains settings of the ITIS reference taxonomy store.
	Reference ReferenceConfig `mapstructure:"reference" yaml:"reference"`

	// Output contains settings for result sinks and reports.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent resolution workers.
	// The default of 1 keeps processing and log output in input order.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// LegacySubspecies makes "subsp." records to be looked up with the
	// species rank, the way legacy checklists were matched. By default
	// subspecies get their own rank.
	LegacySubspecies bool `mapstructure:"legacy_subspecies" yaml:"legacy_subspecies"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ReferenceConfig describes how to reach the reference taxonomy store.
type ReferenceConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite file with the ITIS snapshot.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// KingdomID limits all lookups to one ITIS kingdom (3 is Plantae).
	KingdomID int `mapstructure:"kingdom_id" yaml:"kingdom_id"`
}

// OutputConfig contains settings of result sinks and reports.
type OutputConfig struct {
	// Format of printed reports: 'table', 'csv', 'tsv', 'compact',
	// 'pretty', 'yaml' or 'sql'. Empty means the command default.
	Format string `mapstructure:"format" yaml:"format"`

	// BatchSize is the number of rows inserted per statement into output
	// tables.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// CandidatesLimit caps the number of diagnostic candidates returned
	// for an unresolved name. Zero means no limit.
	CandidatesLimit int `mapstructure:"candidates_limit" yaml:"candidates_limit"`

	// Path is an SQLite file where output tables are written.
	// Runtime-only.
	Path string `mapstructure:"-" yaml:"-"`

	// UpdateReference writes the status table back into the reference
	// store. Runtime-only.
	UpdateReference bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), stderr or stdout
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Reference: ReferenceConfig{
			Driver:    "sqlite",
			Path:      "ITIS.sqlite",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "itis",
			SSLMode:   "disable",
			KingdomID: taxon.PlantaeKingdomID,
		},
		Output: OutputConfig{
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "warn",
			Destination: "stderr",
		},
		JobsNumber: 1,
	}

	return res
}
