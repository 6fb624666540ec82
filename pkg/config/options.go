package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptReferenceDriver sets the reference store driver.
// Valid values: "sqlite", "postgres".
func OptReferenceDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Reference.Driver", s) {
			c.Reference.Driver = s
		}
	}
}

// OptReferencePath sets the path to the SQLite ITIS snapshot.
func OptReferencePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Path", s) {
			c.Reference.Path = s
		}
	}
}

// OptReferenceHost sets the PostgreSQL server hostname or IP address.
func OptReferenceHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Host", s) {
			c.Reference.Host = s
		}
	}
}

// OptReferencePort sets the PostgreSQL server port number.
func OptReferencePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Reference Port", i) {
			c.Reference.Port = i
		}
	}
}

// OptReferenceUser sets the PostgreSQL database username.
func OptReferenceUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference User", s) {
			c.Reference.User = s
		}
	}
}

// OptReferencePassword sets the PostgreSQL database password.
func OptReferencePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Password", s) {
			c.Reference.Password = s
		}
	}
}

// OptReferenceDatabase sets the PostgreSQL database name.
func OptReferenceDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reference Database", s) {
			c.Reference.Database = s
		}
	}
}

// OptReferenceSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptReferenceSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Reference.SSLMode", s) {
			c.Reference.SSLMode = s
		}
	}
}

// OptReferenceKingdomID sets the ITIS kingdom all lookups are limited to.
func OptReferenceKingdomID(i int) Option {
	return func(c *Config) {
		if isValidInt("Kingdom ID", i) {
			c.Reference.KingdomID = i
		}
	}
}

// OptOutputFormat sets the report format.
// Valid values: "table", "csv", "tsv", "compact", "pretty", "yaml", "sql".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptOutputBatchSize sets the number of rows per insert statement.
func OptOutputBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Output.BatchSize = i
		}
	}
}

// OptOutputCandidatesLimit caps the number of diagnostic candidates.
// Zero removes the limit.
func OptOutputCandidatesLimit(i int) Option {
	return func(c *Config) {
		if i < 0 {
			isValidInt("Candidates Limit", i)
			return
		}
		c.Output.CandidatesLimit = i
	}
}

// OptOutputPath sets the SQLite file for output tables.
// Runtime-only field - not in ToOptions().
func OptOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.Output.Path = s
		}
	}
}

// OptOutputUpdateReference enables writing results into the reference
// store. Runtime-only field - not in ToOptions().
func OptOutputUpdateReference(b bool) Option {
	return func(c *Config) {
		c.Output.UpdateReference = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent resolution workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptLegacySubspecies switches on the legacy species-rank lookup of
// "subsp." records.
func OptLegacySubspecies(b bool) Option {
	return func(c *Config) {
		c.LegacySubspecies = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
