package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Output.Path, Output.UpdateReference).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Reference.Driver
	if s != "" {
		res = append(res, OptReferenceDriver(s))
	}
	s = c.Reference.Path
	if s != "" {
		res = append(res, OptReferencePath(s))
	}
	s = c.Reference.Host
	if s != "" {
		res = append(res, OptReferenceHost(s))
	}
	i = c.Reference.Port
	if i > 0 {
		res = append(res, OptReferencePort(i))
	}
	s = c.Reference.User
	if s != "" {
		res = append(res, OptReferenceUser(s))
	}
	s = c.Reference.Password
	if s != "" {
		res = append(res, OptReferencePassword(s))
	}
	s = c.Reference.Database
	if s != "" {
		res = append(res, OptReferenceDatabase(s))
	}
	s = c.Reference.SSLMode
	if s != "" {
		res = append(res, OptReferenceSSLMode(s))
	}
	i = c.Reference.KingdomID
	if i > 0 {
		res = append(res, OptReferenceKingdomID(i))
	}

	s = c.Output.Format
	if s != "" {
		res = append(res, OptOutputFormat(s))
	}
	i = c.Output.BatchSize
	if i > 0 {
		res = append(res, OptOutputBatchSize(i))
	}
	i = c.Output.CandidatesLimit
	if i > 0 {
		res = append(res, OptOutputCandidatesLimit(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	if c.LegacySubspecies {
		res = append(res, OptLegacySubspecies(true))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Reference.Driver": {"sqlite": s, "postgres": s},
		"Reference.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Output.Format": {"table": s, "csv": s, "tsv": s, "compact": s,
			"pretty": s, "yaml": s, "sql": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
