// Package normalizer turns raw input rows into taxon records: it cleans
// every field, detects hybrids and derives the rank of a name.
// This is a pure package.
package normalizer

import (
	"log/slog"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/itismatch/pkg/taxon"
	"golang.org/x/text/unicode/norm"
)

// Positions of name fields in an input row. Payload columns start at
// PayloadStart.
const (
	GenusHybridField = iota
	GenusField
	SpeciesHybridField
	SpeciesField
	InfraIndicatorField
	InfraNameField
	PayloadStart
)

// hybridMarkers are values of hybrid indicator columns that mark a
// hybrid cross.
var hybridMarkers = map[string]struct{}{
	"X": {},
	"x": {},
	"×": {},
}

// Normalizer cleans input rows and classifies their rank.
type Normalizer struct {
	log              *slog.Logger
	legacySubspecies bool
}

// New creates a Normalizer. If legacySubspecies is true, records with
// the "subsp." indicator are ranked as species.
func New(log *slog.Logger, legacySubspecies bool) *Normalizer {
	if log == nil {
		log = slog.Default()
	}
	return &Normalizer{log: log, legacySubspecies: legacySubspecies}
}

// Normalize converts one row into a Record. The second value is false
// when the record names a hybrid and has to be skipped.
func (n *Normalizer) Normalize(line int, fields []string) (taxon.Record, bool) {
	fs := make([]string, max(len(fields), PayloadStart+1))
	for i, v := range fields {
		fs[i] = Clean(v)
	}

	rec := taxon.Record{
		Line:           line,
		Genus:          fs[GenusField],
		GenusHybrid:    IsHybridMarker(fs[GenusHybridField]),
		Species:        fs[SpeciesField],
		SpeciesHybrid:  IsHybridMarker(fs[SpeciesHybridField]),
		InfraIndicator: fs[InfraIndicatorField],
		InfraName:      fs[InfraNameField],
		Payload:        fs[PayloadStart],
	}
	if len(fs) > PayloadStart+1 {
		rec.Extra = fs[PayloadStart+1:]
	}

	if rec.IsHybrid() {
		n.log.Info("Skipping hybrid",
			"line", line,
			"name", rec.DisplayName(),
		)
		return rec, false
	}

	rec.Rank = n.rank(rec.InfraIndicator)
	return rec, true
}

func (n *Normalizer) rank(ind string) taxon.Rank {
	rank := taxon.RankFromIndicator(ind)
	if rank == taxon.Subspecies && n.legacySubspecies {
		return taxon.Species
	}
	return rank
}

// Clean repairs UTF-8, converts a string to NFC and trims spaces.
func Clean(s string) string {
	s = gnlib.FixUtf8(s)
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}

// IsHybridMarker checks if a cleaned indicator marks a hybrid.
func IsHybridMarker(s string) bool {
	_, ok := hybridMarkers[s]
	return ok
}
