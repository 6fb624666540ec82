package taxon

import (
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Record is one input row after normalization.
type Record struct {
	// Line is the 1-based line number in the input file, 0 when the record
	// did not come from a file.
	Line int

	// Genus is the generic name (unit_name1).
	Genus string
	// GenusHybrid is true when the genus hybrid indicator is set.
	GenusHybrid bool

	// Species is the specific epithet (unit_name2).
	Species string
	// SpeciesHybrid is true when the species hybrid indicator is set.
	SpeciesHybrid bool

	// InfraIndicator is "var.", "subsp." or empty.
	InfraIndicator string
	// InfraName is the infraspecific epithet (unit_name3).
	InfraName string

	// Rank is derived from InfraIndicator by the normalizer.
	Rank Rank

	// Payload is the first payload column: a native status code or a
	// germination code. It is kept as an opaque string.
	Payload string

	// Extra keeps the remaining payload columns (for example rarity and
	// invasive status), they are reported but never merged.
	Extra []string
}

// IsHybrid is true if any of the hybrid indicators is set.
func (r Record) IsHybrid() bool {
	return r.GenusHybrid || r.SpeciesHybrid
}

// DisplayName joins non-empty name components with spaces.
func (r Record) DisplayName() string {
	return DisplayName(r.Genus, r.Species, r.InfraName)
}

// NameID is a UUID v5 of the display name, the same identifier
// GNverifier gives to a name-string.
func (r Record) NameID() uuid.UUID {
	return gnuuid.New(r.DisplayName())
}

// DisplayName joins non-empty name parts with spaces.
func DisplayName(parts ...string) string {
	res := make([]string, 0, len(parts))
	for _, v := range parts {
		if v != "" {
			res = append(res, v)
		}
	}
	return strings.Join(res, " ")
}
