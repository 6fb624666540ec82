// Package taxon contains the data model shared by all stages of taxon
// resolution: ranks, input records, reference taxa, resolution results and
// native status codes.
package taxon

import "strconv"

// Rank is an ITIS rank_id. Only ranks used during resolution are listed.
type Rank int

const (
	UnknownRank Rank = 0
	Genus       Rank = 180
	Species     Rank = 220
	Subspecies  Rank = 230
	Variety     Rank = 240
)

// String returns a lowercase rank name.
func (r Rank) String() string {
	switch r {
	case Genus:
		return "genus"
	case Species:
		return "species"
	case Subspecies:
		return "subspecies"
	case Variety:
		return "variety"
	default:
		return "rank_" + strconv.Itoa(int(r))
	}
}

// IsInfraspecific is true for ranks that need a third name component.
func (r Rank) IsInfraspecific() bool {
	return r == Subspecies || r == Variety
}

// Infraspecific rank indicators as they appear in input files.
const (
	VarietyIndicator    = "var."
	SubspeciesIndicator = "subsp."
)

// RankFromIndicator converts an infraspecific indicator into a rank.
// Anything that is not a known indicator means a species-level record.
func RankFromIndicator(ind string) Rank {
	switch ind {
	case VarietyIndicator:
		return Variety
	case SubspeciesIndicator:
		return Subspecies
	default:
		return Species
	}
}
