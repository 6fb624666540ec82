package taxon

import "strings"

// PlantaeKingdomID is the ITIS kingdom_id of Plantae.
const PlantaeKingdomID = 3

// NoCommonName is shown when a taxon has no vernacular names.
const NoCommonName = "no common name known"

// Taxon is a row of the reference taxonomy (ITIS taxonomic_units) together
// with its vernacular names.
type Taxon struct {
	// TSN is the ITIS Taxonomic Serial Number.
	TSN int64 `json:"tsn" yaml:"tsn"`

	// Rank of the taxon.
	Rank Rank `json:"rank" yaml:"rank"`

	// CompleteName is the display name from the reference store.
	CompleteName string `json:"completeName" yaml:"complete_name"`

	// CommonNames are vernacular names sorted alphabetically.
	CommonNames []string `json:"commonNames,omitempty" yaml:"common_names,omitempty"`

	// KingdomID is the ITIS kingdom of the taxon.
	KingdomID int `json:"kingdomId" yaml:"kingdom_id"`

	// Accepted is true when name_usage is 'accepted'.
	Accepted bool `json:"accepted" yaml:"accepted"`
}

// CommonNamesString joins common names or returns NoCommonName.
func (t Taxon) CommonNamesString() string {
	if len(t.CommonNames) == 0 {
		return NoCommonName
	}
	return strings.Join(t.CommonNames, ", ")
}
