// Package reference defines the read-only contract of the reference
// taxonomy store (an ITIS snapshot). This is a pure package, the
// implementation lives in internal/ioitis.
package reference

import (
	"context"

	"github.com/gnames/itismatch/pkg/taxon"
)

// Name keeps one to three name components used for a lookup.
// Genus maps to unit_name1, Species to unit_name2 and Infra to
// unit_name3.
type Name struct {
	Genus   string
	Species string
	Infra   string
}

// FromRecord takes name components out of a Record.
func FromRecord(r taxon.Record) Name {
	return Name{Genus: r.Genus, Species: r.Species, Infra: r.InfraName}
}

// WithGenus returns a copy of the name with a replaced genus.
func (n Name) WithGenus(genus string) Name {
	n.Genus = genus
	return n
}

// String joins non-empty components.
func (n Name) String() string {
	return taxon.DisplayName(n.Genus, n.Species, n.Infra)
}

// Accessor gives read-only access to the reference taxonomy.
// All lookups are scoped to the configured kingdom. Returned errors
// indicate store failures only, "not found" is a nil result.
type Accessor interface {
	// FindAcceptedExact returns the first accepted taxon that matches the
	// name and the rank exactly. For species only Genus and Species are
	// compared, for infraspecific ranks Infra is compared as well.
	FindAcceptedExact(ctx context.Context, name Name, rank taxon.Rank) (*taxon.Taxon, error)

	// FindSynonymAccepted finds a not accepted taxon matching the name and
	// the rank exactly and follows its synonym link one hop to the
	// accepted taxon. The rank of the accepted taxon is not checked.
	FindSynonymAccepted(ctx context.Context, name Name, rank taxon.Rank) (*taxon.Taxon, error)

	// FindGenusSynonym returns the accepted genus for a genus that is not
	// accepted, or an empty string.
	FindGenusSynonym(ctx context.Context, genus string) (string, error)

	// FindCandidates returns taxa whose name components contain the
	// corresponding non-empty components of the name (case insensitive).
	// Results are ordered by TSN.
	FindCandidates(ctx context.Context, name Name, rank taxon.Rank) ([]taxon.Taxon, error)

	// FindGerminationCode maps an external germination code to its
	// internal id. The boolean is false for unknown codes.
	FindGerminationCode(ctx context.Context, code string) (int64, bool, error)
}
