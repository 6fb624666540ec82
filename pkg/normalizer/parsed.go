package normalizer

import (
	"errors"
	"fmt"

	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/itismatch/pkg/taxon"
)

var (
	// ErrNotParsed is returned for strings gnparser could not parse.
	ErrNotParsed = errors.New("name-string is not parseable")

	// ErrNotSpecies is returned for names that are not binomials or
	// trinomials.
	ErrNotSpecies = errors.New("name is not a species or infraspecies")

	// ErrHybrid is returned for hybrid formulas and named hybrids.
	ErrHybrid = errors.New("hybrids are not resolved")
)

// rankIndicators maps normalized rank words of gnparser to input
// indicators.
var rankIndicators = map[string]string{
	"var.":    taxon.VarietyIndicator,
	"subsp.":  taxon.SubspeciesIndicator,
	"ssp.":    taxon.SubspeciesIndicator,
	"subvar.": "",
}

// FromParsed builds a Record out of a name parsed by gnparser.
// It requires details (words) in the parsed result.
func (n *Normalizer) FromParsed(p parsed.Parsed, payload string) (taxon.Record, error) {
	var rec taxon.Record
	if !p.Parsed {
		return rec, ErrNotParsed
	}
	if p.Hybrid != nil {
		n.log.Info("Skipping hybrid", "name", p.Verbatim)
		return rec, ErrHybrid
	}
	if p.Cardinality < 2 || p.Cardinality > 3 {
		return rec, ErrNotSpecies
	}

	var rankWord string
	for _, w := range p.Words {
		switch w.Type {
		case parsed.GenusType:
			rec.Genus = w.Normalized
		case parsed.SpEpithetType:
			rec.Species = w.Normalized
		case parsed.InfraspEpithetType:
			rec.InfraName = w.Normalized
		case parsed.RankType:
			rankWord = w.Normalized
		}
	}
	if rec.Genus == "" || rec.Species == "" {
		return rec, ErrNotSpecies
	}

	if rec.InfraName != "" {
		ind, ok := rankIndicators[rankWord]
		if !ok || ind == "" {
			return rec, fmt.Errorf("%w: unsupported rank '%s'",
				ErrNotSpecies, rankWord)
		}
		rec.InfraIndicator = ind
	}

	rec.Payload = payload
	rec.Rank = n.rank(rec.InfraIndicator)
	return rec, nil
}
