// Package resolver maps normalized records onto accepted taxa of the
// reference taxonomy. It walks an ordered fallback chain: exact match of
// an accepted name, synonym match, retry with the accepted genus of a
// synonymous genus, and finally a substring search that only produces
// candidates for manual review.
package resolver

import (
	"context"
	"log/slog"

	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/taxon"
)

// Resolver runs the fallback chain against a reference Accessor.
// It keeps no state between records and can be shared by goroutines if
// the Accessor is safe for concurrent use.
type Resolver struct {
	acc reference.Accessor
	log *slog.Logger
}

// New creates a Resolver. A nil logger means slog.Default().
func New(acc reference.Accessor, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{acc: acc, log: log}
}

// Resolve finds the accepted taxon for a record. An unresolved record is
// not an error: the result has zero TSN and, possibly, candidates.
// Errors come only from the reference store or from a cancelled context.
func (r *Resolver) Resolve(
	ctx context.Context,
	rec taxon.Record,
) (taxon.Result, error) {
	res := taxon.Result{Record: rec}
	if err := ctx.Err(); err != nil {
		return res, CancelledError(rec, err)
	}

	name := reference.FromRecord(rec)
	r.log.Info("Looking up taxon",
		"line", rec.Line,
		"name", name.String(),
		"rank", rec.Rank,
	)

	t, syn, err := r.lookup(ctx, name, rec.Rank)
	if err != nil {
		return res, QueryError(rec, err)
	}
	if t != nil {
		via := taxon.ViaExact
		if syn {
			via = taxon.ViaSynonym
		}
		r.found(&res, t, syn, via)
		return res, nil
	}

	genus, err := r.acc.FindGenusSynonym(ctx, rec.Genus)
	if err != nil {
		return res, QueryError(rec, err)
	}
	if genus != "" {
		alt := name.WithGenus(genus)
		r.log.Info("Genus is a synonym, retrying with accepted genus",
			"line", rec.Line,
			"genus", rec.Genus,
			"accepted_genus", genus,
			"name", alt.String(),
		)
		t, _, err = r.lookup(ctx, alt, rec.Rank)
		if err != nil {
			return res, QueryError(rec, err)
		}
		if t != nil {
			res.Genus = genus
			r.found(&res, t, true, taxon.ViaGenusSynonym)
			return res, nil
		}
	}

	cands, err := r.acc.FindCandidates(ctx, name, rec.Rank)
	if err != nil {
		return res, QueryError(rec, err)
	}
	res.Candidates = cands
	if len(cands) == 0 {
		r.log.Warn("Unable to find taxon",
			"line", rec.Line,
			"name", name.String(),
			"rank", rec.Rank,
		)
		return res, nil
	}

	r.log.Warn("Unable to find an exact match, set DEBUG=1 to see candidates",
		"line", rec.Line,
		"name", name.String(),
		"rank", rec.Rank,
		"candidates", len(cands),
	)
	for _, c := range cands {
		r.log.Debug("Candidate",
			"line", rec.Line,
			"tsn", c.TSN,
			"name", c.CompleteName,
		)
	}
	return res, nil
}

// lookup tries an exact accepted match first and a synonym match second.
// The boolean is true when the taxon came from a synonym.
func (r *Resolver) lookup(
	ctx context.Context,
	name reference.Name,
	rank taxon.Rank,
) (*taxon.Taxon, bool, error) {
	t, err := r.acc.FindAcceptedExact(ctx, name, rank)
	if err != nil || t != nil {
		return t, false, err
	}

	r.log.Debug("Looking for a synonym", "name", name.String())
	t, err = r.acc.FindSynonymAccepted(ctx, name, rank)
	if err != nil {
		return nil, false, err
	}
	return t, t != nil, nil
}

func (r *Resolver) found(
	res *taxon.Result,
	t *taxon.Taxon,
	syn bool,
	via taxon.Via,
) {
	res.TSN = t.TSN
	res.Taxon = t
	res.WasSynonym = syn
	res.Via = via

	name := res.Record.DisplayName()
	if syn {
		name = "*" + name
	}
	r.log.Info("Resolved",
		"line", res.Record.Line,
		"name", name,
		"tsn", t.TSN,
		"complete_name", t.CompleteName,
		"common_names", t.CommonNamesString(),
		"via", via,
	)
}
