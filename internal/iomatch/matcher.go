// Package iomatch drives a checklist through normalization, payload
// decoding, resolution and aggregation. This is an impure I/O package:
// it reports progress to the terminal and queries the reference store.
package iomatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/itismatch/internal/iocsv"
	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/normalizer"
	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/resolver"
	"github.com/gnames/itismatch/pkg/taxon"
	"golang.org/x/sync/errgroup"
)

// Item is the outcome of one input row that was not a hybrid.
type Item[P any] struct {
	// Result of the resolution. It is empty when Skipped is true.
	Result taxon.Result

	// Payload is the decoded payload.
	Payload P

	// Skipped is true when the payload could not be decoded.
	Skipped bool
}

// Output is everything a matching run produced.
type Output[P any] struct {
	// Items are in the input order.
	Items []Item[P]

	Summary Summary
}

// Matcher processes rows of one payload variant.
type Matcher[P any] struct {
	jobs     int
	norm     *normalizer.Normalizer
	resolver *resolver.Resolver
	decode   Decoder[P]
	strategy aggregator.Strategy[P]
	log      *slog.Logger
}

// New creates a Matcher. The strategy accumulates the final mapping and
// is only touched from the calling goroutine, in input order.
func New[P any](
	cfg *config.Config,
	acc reference.Accessor,
	decode Decoder[P],
	strategy aggregator.Strategy[P],
	log *slog.Logger,
) *Matcher[P] {
	if log == nil {
		log = slog.Default()
	}
	jobs := cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	return &Matcher[P]{
		jobs:     jobs,
		norm:     normalizer.New(log, cfg.LegacySubspecies),
		resolver: resolver.New(acc, log),
		decode:   decode,
		strategy: strategy,
		log:      log,
	}
}

// Match resolves all rows and feeds resolved records to the strategy.
// Unresolved records are kept in the output for reports. Store errors
// abort the run.
func (m *Matcher[P]) Match(
	ctx context.Context,
	rows []iocsv.Row,
) (Output[P], error) {
	start := time.Now()
	var res Output[P]
	res.Summary.Total = len(rows)

	recs := make([]taxon.Record, 0, len(rows))
	for _, row := range rows {
		rec, ok := m.norm.Normalize(row.Line, row.Fields)
		if !ok {
			res.Summary.Hybrids++
			continue
		}
		recs = append(recs, rec)
	}

	items := make([]Item[P], len(recs))
	bar := newProgressBar(len(recs), "Matching names ")

	var err error
	if m.jobs == 1 || len(recs) < 2 {
		err = m.sequential(ctx, recs, items, bar)
	} else {
		err = m.concurrent(ctx, recs, items, bar)
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return res, err
	}

	for _, v := range items {
		res.Summary.add(v.Skipped, v.Result)
		if v.Skipped || !v.Result.Resolved() {
			continue
		}
		m.strategy.Add(v.Result.TSN, v.Payload)
	}
	res.Items = items
	res.Summary.Mapped = m.strategy.Len()
	res.Summary.Elapsed = time.Since(start)
	res.Summary.log(m.log)
	return res, nil
}

func (m *Matcher[P]) sequential(
	ctx context.Context,
	recs []taxon.Record,
	items []Item[P],
	bar *pb.ProgressBar,
) error {
	for i, rec := range recs {
		if err := ctx.Err(); err != nil {
			return CancelledError(err)
		}
		item, err := m.process(ctx, rec)
		if err != nil {
			return err
		}
		items[i] = item
		increment(bar)
	}
	return nil
}

func (m *Matcher[P]) concurrent(
	ctx context.Context,
	recs []taxon.Record,
	items []Item[P],
	bar *pb.ProgressBar,
) error {
	chIn := make(chan int)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range recs {
			select {
			case chIn <- i:
			case <-gCtx.Done():
				return CancelledError(gCtx.Err())
			}
		}
		return nil
	})

	for range m.jobs {
		g.Go(func() error {
			for i := range chIn {
				item, err := m.process(gCtx, recs[i])
				if err != nil {
					return err
				}
				// every index is written by one worker only
				items[i] = item
				increment(bar)
			}
			return nil
		})
	}

	return g.Wait()
}

func (m *Matcher[P]) process(
	ctx context.Context,
	rec taxon.Record,
) (Item[P], error) {
	var item Item[P]
	p, ok, err := m.decode(ctx, rec)
	if err != nil {
		return item, PayloadError(rec.Line, err)
	}
	if !ok {
		item.Result.Record = rec
		item.Skipped = true
		return item, nil
	}

	item.Payload = p
	item.Result, err = m.resolver.Resolve(ctx, rec)
	if err != nil {
		return item, err
	}
	return item, nil
}
