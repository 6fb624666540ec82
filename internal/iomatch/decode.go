package iomatch

import (
	"context"
	"log/slog"

	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/taxon"
)

// Decoder converts the payload of a record into a value of the final
// mapping. If the boolean is false the record is skipped.
type Decoder[P any] func(ctx context.Context, rec taxon.Record) (P, bool, error)

// StatusDecoder reads native status codes. Unrecognized codes are
// treated as unknown status.
func StatusDecoder(log *slog.Logger) Decoder[taxon.Status] {
	if log == nil {
		log = slog.Default()
	}
	return func(_ context.Context, rec taxon.Record) (taxon.Status, bool, error) {
		st, ok := taxon.ParseStatus(rec.Payload)
		if !ok {
			log.Warn("Unrecognized native status, using unknown",
				"line", rec.Line,
				"name", rec.DisplayName(),
				"status", rec.Payload,
			)
		}
		return st, true, nil
	}
}

// GerminationDecoder maps germination codes to their ids in the
// reference store. Records with unknown codes are skipped.
func GerminationDecoder(
	acc reference.Accessor,
	log *slog.Logger,
) Decoder[int64] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, rec taxon.Record) (int64, bool, error) {
		id, ok, err := acc.FindGerminationCode(ctx, rec.Payload)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			log.Warn("Unknown germination code, skipping record",
				"line", rec.Line,
				"name", rec.DisplayName(),
				"germcode", rec.Payload,
			)
		}
		return id, ok, nil
	}
}
