// Package sink defines where final mappings are stored. The
// implementation lives in internal/iosink.
package sink

import (
	"context"
	"io"

	"github.com/gnames/itismatch/pkg/aggregator"
)

// Sink persists final mappings.
type Sink interface {
	// WriteStatus drops the status relation, creates it anew and stores
	// entries in it.
	WriteStatus(ctx context.Context, entries []aggregator.StatusEntry) error

	// WriteGermination creates a fresh germination relation and stores
	// pairs in it. Pairs that are already present are ignored.
	WriteGermination(ctx context.Context, pairs []aggregator.CodePair) error

	// Dump writes a table as SQL statements that recreate it.
	Dump(ctx context.Context, w io.Writer, table string) error

	// Close releases the connection.
	Close() error
}
