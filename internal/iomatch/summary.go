package iomatch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/itismatch/pkg/taxon"
)

// Summary counts outcomes of a matching run.
type Summary struct {
	Total          int           `json:"total" yaml:"total"`
	Hybrids        int           `json:"skippedHybrids" yaml:"skipped_hybrids"`
	SkippedPayload int           `json:"skippedPayload" yaml:"skipped_payload"`
	Exact          int           `json:"exact" yaml:"exact"`
	Synonym        int           `json:"synonym" yaml:"synonym"`
	GenusSynonym   int           `json:"genusSynonym" yaml:"genus_synonym"`
	Unresolved     int           `json:"unresolved" yaml:"unresolved"`
	WithCandidates int           `json:"withCandidates" yaml:"with_candidates"`
	Mapped         int           `json:"mapped" yaml:"mapped"`
	Elapsed        time.Duration `json:"-" yaml:"-"`
}

// Resolved is the number of records that got a TSN.
func (s Summary) Resolved() int {
	return s.Exact + s.Synonym + s.GenusSynonym
}

func (s *Summary) add(skipped bool, res taxon.Result) {
	if skipped {
		s.SkippedPayload++
		return
	}
	switch res.Via {
	case taxon.ViaExact:
		s.Exact++
	case taxon.ViaSynonym:
		s.Synonym++
	case taxon.ViaGenusSynonym:
		s.GenusSynonym++
	default:
		s.Unresolved++
		if len(res.Candidates) > 0 {
			s.WithCandidates++
		}
	}
}

func (s Summary) log(log *slog.Logger) {
	log.Info("Matching complete",
		"total", s.Total,
		"resolved", s.Resolved(),
		"exact", s.Exact,
		"synonym", s.Synonym,
		"genus_synonym", s.GenusSynonym,
		"unresolved", s.Unresolved,
		"with_candidates", s.WithCandidates,
		"skipped_hybrids", s.Hybrids,
		"skipped_payload", s.SkippedPayload,
		"mapped", s.Mapped,
		"duration", gnfmt.TimeString(s.Elapsed.Seconds()),
	)
}

// String formats the summary for a user message.
func (s Summary) String() string {
	c := func(i int) string { return humanize.Comma(int64(i)) }
	return fmt.Sprintf(`Matching complete
Records: %s, resolved: <em>%s</em> (exact %s, synonym %s, genus synonym %s)
Unresolved: %s (with candidates %s), skipped hybrids: %s, skipped payload: %s
Taxa in the final mapping: <em>%s</em>. Elapsed time: <em>%s</em>`,
		c(s.Total), c(s.Resolved()), c(s.Exact), c(s.Synonym),
		c(s.GenusSynonym), c(s.Unresolved), c(s.WithCandidates),
		c(s.Hybrids), c(s.SkippedPayload), c(s.Mapped),
		gnfmt.TimeString(s.Elapsed.Seconds()),
	)
}

// Report prints the summary for a user.
func (s Summary) Report() {
	gn.Info(s.String())
}
