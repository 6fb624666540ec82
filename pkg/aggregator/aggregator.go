// Package aggregator collects resolved records into the final mapping.
// The payload policy is injected: StatusMerger combines native status
// codes with the status lattice, CodeDeduper keeps unique
// (taxon, germination code) pairs.
package aggregator

import (
	"cmp"
	"slices"

	"github.com/gnames/itismatch/pkg/taxon"
)

// Strategy accumulates payloads of resolved records keyed by TSN.
type Strategy[P any] interface {
	// Add registers a payload for a taxon. It returns true when the
	// call created a new entry.
	Add(tsn int64, payload P) bool

	// Len is the number of entries in the final mapping.
	Len() int
}

// StatusEntry is one row of the status mapping.
type StatusEntry struct {
	TSN    int64        `json:"tsn" yaml:"tsn"`
	Status taxon.Status `json:"nativeStatus" yaml:"native_status"`
}

// StatusMerger merges statuses of records that resolve to the same
// taxon. Entries are created on first sight and never removed.
type StatusMerger struct {
	taxa map[int64]taxon.Status
}

// NewStatusMerger creates an empty StatusMerger.
func NewStatusMerger() *StatusMerger {
	return &StatusMerger{taxa: make(map[int64]taxon.Status)}
}

// Add merges status into the entry of tsn.
func (m *StatusMerger) Add(tsn int64, status taxon.Status) bool {
	old, ok := m.taxa[tsn]
	if !ok {
		m.taxa[tsn] = status
		return true
	}
	m.taxa[tsn] = taxon.MergeStatus(old, status)
	return false
}

// Get returns the merged status of a taxon.
func (m *StatusMerger) Get(tsn int64) (taxon.Status, bool) {
	res, ok := m.taxa[tsn]
	return res, ok
}

// Len returns the number of taxa.
func (m *StatusMerger) Len() int {
	return len(m.taxa)
}

// Entries returns the mapping sorted by TSN.
func (m *StatusMerger) Entries() []StatusEntry {
	res := make([]StatusEntry, 0, len(m.taxa))
	for k, v := range m.taxa {
		res = append(res, StatusEntry{TSN: k, Status: v})
	}
	slices.SortFunc(res, func(a, b StatusEntry) int {
		return cmp.Compare(a.TSN, b.TSN)
	})
	return res
}

// CodePair links a taxon to an internal germination code id.
type CodePair struct {
	TSN    int64 `json:"tsn" yaml:"tsn"`
	CodeID int64 `json:"germId" yaml:"germ_id"`
}

// CodeDeduper keeps unique (TSN, CodeID) pairs in the order they were
// first seen.
type CodeDeduper struct {
	seen  map[CodePair]struct{}
	pairs []CodePair
}

// NewCodeDeduper creates an empty CodeDeduper.
func NewCodeDeduper() *CodeDeduper {
	return &CodeDeduper{seen: make(map[CodePair]struct{})}
}

// Add stores a pair unless it is already known.
func (d *CodeDeduper) Add(tsn int64, codeID int64) bool {
	p := CodePair{TSN: tsn, CodeID: codeID}
	if _, ok := d.seen[p]; ok {
		return false
	}
	d.seen[p] = struct{}{}
	d.pairs = append(d.pairs, p)
	return true
}

// Len returns the number of unique pairs.
func (d *CodeDeduper) Len() int {
	return len(d.pairs)
}

// Pairs returns a copy of unique pairs in insertion order.
func (d *CodeDeduper) Pairs() []CodePair {
	return slices.Clone(d.pairs)
}
