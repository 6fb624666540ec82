package taxon

// Via tells which step of the resolution chain produced a result.
type Via int

const (
	// NotResolved means the record went through the whole chain without
	// a match.
	NotResolved Via = iota
	// ViaExact is an exact match of an accepted name.
	ViaExact
	// ViaSynonym is a match of a not accepted name followed to its
	// accepted taxon.
	ViaSynonym
	// ViaGenusSynonym is a match after replacing a synonymous genus.
	ViaGenusSynonym
)

// String returns the name of the resolution step.
func (v Via) String() string {
	switch v {
	case ViaExact:
		return "exact"
	case ViaSynonym:
		return "synonym"
	case ViaGenusSynonym:
		return "genus_synonym"
	default:
		return "not_resolved"
	}
}

// Result is the outcome of resolving one Record.
type Result struct {
	// Record is the normalized input.
	Record Record

	// TSN of the accepted taxon, 0 when the record was not resolved.
	TSN int64

	// Taxon is the accepted taxon, nil when the record was not resolved.
	Taxon *Taxon

	// WasSynonym is true when the accepted taxon was reached through a
	// synonym link (directly or after a genus replacement).
	WasSynonym bool

	// Via is the step of the chain that resolved the record.
	Via Via

	// Genus is the replacement genus used by the genus-synonym retry.
	Genus string

	// Candidates are near-miss taxa found by substring search for
	// unresolved records.
	Candidates []Taxon
}

// Resolved is true when the record got a TSN.
func (r Result) Resolved() bool {
	return r.TSN != 0
}
