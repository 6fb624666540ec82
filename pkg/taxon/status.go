package taxon

import "strings"

// Status is a native status code of a taxon in a region.
type Status string

const (
	Native     Status = "N"
	Introduced Status = "I"
	Unknown    Status = "U"
)

// ParseStatus converts an input code to a Status. Codes outside of
// N/I/U are reported as not ok and treated as Unknown.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return Native, true
	case "I":
		return Introduced, true
	case "U":
		return Unknown, true
	default:
		return Unknown, false
	}
}

// MergeStatus combines statuses of two records of the same taxon.
// Unknown yields the other value, native dominates introduced.
func MergeStatus(a, b Status) Status {
	if a == Unknown {
		return b
	}
	if b == Unknown {
		return a
	}
	if a == Native || b == Native {
		return Native
	}
	return Introduced
}
