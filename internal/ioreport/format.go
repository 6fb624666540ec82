package ioreport

import "strings"

// Format of a printed report.
type Format string

const (
	// FormatNone prints no report.
	FormatNone Format = ""
	// FormatTable is a human readable table.
	FormatTable Format = "table"
	// FormatCSV is comma separated values with a header.
	FormatCSV Format = "csv"
	// FormatTSV is tab separated values with a header.
	FormatTSV Format = "tsv"
	// FormatCompact is one JSON object per line.
	FormatCompact Format = "compact"
	// FormatPretty is an indented JSON array.
	FormatPretty Format = "pretty"
	// FormatYAML is a YAML sequence.
	FormatYAML Format = "yaml"
	// FormatSQL is an SQL dump of the final mapping.
	FormatSQL Format = "sql"
)

var formats = map[string]Format{
	"":        FormatNone,
	"table":   FormatTable,
	"csv":     FormatCSV,
	"tsv":     FormatTSV,
	"compact": FormatCompact,
	"pretty":  FormatPretty,
	"yaml":    FormatYAML,
	"sql":     FormatSQL,
}

// NewFormat parses a format name.
func NewFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := formats[s]; ok {
		return f, nil
	}
	return FormatNone, FormatError(s)
}
