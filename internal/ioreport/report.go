// Package ioreport prints resolution results and final mappings in
// table, CSV, TSV, JSON or YAML formats.
package ioreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/itismatch/internal/iomatch"
	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/taxon"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Row is a flat view of one resolution result.
type Row struct {
	Line             int           `json:"line,omitempty" yaml:"line,omitempty"`
	NameID           string        `json:"nameId" yaml:"name_id"`
	Name             string        `json:"name" yaml:"name"`
	Payload          string        `json:"payload,omitempty" yaml:"payload,omitempty"`
	Skipped          bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Resolution       string        `json:"resolution" yaml:"resolution"`
	TSN              int64         `json:"tsn,omitempty" yaml:"tsn,omitempty"`
	AcceptedName     string        `json:"acceptedName,omitempty" yaml:"accepted_name,omitempty"`
	WasSynonym       bool          `json:"wasSynonym,omitempty" yaml:"was_synonym,omitempty"`
	ReplacementGenus string        `json:"replacementGenus,omitempty" yaml:"replacement_genus,omitempty"`
	CommonNames      []string      `json:"commonNames,omitempty" yaml:"common_names,omitempty"`
	Candidates       []taxon.Taxon `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// FromResult converts a resolution result into a Row.
func FromResult(res taxon.Result, skipped bool) Row {
	rec := res.Record
	row := Row{
		Line:             rec.Line,
		NameID:           rec.NameID().String(),
		Name:             rec.DisplayName(),
		Payload:          rec.Payload,
		Skipped:          skipped,
		Resolution:       res.Via.String(),
		TSN:              res.TSN,
		WasSynonym:       res.WasSynonym,
		ReplacementGenus: res.Genus,
		Candidates:       res.Candidates,
	}
	if skipped {
		row.Resolution = "skipped"
	}
	if res.Taxon != nil {
		row.AcceptedName = res.Taxon.CompleteName
		row.CommonNames = res.Taxon.CommonNames
	}
	return row
}

// FromItems converts matcher items into rows, keeping their order.
func FromItems[P any](items []iomatch.Item[P]) []Row {
	res := make([]Row, len(items))
	for i, v := range items {
		res[i] = FromResult(v.Result, v.Skipped)
	}
	return res
}

var rowHeader = []string{
	"Line", "NameID", "Name", "Payload", "Resolution", "TSN",
	"AcceptedName", "WasSynonym", "ReplacementGenus", "CommonNames",
	"Candidates",
}

func (r Row) fields() []string {
	var tsn string
	if r.TSN != 0 {
		tsn = strconv.FormatInt(r.TSN, 10)
	}
	var line string
	if r.Line > 0 {
		line = strconv.Itoa(r.Line)
	}
	cands := make([]string, len(r.Candidates))
	for i, v := range r.Candidates {
		cands[i] = fmt.Sprintf("%d: %s", v.TSN, v.CompleteName)
	}
	return []string{
		line, r.NameID, r.Name, r.Payload, r.Resolution, tsn,
		r.AcceptedName, strconv.FormatBool(r.WasSynonym),
		r.ReplacementGenus, strings.Join(r.CommonNames, "|"),
		strings.Join(cands, "|"),
	}
}

// WriteResults prints rows in the given format. FormatNone prints
// nothing. FormatSQL is not supported for results.
func WriteResults(w io.Writer, f Format, rows []Row) error {
	data := make([][]string, len(rows))
	for i, v := range rows {
		data[i] = v.fields()
	}
	rep := report{
		header: rowHeader,
		rows:   data,
		values: rows,
		// name-string UUIDs are too wide for a terminal
		skipTable: map[int]bool{1: true},
	}
	return rep.write(w, f)
}

// WriteStatus prints the final status mapping.
func WriteStatus(w io.Writer, f Format, entries []aggregator.StatusEntry) error {
	data := make([][]string, len(entries))
	for i, v := range entries {
		data[i] = []string{strconv.FormatInt(v.TSN, 10), string(v.Status)}
	}
	rep := report{
		header: []string{"TSN", "NativeStatus"},
		rows:   data,
		values: entries,
	}
	return rep.write(w, f)
}

// WriteGermination prints the final germination pairs.
func WriteGermination(w io.Writer, f Format, pairs []aggregator.CodePair) error {
	data := make([][]string, len(pairs))
	for i, v := range pairs {
		data[i] = []string{
			strconv.FormatInt(v.TSN, 10),
			strconv.FormatInt(v.CodeID, 10),
		}
	}
	rep := report{
		header: []string{"TSN", "GermID"},
		rows:   data,
		values: pairs,
	}
	return rep.write(w, f)
}

type report struct {
	header    []string
	rows      [][]string
	values    any
	skipTable map[int]bool
}

func (r report) write(w io.Writer, f Format) error {
	var err error
	switch f {
	case FormatNone:
		return nil
	case FormatTable:
		err = r.table(w)
	case FormatCSV:
		err = r.csv(w, ',')
	case FormatTSV:
		err = r.csv(w, '\t')
	case FormatCompact:
		err = r.compact(w)
	case FormatPretty:
		err = r.pretty(w)
	case FormatYAML:
		err = r.yaml(w)
	default:
		return FormatError(string(f))
	}
	if err != nil {
		return WriteError(f, err)
	}
	return nil
}

func (r report) table(w io.Writer) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	pick := func(fs []string) table.Row {
		res := make(table.Row, 0, len(fs))
		for i, v := range fs {
			if r.skipTable[i] {
				continue
			}
			res = append(res, v)
		}
		return res
	}

	tw.AppendHeader(pick(r.header))
	for _, v := range r.rows {
		tw.AppendRow(pick(v))
	}

	var configs []table.ColumnConfig
	var num int
	for i, v := range r.header {
		if r.skipTable[i] {
			continue
		}
		num++
		if v == "TSN" || v == "Line" || v == "GermID" {
			configs = append(configs, table.ColumnConfig{
				Number:      num,
				Align:       text.AlignRight,
				AlignHeader: text.AlignLeft,
			})
		}
	}
	tw.SetColumnConfigs(configs)

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func (r report) csv(w io.Writer, sep rune) error {
	if _, err := fmt.Fprintln(w, gnfmt.ToCSV(r.header, sep)); err != nil {
		return err
	}
	for _, v := range r.rows {
		if _, err := fmt.Fprintln(w, gnfmt.ToCSV(v, sep)); err != nil {
			return err
		}
	}
	return nil
}

func (r report) compact(w io.Writer) error {
	enc := gnfmt.GNjson{}
	var err error
	switch vals := r.values.(type) {
	case []Row:
		err = eachJSON(w, enc, vals)
	case []aggregator.StatusEntry:
		err = eachJSON(w, enc, vals)
	case []aggregator.CodePair:
		err = eachJSON(w, enc, vals)
	default:
		err = oneJSON(w, enc, vals)
	}
	return err
}

func eachJSON[T any](w io.Writer, enc gnfmt.GNjson, vals []T) error {
	for _, v := range vals {
		if err := oneJSON(w, enc, v); err != nil {
			return err
		}
	}
	return nil
}

func oneJSON(w io.Writer, enc gnfmt.GNjson, v any) error {
	bs, err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

func (r report) pretty(w io.Writer) error {
	return oneJSON(w, gnfmt.GNjson{Pretty: true}, r.values)
}

func (r report) yaml(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.values); err != nil {
		return err
	}
	return enc.Close()
}
