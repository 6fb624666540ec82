// Package iocsv reads checklists in CSV format. The header of a file is
// validated against an expected schema before any row is returned.
package iocsv

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// Schema is the expected header of an input file.
type Schema struct {
	// Name of the schema for messages.
	Name string

	// Fields are the column names in order.
	Fields []string
}

var (
	// StatusSchema is the header of native status checklists.
	StatusSchema = Schema{
		Name: "status",
		Fields: []string{
			"X", "genus", "X", "species", "subttype", "subtaxa",
			"native_status", "rarity_status", "invasive_status",
		},
	}

	// GerminationSchema is the header of germination code lists.
	GerminationSchema = Schema{
		Name: "germination",
		Fields: []string{
			"X", "genus", "X", "species", "subttype", "subtaxa",
			"germcode",
		},
	}
)

// Row is one data row of the input.
type Row struct {
	// Line is the line number of the row in the file.
	Line int

	// Fields are raw values of the row.
	Fields []string
}

// Reader returns validated rows of a CSV file.
type Reader struct {
	path   string
	closer io.Closer
	csv    *csv.Reader
	schema Schema
}

// Open opens a file and validates its header.
func Open(path string, s Schema) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	r, err := newReader(path, f, s)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader validates the header of a CSV stream.
func NewReader(r io.Reader, s Schema) (*Reader, error) {
	return newReader("input", r, s)
}

func newReader(path string, r io.Reader, s Schema) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, EmptyFileError(path)
	}
	if err != nil {
		return nil, RowError(path, 1, err)
	}
	if err = s.Check(header); err != nil {
		return nil, SchemaError(path, s, err)
	}

	cr.FieldsPerRecord = len(s.Fields)
	return &Reader{path: path, csv: cr, schema: s}, nil
}

// Check compares a header with the schema. A leading byte order mark
// and surrounding spaces are ignored.
func (s Schema) Check(header []string) error {
	if len(header) != len(s.Fields) {
		return &HeaderError{Expected: len(s.Fields), Found: len(header)}
	}
	for i, v := range header {
		if i == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.TrimSpace(v)
		if v != s.Fields[i] {
			return &HeaderError{
				Column: i, Expected: len(s.Fields), Found: len(header),
				Want: s.Fields[i], Got: v,
			}
		}
	}
	return nil
}

// Read returns the next row or io.EOF.
func (r *Reader) Read() (Row, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		var perr *csv.ParseError
		line := 0
		if errors.As(err, &perr) {
			line = perr.Line
		}
		return Row{}, RowError(r.path, line, err)
	}
	line, _ := r.csv.FieldPos(0)
	return Row{Line: line, Fields: rec}, nil
}

// ReadAll returns all remaining rows.
func (r *Reader) ReadAll() ([]Row, error) {
	var res []Row
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, row)
	}
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
