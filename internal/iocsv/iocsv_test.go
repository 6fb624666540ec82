package iocsv_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iocsv"
	"github.com/gnames/itismatch/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusCSV = `X,genus,X,species,subttype,subtaxa,native_status,rarity_status,invasive_status
,Acer,,rubrum,,,N,,
,Acer,,saccharum,var.,nigrum,N,SC,
X,Elyhordeum,,montanense,,,N,,
`

func TestReader(t *testing.T) {
	r, err := iocsv.NewReader(strings.NewReader(statusCSV),
		iocsv.StatusSchema)
	require.NoError(t, err)

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Acer", rows[0].Fields[1])
	assert.Equal(t, "rubrum", rows[0].Fields[3])
	assert.Len(t, rows[0].Fields, 9)

	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, "var.", rows[1].Fields[4])
	assert.Equal(t, "SC", rows[1].Fields[7])

	assert.Equal(t, "X", rows[2].Fields[0])

	_, err = r.Read()
	assert.True(t, errors.Is(err, io.EOF))
	assert.NoError(t, r.Close())
}

func TestHeaderValidation(t *testing.T) {
	tests := []struct {
		msg    string
		input  string
		schema iocsv.Schema
		errMsg string
	}{
		{
			msg:    "germination ok",
			input:  "X,genus,X,species,subttype,subtaxa,germcode\n,Acer,,rubrum,,,A\n",
			schema: iocsv.GerminationSchema,
		},
		{
			msg:    "spaces and BOM ignored",
			input:  "\ufeffX, genus ,X,species,subttype,subtaxa,germcode\n",
			schema: iocsv.GerminationSchema,
		},
		{
			msg:    "too few columns",
			input:  "X,genus,X,species,subttype,subtaxa,germcode\n",
			schema: iocsv.StatusSchema,
			errMsg: "expected 9 fields, found 7",
		},
		{
			msg:    "wrong name",
			input:  "X,genus,X,epithet,subttype,subtaxa,germcode\n",
			schema: iocsv.GerminationSchema,
			errMsg: "expected field named 'species' in column 3, found 'epithet'",
		},
		{
			msg:    "empty",
			input:  "",
			schema: iocsv.GerminationSchema,
			errMsg: "empty input",
		},
	}

	for _, v := range tests {
		_, err := iocsv.NewReader(strings.NewReader(v.input), v.schema)
		if v.errMsg == "" {
			assert.NoError(t, err, v.msg)
			continue
		}
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.InputSchemaError, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.errMsg, v.msg)
	}
}

func TestRowFieldCount(t *testing.T) {
	input := "X,genus,X,species,subttype,subtaxa,germcode\n" +
		",Acer,,rubrum,,,A\n" +
		",Acer,,rubrum\n"
	r, err := iocsv.NewReader(strings.NewReader(input),
		iocsv.GerminationSchema)
	require.NoError(t, err)

	_, err = r.Read()
	require.NoError(t, err)

	_, err = r.Read()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InputRowError, gnErr.Code)
	assert.Equal(t, 3, gnErr.Vars[0])
}

func TestOpen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()

	_, err := iocsv.Open(filepath.Join(dir, "none.csv"), iocsv.StatusSchema)
	require.Error(t, err)
	assert.Equal(t, errcode.InputOpenError, err.(*gn.Error).Code)

	path := filepath.Join(dir, "species.csv")
	require.NoError(t, os.WriteFile(path, []byte(statusCSV), 0644))
	r, err := iocsv.Open(path, iocsv.StatusSchema)
	require.NoError(t, err)
	defer r.Close()

	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
