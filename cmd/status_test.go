package cmd

import (
	"context"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iodb"
	"github.com/gnames/itismatch/internal/iotesting"
	"github.com/gnames/itismatch/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statusHeader = "X,genus,X,species,subttype,subtaxa," +
	"native_status,rarity_status,invasive_status"

func statusFile(t *testing.T) string {
	return writeFile(t, "species.csv",
		statusHeader,
		",Acer,,rubrum,,,I,,",
		",Aster,,novae-angliae,,,N,,",
		",Chrysothamnus,,nauseosa,,,U,,",
		"X,Elyhordeum,,montanense,,,N,,",
		",Quercus,,albus,,,N,,",
		",Acer,,rubrum,,,N,SC,",
		",Symphyotrichum,,novae-angliae,,,I,,",
	)
}

func statuses(t *testing.T, path string) map[int64]string {
	t.Helper()
	sqlDB, err := iodb.OpenSQLite(context.Background(), path, iodb.ReadOnly)
	require.NoError(t, err)
	defer sqlDB.Close()

	rows, err := sqlDB.Query("SELECT tsn, native_status FROM mntaxa")
	require.NoError(t, err)
	defer rows.Close()

	res := make(map[int64]string)
	for rows.Next() {
		var tsn int64
		var st string
		require.NoError(t, rows.Scan(&tsn, &st))
		res[tsn] = st
	}
	require.NoError(t, rows.Err())
	return res
}

func TestStatusOutdb(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)
	outPath := filepath.Join(t.TempDir(), "out.sqlite")

	out, err := execute(t, "status", statusFile(t),
		"-d", dbPath, "-o", outPath, "-f", "csv", "-r")
	require.NoError(t, err)

	assert.Equal(t, map[int64]string{
		iotesting.AcerRubrumTSN:        "N",
		iotesting.SymphyotrichumTSN:    "N",
		iotesting.EricameriaNauseosTSN: "U",
	}, statuses(t, outPath))

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	// header and six rows, the hybrid is skipped
	require.Len(t, recs, 7)
	assert.Equal(t, "Line", recs[0][0])
	assert.Equal(t, "synonym", recs[2][4])
	assert.Equal(t, "541943", recs[2][5])
	assert.Equal(t, "genus_synonym", recs[3][4])
	assert.Equal(t, "Ericameria", recs[3][8])
	assert.Equal(t, "not_resolved", recs[4][4])
}

func TestStatusMapping(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)

	out, err := execute(t, "status", statusFile(t), "-d", dbPath, "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "TSN,NativeStatus\n28728,N\n37572,U\n541943,N\n", out)

	// without a format only the summary is shown
	out, err = execute(t, "status", statusFile(t), "-d", dbPath)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStatusSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)

	out, err := execute(t, "status", statusFile(t), "-d", dbPath, "-f", "sql")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN TRANSACTION;\n"))
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
	assert.Equal(t, 3, strings.Count(out, `INSERT INTO "mntaxa"`))
	assert.Contains(t, out, `VALUES(1,28728,'N');`)
}

func TestStatusUpdatedb(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)

	out, err := execute(t, "status", statusFile(t), "-d", dbPath, "-u")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Len(t, statuses(t, dbPath), 3)

	// the table is recreated on every run
	single := writeFile(t, "one.csv", statusHeader, ",Acer,,rubrum,,,I,,")
	_, err = execute(t, "status", single, "-d", dbPath, "--updatedb")
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{iotesting.AcerRubrumTSN: "I"},
		statuses(t, dbPath))
}

func TestStatusUpdatedbNothingResolved(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)

	_, err := execute(t, "status", statusFile(t), "-d", dbPath, "-u")
	require.NoError(t, err)
	before := statuses(t, dbPath)
	require.Len(t, before, 3)

	// an empty mapping keeps the existing table
	unresolved := writeFile(t, "none.csv", statusHeader, ",Quercus,,albus,,,N,,")
	_, err = execute(t, "status", unresolved, "-d", dbPath, "-u")
	require.NoError(t, err)
	assert.Equal(t, before, statuses(t, dbPath))
}

func TestStatusSchemaMismatch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	path := writeFile(t, "species.csv",
		"X,genus,X,species,subttype,subtaxa,native_status",
		",Acer,,rubrum,,,I",
	)
	// the reference database does not exist, the input is checked first
	dbPath := filepath.Join(t.TempDir(), "missing.sqlite")

	_, err := execute(t, "status", path, "-d", dbPath)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.InputSchemaError, gnErr.Code)
}

func TestStatusMissingReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := filepath.Join(t.TempDir(), "missing.sqlite")

	_, err := execute(t, "status", statusFile(t), "-d", dbPath)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReferenceNotFoundError, gnErr.Code)
}

func TestStatusFlags(t *testing.T) {
	cmd := getStatusCmd()

	flag := cmd.Flags().Lookup("outdb")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)

	flag = cmd.Flags().Lookup("updatedb")
	require.NotNil(t, flag)
	assert.Equal(t, "u", flag.Shorthand)

	flag = cmd.Flags().Lookup("rows")
	require.NotNil(t, flag)
	assert.Equal(t, "r", flag.Shorthand)

	_, err := execute(t, "status")
	require.Error(t, err, "input file is required")
}
