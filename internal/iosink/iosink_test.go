package iosink_test

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/internal/iodb"
	"github.com/gnames/itismatch/internal/iosink"
	"github.com/gnames/itismatch/internal/iotesting"
	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/errcode"
	"github.com/gnames/itismatch/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(t *testing.T, db *sql.DB, table string) int {
	var res int
	err := db.QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestWriteStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.sqlite")

	snk, err := iosink.OpenSQLite(ctx, path, 2)
	require.NoError(t, err)
	defer snk.Close()

	entries := []aggregator.StatusEntry{
		{TSN: 28728, Status: taxon.Native},
		{TSN: 37572, Status: taxon.Unknown},
		{TSN: 541943, Status: taxon.Introduced},
	}
	require.NoError(t, snk.WriteStatus(ctx, entries))

	rdb, err := iodb.OpenSQLite(ctx, path, iodb.ReadOnly)
	require.NoError(t, err)
	defer rdb.Close()
	assert.Equal(t, 3, count(t, rdb, "mntaxa"))

	var status string
	err = rdb.QueryRow(
		"SELECT native_status FROM mntaxa WHERE tsn = ?", 541943,
	).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "I", status)

	// the relation is recreated on every write
	require.NoError(t, snk.WriteStatus(ctx, entries[:1]))
	assert.Equal(t, 1, count(t, rdb, "mntaxa"))

	require.NoError(t, snk.WriteStatus(ctx, nil))
	assert.Equal(t, 0, count(t, rdb, "mntaxa"))
}

func TestWriteGermination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.sqlite")

	snk, err := iosink.OpenSQLite(ctx, path, 10)
	require.NoError(t, err)
	defer snk.Close()

	pairs := []aggregator.CodePair{
		{TSN: 28728, CodeID: 1},
		{TSN: 28728, CodeID: 1},
		{TSN: 28728, CodeID: 3},
		{TSN: 541943, CodeID: 2},
	}
	require.NoError(t, snk.WriteGermination(ctx, pairs))

	rdb, err := iodb.OpenSQLite(ctx, path, iodb.ReadOnly)
	require.NoError(t, err)
	defer rdb.Close()
	assert.Equal(t, 3, count(t, rdb, "sc_taxon_germination"))
}

func TestDump(t *testing.T) {
	ctx := context.Background()
	snk, err := iosink.OpenSQLite(ctx, iodb.Memory, 100)
	require.NoError(t, err)
	defer snk.Close()

	pairs := []aggregator.CodePair{
		{TSN: 28728, CodeID: 1},
		{TSN: 541943, CodeID: 2},
	}
	require.NoError(t, snk.WriteGermination(ctx, pairs))

	var buf bytes.Buffer
	require.NoError(t, snk.Dump(ctx, &buf, "sc_taxon_germination"))
	res := buf.String()
	lines := strings.Split(strings.TrimSpace(res), "\n")

	assert.Equal(t, "BEGIN TRANSACTION;", lines[0])
	assert.Contains(t, lines[1], "CREATE TABLE")
	assert.Contains(t, lines[1], "sc_taxon_germination")
	assert.Equal(t,
		`INSERT INTO "sc_taxon_germination" VALUES(1,28728,1);`, lines[2])
	assert.Equal(t,
		`INSERT INTO "sc_taxon_germination" VALUES(2,541943,2);`, lines[3])
	assert.Contains(t, lines[4], "CREATE UNIQUE INDEX")
	assert.Contains(t, lines[4], "idx_germid_tsn")
	assert.Equal(t, "COMMIT;", lines[len(lines)-1])
}

func TestDumpMissingTable(t *testing.T) {
	ctx := context.Background()
	snk, err := iosink.OpenSQLite(ctx, iodb.Memory, 100)
	require.NoError(t, err)
	defer snk.Close()

	var buf bytes.Buffer
	err = snk.Dump(ctx, &buf, "mntaxa")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SinkDumpError, gnErr.Code)
	assert.Equal(t, []any{"mntaxa"}, gnErr.Vars)
	assert.Empty(t, buf.String())
}

func TestFromOperator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	cfg := config.New().Reference
	cfg.Path = filepath.Join(t.TempDir(), "ref.sqlite")

	op := iodb.NewOperator(iodb.ReadWrite)
	require.NoError(t, op.Connect(ctx, &cfg))
	defer op.Close()

	snk, err := iosink.FromOperator(op, 100)
	require.NoError(t, err)
	entries := []aggregator.StatusEntry{{TSN: 28728, Status: taxon.Native}}
	require.NoError(t, snk.WriteStatus(ctx, entries))
	require.NoError(t, snk.Close())

	// the operator keeps its connection
	ok, err := op.TableExists(ctx, "mntaxa")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, count(t, op.DB(), "mntaxa"))

	// mntaxa in the reference store points to taxonomic_units
	var table, from, to string
	err = op.DB().QueryRow(
		`SELECT "table", "from", "to" FROM pragma_foreign_key_list('mntaxa')`,
	).Scan(&table, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, "taxonomic_units", table)
	assert.Equal(t, "tsn", from)
	assert.Equal(t, "tsn", to)
}

func TestWriteStatusRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	cfg := config.New().Reference
	cfg.Path = iotesting.CreateITIS(t)

	op := iodb.NewOperator(iodb.ReadWrite)
	require.NoError(t, op.Connect(ctx, &cfg))
	defer op.Close()

	// one connection, so the pragma holds for every statement
	op.DB().SetMaxOpenConns(1)
	_, err := op.DB().ExecContext(ctx, "PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	snk, err := iosink.FromOperator(op, 1)
	require.NoError(t, err)
	defer snk.Close()

	entries := []aggregator.StatusEntry{
		{TSN: iotesting.AcerRubrumTSN, Status: taxon.Native},
		{TSN: iotesting.SymphyotrichumTSN, Status: taxon.Introduced},
	}
	require.NoError(t, snk.WriteStatus(ctx, entries))

	// an unknown TSN breaks the foreign key in the second batch
	bad := []aggregator.StatusEntry{
		{TSN: iotesting.AcerRubrumTSN, Status: taxon.Unknown},
		{TSN: iotesting.MissingTSN, Status: taxon.Native},
	}
	err = snk.WriteStatus(ctx, bad)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SinkWriteError, gnErr.Code)

	// the previous table survives the failed write
	assert.Equal(t, 2, count(t, op.DB(), "mntaxa"))
	var status string
	err = op.DB().QueryRow(
		"SELECT native_status FROM mntaxa WHERE tsn = ?", iotesting.AcerRubrumTSN,
	).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "N", status)
}
