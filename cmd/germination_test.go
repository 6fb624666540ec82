package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/itismatch/internal/iodb"
	"github.com/gnames/itismatch/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func germinationFile(t *testing.T) string {
	return writeFile(t, "germination.csv",
		"X,genus,X,species,subttype,subtaxa,germcode",
		",Acer,,rubrum,,,A",
		",Acer,,rubrum,,,A",
		",Aster,,novae-angliae,,,C(60)",
		",Acer,,rubrum,,,D",
		",Acer,,rubrum,,,ZZ",
		"X,Elyhordeum,,montanense,,,A",
		",Nonexistia,,imaginaria,,,A",
	)
}

func TestGerminationSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)

	out, err := execute(t, "germination", germinationFile(t), "-d", dbPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "BEGIN TRANSACTION;", lines[0])
	assert.Equal(t, "COMMIT;", lines[len(lines)-1])

	var inserts []string
	for _, v := range lines {
		if strings.HasPrefix(v, "INSERT INTO") {
			inserts = append(inserts, v)
		}
	}
	assert.Equal(t, []string{
		`INSERT INTO "sc_taxon_germination" VALUES(1,28728,1);`,
		`INSERT INTO "sc_taxon_germination" VALUES(2,541943,2);`,
		`INSERT INTO "sc_taxon_germination" VALUES(3,28728,3);`,
	}, inserts)
}

func TestGerminationOutdb(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dbPath := iotesting.CreateITIS(t)
	outPath := filepath.Join(t.TempDir(), "germ.sqlite")

	out, err := execute(t, "germ", germinationFile(t),
		"-d", dbPath, "-o", outPath, "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "TSN,GermID\n28728,1\n541943,2\n28728,3\n", out)

	sqlDB, err := iodb.OpenSQLite(context.Background(), outPath, iodb.ReadOnly)
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	err = sqlDB.QueryRow(
		"SELECT count(*) FROM sc_taxon_germination").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
