// Package iotesting provides shared test utilities: a small ITIS
// snapshot in SQLite and configurations that point to it.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/schema"
	_ "modernc.org/sqlite"
)

// TSNs of the fixture taxonomy.
const (
	AcerTSN              int64 = 18032
	AcerRubrumTSN        int64 = 28728
	AcerSaccharumTSN     int64 = 28731
	AcerNigrumTSN        int64 = 28733
	PoaAnnuaTSN          int64 = 41107
	PoaSupinaTSN         int64 = 41108
	AsterNovaeTSN        int64 = 35425
	SymphyotrichumTSN    int64 = 541943
	ChrysothamnusTSN     int64 = 37530
	EricameriaTSN        int64 = 37570
	EricameriaNauseosTSN int64 = 37572
	QuercusTSN           int64 = 19276
	QuercusAlbaTSN       int64 = 19290
	QuercusAlbaDupTSN    int64 = 19295
	RubrumDrummondiiTSN  int64 = 99001
	DanglingTSN          int64 = 99002
	OtherKingdomTSN      int64 = 100
)

// Germination code ids of the fixture.
const (
	GermCodeA int64 = 1
	GermCodeC int64 = 2
	GermCodeD int64 = 3
)

const (
	// OtherKingdomID keeps a duplicate of Acer rubrum outside of Plantae.
	OtherKingdomID = 5

	// MissingTSN is a target of a dangling synonym link.
	MissingTSN int64 = 999999
)

type unit struct {
	tsn          int64
	name1        string
	name2        string
	name3        string
	rank         int
	usage        string
	kingdom      int
	completeName string
}

var units = []unit{
	{OtherKingdomTSN, "Acer", "rubrum", "", 220, "accepted", OtherKingdomID, "Acer rubrum"},
	{AcerTSN, "Acer", "", "", 180, "accepted", 3, "Acer"},
	{AcerRubrumTSN, "Acer", "rubrum", "", 220, "accepted", 3, "Acer rubrum"},
	{AcerSaccharumTSN, "Acer", "saccharum", "", 220, "accepted", 3, "Acer saccharum"},
	{AcerNigrumTSN, "Acer", "saccharum", "nigrum", 240, "accepted", 3, "Acer saccharum var. nigrum"},
	{PoaAnnuaTSN, "Poa", "annua", "", 220, "accepted", 3, "Poa annua"},
	{PoaSupinaTSN, "Poa", "annua", "supina", 230, "accepted", 3, "Poa annua ssp. supina"},
	{AsterNovaeTSN, "Aster", "novae-angliae", "", 220, "not accepted", 3, "Aster novae-angliae"},
	{SymphyotrichumTSN, "Symphyotrichum", "novae-angliae", "", 220, "accepted", 3, "Symphyotrichum novae-angliae"},
	{ChrysothamnusTSN, "Chrysothamnus", "", "", 180, "not accepted", 3, "Chrysothamnus"},
	{EricameriaTSN, "Ericameria", "", "", 180, "accepted", 3, "Ericameria"},
	{EricameriaNauseosTSN, "Ericameria", "nauseosa", "", 220, "accepted", 3, "Ericameria nauseosa"},
	{QuercusTSN, "Quercus", "", "", 180, "accepted", 3, "Quercus"},
	{QuercusAlbaTSN, "Quercus", "alba", "", 220, "accepted", 3, "Quercus alba"},
	{QuercusAlbaDupTSN, "Quercus", "alba", "", 220, "accepted", 3, "Quercus alba"},
	{RubrumDrummondiiTSN, "Acer", "rubrum", "drummondii", 240, "not accepted", 3, "Acer rubrum var. drummondii"},
	{DanglingTSN, "Dangling", "linkus", "", 220, "not accepted", 3, "Dangling linkus"},
}

var synonyms = [][2]int64{
	{AsterNovaeTSN, SymphyotrichumTSN},
	{ChrysothamnusTSN, EricameriaTSN},
	{RubrumDrummondiiTSN, AcerRubrumTSN},
	{DanglingTSN, MissingTSN},
}

var vernaculars = []struct {
	tsn  int64
	name string
}{
	{AcerRubrumTSN, "swamp maple"},
	{AcerRubrumTSN, "red maple"},
	{AcerRubrumTSN, "Carolina red maple"},
	{SymphyotrichumTSN, "New England aster"},
}

var germCodes = []struct {
	id   int64
	code string
}{
	{GermCodeA, "A"},
	{GermCodeC, "C(60)"},
	{GermCodeD, "D"},
}

// CreateITIS writes the fixture taxonomy into a new SQLite file in a
// temporary directory and returns its path.
func CreateITIS(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ITIS.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create fixture database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	exec := func(q string, args ...any) {
		if _, err := db.ExecContext(ctx, q, args...); err != nil {
			t.Fatalf("Failed to run %q: %v", q, err)
		}
	}

	for _, m := range schema.ReferenceModels() {
		exec(m.TableDDL())
		for _, idx := range m.IndexDDL() {
			exec(idx)
		}
	}

	for _, u := range units {
		exec(`INSERT INTO taxonomic_units
			(tsn, unit_name1, unit_name2, unit_name3, rank_id, name_usage,
			 kingdom_id, complete_name)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			u.tsn, u.name1, nullable(u.name2), nullable(u.name3), u.rank,
			u.usage, u.kingdom, u.completeName)
	}
	for _, s := range synonyms {
		exec("INSERT INTO synonym_links (tsn, tsn_accepted) VALUES (?, ?)",
			s[0], s[1])
	}
	for _, v := range vernaculars {
		exec("INSERT INTO vernaculars (tsn, vernacular_name) VALUES (?, ?)",
			v.tsn, v.name)
	}
	for _, g := range germCodes {
		exec("INSERT INTO sc_germination_codes (germid, code) VALUES (?, ?)",
			g.id, g.code)
	}

	return path
}

// Config returns a default configuration that uses an ITIS SQLite file.
func Config(path string) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptReferenceDriver("sqlite"),
		config.OptReferencePath(path),
	})
	return cfg
}

// ITIS keeps empty name parts as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
