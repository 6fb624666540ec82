// Package schema provides database models for itismatch.
// Reference models describe the part of an ITIS snapshot the resolver
// reads, output models are the relations written by sinks.
package schema

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// TaxonomicUnit is a name of the ITIS taxonomy, accepted or not.
type TaxonomicUnit struct {
	// TSN is the Taxonomic Serial Number.
	TSN int64 `db:"tsn" ddl:"INTEGER PRIMARY KEY"`

	// UnitName1 is the genus or a uninomial.
	UnitName1 string `db:"unit_name1" ddl:"VARCHAR(35) NOT NULL"`

	// UnitName2 is the specific epithet.
	UnitName2 string `db:"unit_name2" ddl:"VARCHAR(35)"`

	// UnitName3 is the infraspecific epithet.
	UnitName3 string `db:"unit_name3" ddl:"VARCHAR(35)"`

	// RankID is the ITIS rank (180 genus, 220 species, 230 subspecies,
	// 240 variety).
	RankID int `db:"rank_id" ddl:"SMALLINT NOT NULL"`

	// NameUsage is 'accepted' or 'not accepted'.
	NameUsage string `db:"name_usage" ddl:"VARCHAR(12) NOT NULL"`

	// KingdomID is the kingdom of the name (3 is Plantae).
	KingdomID int `db:"kingdom_id" ddl:"INTEGER NOT NULL"`

	// CompleteName is the full display name without authors.
	CompleteName string `db:"complete_name" ddl:"VARCHAR(300)"`
}

// SynonymLink connects a not accepted name to its accepted name.
type SynonymLink struct {
	TSN         int64 `db:"tsn" ddl:"INTEGER NOT NULL"`
	TSNAccepted int64 `db:"tsn_accepted" ddl:"INTEGER NOT NULL"`
}

// Vernacular is a common name of a taxon.
type Vernacular struct {
	TSN            int64  `db:"tsn" ddl:"INTEGER NOT NULL"`
	VernacularName string `db:"vernacular_name" ddl:"VARCHAR(80) NOT NULL"`
}

// GerminationCode maps an external germination code to its id.
type GerminationCode struct {
	GermID int64  `db:"germid" ddl:"INTEGER PRIMARY KEY"`
	Code   string `db:"code" ddl:"VARCHAR(20) NOT NULL"`
}

// MnTaxon is the status of a taxon in the regional checklist.
type MnTaxon struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TSN          int64  `gorm:"column:tsn;not null;index"`
	NativeStatus string `gorm:"column:native_status;type:varchar(1)"`
}

// TaxonGermination links a taxon to a germination code. A pair of
// germid and tsn is unique.
type TaxonGermination struct {
	ID     int64 `gorm:"column:taxongermid;primaryKey;autoIncrement"`
	TSN    int64 `gorm:"column:tsn;not null;uniqueIndex:idx_germid_tsn,priority:2"`
	GermID int64 `gorm:"column:germid;not null;uniqueIndex:idx_germid_tsn,priority:1"`
}
