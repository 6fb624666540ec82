package schema

import (
	"github.com/gnames/itismatch/pkg/db"
	"gorm.io/gorm"
)

// TableName of the status relation.
func (MnTaxon) TableName() string {
	return "mntaxa"
}

// TableName of the germination relation.
func (TaxonGermination) TableName() string {
	return "sc_taxon_germination"
}

// ReferencedDDL returns statements that create mntaxa with a foreign key
// to taxonomic_units. It is used when mntaxa is written into the
// reference store, where taxonomic_units exists.
func (mt MnTaxon) ReferencedDDL(driver string) []string {
	id := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == db.Postgres {
		id = "id BIGSERIAL PRIMARY KEY"
	}
	table := mt.TableName()
	return []string{
		"CREATE TABLE " + table + " (\n" +
			"  " + id + ",\n" +
			"  tsn BIGINT NOT NULL,\n" +
			"  native_status VARCHAR(1),\n" +
			"  FOREIGN KEY (tsn) REFERENCES taxonomic_units (tsn)\n" +
			");",
		"CREATE INDEX idx_mntaxa_tsn ON " + table + " (tsn);",
	}
}

// Recreate drops the table of a model if it exists and creates it
// again with GORM AutoMigrate.
func Recreate(db *gorm.DB, model any) error {
	if err := drop(db, model); err != nil {
		return err
	}
	return db.AutoMigrate(model)
}

// RecreateDDL drops the table of a model if it exists and creates it
// again with the given statements.
func RecreateDDL(db *gorm.DB, model any, ddl []string) error {
	if err := drop(db, model); err != nil {
		return err
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			return err
		}
	}
	return nil
}

func drop(db *gorm.DB, model any) error {
	m := db.Migrator()
	if m.HasTable(model) {
		return m.DropTable(model)
	}
	return nil
}
