package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// TaxonomicUnit DDL methods
func (tu TaxonomicUnit) TableDDL() string {
	return generateDDL(tu, tu.TableName())
}

func (tu TaxonomicUnit) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_taxonomic_units_names ON taxonomic_units(unit_name1, unit_name2, unit_name3);",
		"CREATE INDEX idx_taxonomic_units_kingdom ON taxonomic_units(kingdom_id, rank_id);",
	}
}

func (tu TaxonomicUnit) TableName() string {
	return "taxonomic_units"
}

// SynonymLink DDL methods
func (sl SynonymLink) TableDDL() string {
	return generateDDL(sl, sl.TableName())
}

func (sl SynonymLink) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_synonym_links_tsn ON synonym_links(tsn);",
	}
}

func (sl SynonymLink) TableName() string {
	return "synonym_links"
}

// Vernacular DDL methods
func (v Vernacular) TableDDL() string {
	return generateDDL(v, v.TableName())
}

func (v Vernacular) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_vernaculars_tsn ON vernaculars(tsn);",
	}
}

func (v Vernacular) TableName() string {
	return "vernaculars"
}

// GerminationCode DDL methods
func (gc GerminationCode) TableDDL() string {
	return generateDDL(gc, gc.TableName())
}

func (gc GerminationCode) IndexDDL() []string {
	return []string{}
}

func (gc GerminationCode) TableName() string {
	return "sc_germination_codes"
}

// ReferenceModels returns models of the reference store.
func ReferenceModels() []DDLGenerator {
	return []DDLGenerator{
		TaxonomicUnit{},
		SynonymLink{},
		Vernacular{},
		GerminationCode{},
	}
}

// ResolutionTables lists tables required for resolving names.
// sc_germination_codes is only needed by the germination variant.
func ResolutionTables() []string {
	return []string{
		TaxonomicUnit{}.TableName(),
		SynonymLink{}.TableName(),
		Vernacular{}.TableName(),
	}
}
