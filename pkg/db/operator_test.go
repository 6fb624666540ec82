package db_test

import (
	"testing"

	"github.com/gnames/itismatch/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		msg, driver, query, res string
	}{
		{
			msg:    "sqlite is unchanged",
			driver: db.SQLite,
			query:  "SELECT tsn FROM taxonomic_units WHERE unit_name1 = ?",
			res:    "SELECT tsn FROM taxonomic_units WHERE unit_name1 = ?",
		},
		{
			msg:    "postgres numbered",
			driver: db.Postgres,
			query:  "SELECT tsn FROM t WHERE a = ? AND b = ? AND c = ?",
			res:    "SELECT tsn FROM t WHERE a = $1 AND b = $2 AND c = $3",
		},
		{
			msg:    "literal with question mark",
			driver: db.Postgres,
			query:  "SELECT '?' FROM t WHERE a = ?",
			res:    "SELECT '?' FROM t WHERE a = $1",
		},
		{
			msg:    "no placeholders",
			driver: db.Postgres,
			query:  "SELECT 1",
			res:    "SELECT 1",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, db.Rebind(v.driver, v.query), v.msg)
	}
}
