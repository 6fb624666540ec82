package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/gnames/itismatch/pkg/config"
)

// Supported drivers of the reference store.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Operator manages a connection to a reference store or an output
// database. Both SQLite and PostgreSQL connections are exposed as
// *sql.DB, so accessors and sinks can share SQL code.
type Operator interface {
	// Connect opens the database described by the configuration.
	Connect(context.Context, *config.ReferenceConfig) error

	// Close releases the connection.
	Close() error

	// DB returns the connection, nil before Connect.
	DB() *sql.DB

	// Driver returns SQLite or Postgres.
	Driver() string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}

// Rebind converts '?' placeholders of a query to '$n' placeholders
// for PostgreSQL. Queries for SQLite are returned as is. Question
// marks inside single-quoted literals are left alone.
func Rebind(driver, query string) string {
	if driver != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	var n int
	var quoted bool
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
