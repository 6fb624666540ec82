// Package iodb implements database connections for the reference store
// and output databases. SQLite goes through modernc.org/sqlite,
// PostgreSQL through a pgxpool exposed as *sql.DB.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Mode tells if a connection may modify the database.
type Mode int

const (
	// ReadOnly is used for the resolution phase.
	ReadOnly Mode = iota
	// ReadWrite is used by sinks.
	ReadWrite
)

// Memory is the SQLite path of a private in-memory database.
const Memory = ":memory:"

// operator implements db.Operator for SQLite and PostgreSQL.
type operator struct {
	mode   Mode
	driver string
	db     *sql.DB
	pool   *pgxpool.Pool
}

// NewOperator creates a new database operator (without connecting).
func NewOperator(mode Mode) db.Operator {
	return &operator{mode: mode}
}

// Connect opens SQLite file or PostgreSQL database according to
// cfg.Driver.
func (o *operator) Connect(
	ctx context.Context,
	cfg *config.ReferenceConfig,
) error {
	if cfg.Driver == db.Postgres {
		return o.connectPostgres(ctx, cfg)
	}
	return o.connectSQLite(ctx, cfg)
}

func (o *operator) connectSQLite(
	ctx context.Context,
	cfg *config.ReferenceConfig,
) error {
	if cfg.Path != Memory && o.mode == ReadOnly {
		if _, err := os.Stat(cfg.Path); err != nil {
			return NotFoundError(cfg.Path, err)
		}
	}

	sqlDB, err := OpenSQLite(ctx, cfg.Path, o.mode)
	if err != nil {
		return SQLiteConnectionError(cfg.Path, err)
	}

	o.driver = db.SQLite
	o.db = sqlDB
	return nil
}

func (o *operator) connectPostgres(
	ctx context.Context,
	cfg *config.ReferenceConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return PostgresConnectionError(cfg, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	if o.mode == ReadOnly {
		poolConfig.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return PostgresConnectionError(cfg, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return PostgresConnectionError(cfg, err)
	}

	o.driver = db.Postgres
	o.pool = pool
	o.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (o *operator) Close() error {
	var err error
	if o.db != nil {
		err = o.db.Close()
		o.db = nil
	}
	if o.pool != nil {
		o.pool.Close()
		o.pool = nil
	}
	return err
}

// DB returns the connection.
func (o *operator) DB() *sql.DB {
	return o.db
}

// Driver returns the name of the connected driver.
func (o *operator) Driver() string {
	return o.driver
}

// TableExists checks if a table exists in the current database.
func (o *operator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	var query string
	switch o.driver {
	case db.Postgres:
		query = `
		SELECT count(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
			AND table_name = $1`
	default:
		query = `
		SELECT count(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = ?`
	}

	var count int
	err := o.db.QueryRowContext(ctx, query, tableName).Scan(&count)
	if err != nil {
		return false, TableCheckError(tableName, err)
	}

	return count > 0, nil
}

// CheckTables makes sure all given tables exist.
func CheckTables(
	ctx context.Context,
	op db.Operator,
	tables ...string,
) error {
	var missing []string
	for _, v := range tables {
		ok, err := op.TableExists(ctx, v)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return MissingTablesError(missing)
	}
	return nil
}

// OpenSQLite opens a SQLite database file. In ReadOnly mode the file
// must exist and is opened with mode=ro. The Memory path gives a
// private in-memory database held by a single connection.
// Pragmas are set in the DSN, so every pooled connection gets them.
func OpenSQLite(ctx context.Context, path string, mode Mode) (*sql.DB, error) {
	params := []string{"_pragma=busy_timeout(5000)"}
	if mode == ReadOnly {
		params = append(params, "_pragma=query_only(1)")
	}

	dsn := path
	switch {
	case path == Memory:
	case mode == ReadOnly:
		dsn = "file:" + path
		params = append([]string{"mode=ro"}, params...)
	default:
		dsn = "file:" + path
	}
	dsn += "?" + strings.Join(params, "&")

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if path == Memory {
		// every new connection to :memory: would get an empty database
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
