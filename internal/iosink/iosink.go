// Package iosink stores final mappings with GORM into SQLite (a file or
// an in-memory database) or into the reference store itself.
// This is an impure I/O package that implements pkg/sink.
package iosink

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/itismatch/internal/iodb"
	"github.com/gnames/itismatch/pkg/aggregator"
	"github.com/gnames/itismatch/pkg/db"
	"github.com/gnames/itismatch/pkg/schema"
	"github.com/gnames/itismatch/pkg/sink"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type gormSink struct {
	sqlDB     *sql.DB
	gormDB    *gorm.DB
	driver    string
	batchSize int
	owned     bool

	// referenced is set for the reference store, where mntaxa gets a
	// foreign key to taxonomic_units.
	referenced bool
}

// OpenSQLite creates a sink in a SQLite file, or in memory if path is
// iodb.Memory. The sink owns the connection and closes it.
func OpenSQLite(
	ctx context.Context,
	path string,
	batchSize int,
) (sink.Sink, error) {
	sqlDB, err := iodb.OpenSQLite(ctx, path, iodb.ReadWrite)
	if err != nil {
		return nil, ConnectionError(path, err)
	}
	res, err := newSink(sqlDB, db.SQLite, batchSize)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	res.owned = true
	return res, nil
}

// FromOperator creates a sink on top of a connected read-write
// operator of the reference store. The operator keeps ownership of the
// connection.
func FromOperator(op db.Operator, batchSize int) (sink.Sink, error) {
	res, err := newSink(op.DB(), op.Driver(), batchSize)
	if err != nil {
		return nil, err
	}
	res.referenced = true
	return res, nil
}

func newSink(
	sqlDB *sql.DB,
	driver string,
	batchSize int,
) (*gormSink, error) {
	var dialector gorm.Dialector
	switch driver {
	case db.Postgres:
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		dialector = &sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	if batchSize < 1 {
		batchSize = 1
	}
	return &gormSink{
		sqlDB:     sqlDB,
		gormDB:    gormDB,
		driver:    driver,
		batchSize: batchSize,
	}, nil
}

// WriteStatus implements sink.Sink.
func (s *gormSink) WriteStatus(
	ctx context.Context,
	entries []aggregator.StatusEntry,
) error {
	model := &schema.MnTaxon{}
	table := model.TableName()
	rows := make([]schema.MnTaxon, len(entries))
	for i, v := range entries {
		rows[i] = schema.MnTaxon{TSN: v.TSN, NativeStatus: string(v.Status)}
	}

	err := s.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if s.referenced {
			err = schema.RecreateDDL(tx, model, model.ReferencedDDL(s.driver))
		} else {
			err = schema.Recreate(tx, model)
		}
		if err != nil {
			return SchemaError(table, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err = tx.CreateInBatches(rows, s.batchSize).Error; err != nil {
			return WriteError(table, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Stored native status", "table", table, "rows", len(rows))
	return nil
}

// WriteGermination implements sink.Sink.
func (s *gormSink) WriteGermination(
	ctx context.Context,
	pairs []aggregator.CodePair,
) error {
	model := &schema.TaxonGermination{}
	table := model.TableName()
	rows := make([]schema.TaxonGermination, len(pairs))
	for i, v := range pairs {
		rows[i] = schema.TaxonGermination{TSN: v.TSN, GermID: v.CodeID}
	}

	err := s.gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := schema.Recreate(tx, model); err != nil {
			return SchemaError(table, err)
		}
		if len(rows) == 0 {
			return nil
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(rows, s.batchSize).Error
		if err != nil {
			return WriteError(table, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Stored germination codes", "table", table, "rows", len(rows))
	return nil
}

// Close implements sink.Sink.
func (s *gormSink) Close() error {
	if !s.owned || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}
