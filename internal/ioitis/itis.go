// Package ioitis implements reference.Accessor over an ITIS snapshot
// stored in SQLite or PostgreSQL. This is an impure I/O package.
package ioitis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/db"
	"github.com/gnames/itismatch/pkg/reference"
	"github.com/gnames/itismatch/pkg/taxon"
)

const (
	accepted = "accepted"
)

type itis struct {
	db      *sql.DB
	driver  string
	kingdom int
	limit   int
	log     *slog.Logger
}

// New creates an Accessor on top of a connected operator.
// Lookups are scoped to cfg.Reference.KingdomID, candidate lists are
// cut at cfg.Output.CandidatesLimit unless it is zero.
func New(
	op db.Operator,
	cfg *config.Config,
	log *slog.Logger,
) reference.Accessor {
	if log == nil {
		log = slog.Default()
	}
	return &itis{
		db:      op.DB(),
		driver:  op.Driver(),
		kingdom: cfg.Reference.KingdomID,
		limit:   cfg.Output.CandidatesLimit,
		log:     log,
	}
}

// FindAcceptedExact implements reference.Accessor.
func (i *itis) FindAcceptedExact(
	ctx context.Context,
	name reference.Name,
	rank taxon.Rank,
) (*taxon.Taxon, error) {
	q, args := acceptedSpeciesQ, []any{name.Genus, name.Species}
	if rank.IsInfraspecific() {
		q = acceptedInfraQ
		args = append(args, name.Infra)
	}
	args = append(args, i.kingdom, int(rank))

	t, err := i.taxon(ctx, q, args...)
	if err != nil {
		return nil, QueryError("accepted name", name.String(), err)
	}
	if t == nil {
		return nil, nil
	}

	if err = i.addCommonNames(ctx, t); err != nil {
		return nil, err
	}
	i.log.Debug("Found accepted name",
		"name", name.String(),
		"tsn", t.TSN,
		"complete_name", t.CompleteName,
	)
	return t, nil
}

// FindSynonymAccepted implements reference.Accessor.
func (i *itis) FindSynonymAccepted(
	ctx context.Context,
	name reference.Name,
	rank taxon.Rank,
) (*taxon.Taxon, error) {
	q, args := synonymSpeciesQ, []any{name.Genus, name.Species}
	if rank.IsInfraspecific() {
		q = synonymInfraQ
		args = append(args, name.Infra)
	}
	args = append(args, i.kingdom, int(rank))

	acceptedTSN, ok, err := i.scalar(ctx, q, args...)
	if err != nil {
		return nil, QueryError("synonym", name.String(), err)
	}
	if !ok {
		return nil, nil
	}
	i.log.Debug("Found synonym, looking up accepted name",
		"name", name.String(),
		"tsn_accepted", acceptedTSN,
	)

	t, err := i.taxon(ctx, acceptedByTSNQ, acceptedTSN, i.kingdom)
	if err != nil {
		return nil, QueryError("accepted name of synonym", name.String(), err)
	}
	if t == nil {
		i.log.Debug("Synonym link leads nowhere",
			"name", name.String(),
			"tsn_accepted", acceptedTSN,
		)
		return nil, nil
	}

	if err = i.addCommonNames(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// FindGenusSynonym implements reference.Accessor.
func (i *itis) FindGenusSynonym(
	ctx context.Context,
	genus string,
) (string, error) {
	i.log.Debug("Looking for a genus synonym", "genus", genus)
	acceptedTSN, ok, err := i.scalar(ctx, genusSynonymQ,
		genus, i.kingdom, int(taxon.Genus))
	if err != nil {
		return "", QueryError("genus synonym", genus, err)
	}
	if !ok {
		return "", nil
	}

	var res string
	row := i.db.QueryRowContext(ctx, i.rebind(genusByTSNQ),
		acceptedTSN, i.kingdom)
	err = row.Scan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", QueryError("accepted genus", genus, err)
	}
	return res, nil
}

// FindCandidates implements reference.Accessor.
func (i *itis) FindCandidates(
	ctx context.Context,
	name reference.Name,
	rank taxon.Rank,
) ([]taxon.Taxon, error) {
	cols := []string{"unit_name1", "unit_name2"}
	vals := []string{name.Genus, name.Species}
	if rank.IsInfraspecific() {
		cols = append(cols, "unit_name3")
		vals = append(vals, name.Infra)
	}

	args := []any{i.kingdom}
	var conds []string
	for j, v := range vals {
		if v == "" {
			continue
		}
		conds = append(conds, "LOWER("+cols[j]+") LIKE ?")
		args = append(args, "%"+strings.ToLower(v)+"%")
	}
	if len(conds) == 0 {
		return nil, nil
	}

	q := fmt.Sprintf(candidatesQ, strings.Join(conds, " OR "))
	if i.limit > 0 {
		q += "\n  LIMIT " + strconv.Itoa(i.limit)
	}

	rows, err := i.db.QueryContext(ctx, i.rebind(q), args...)
	if err != nil {
		return nil, QueryError("candidates", name.String(), err)
	}
	defer rows.Close()

	var res []taxon.Taxon
	for rows.Next() {
		var t taxon.Taxon
		var rank int
		var complete sql.NullString
		var usage string
		err = rows.Scan(&t.TSN, &rank, &complete, &t.KingdomID, &usage)
		if err != nil {
			return nil, QueryError("candidates", name.String(), err)
		}
		t.Rank = taxon.Rank(rank)
		t.CompleteName = complete.String
		t.Accepted = usage == accepted
		res = append(res, t)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("candidates", name.String(), err)
	}
	return res, nil
}

// FindGerminationCode implements reference.Accessor.
func (i *itis) FindGerminationCode(
	ctx context.Context,
	code string,
) (int64, bool, error) {
	res, ok, err := i.scalar(ctx, germinationCodeQ, code)
	if err != nil {
		return 0, false, QueryError("germination code", code, err)
	}
	return res, ok, nil
}

func (i *itis) rebind(q string) string {
	return db.Rebind(i.driver, q)
}

// taxon runs a query that returns tsn, rank_id, complete_name and
// kingdom_id of accepted names. Nil means no rows.
func (i *itis) taxon(
	ctx context.Context,
	q string,
	args ...any,
) (*taxon.Taxon, error) {
	var t taxon.Taxon
	var rank int
	var complete sql.NullString
	row := i.db.QueryRowContext(ctx, i.rebind(q), args...)
	err := row.Scan(&t.TSN, &rank, &complete, &t.KingdomID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Rank = taxon.Rank(rank)
	t.CompleteName = complete.String
	t.Accepted = true
	return &t, nil
}

// scalar runs a query that returns one integer column.
func (i *itis) scalar(
	ctx context.Context,
	q string,
	args ...any,
) (int64, bool, error) {
	var res int64
	row := i.db.QueryRowContext(ctx, i.rebind(q), args...)
	err := row.Scan(&res)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return res, true, nil
}

// addCommonNames attaches sorted vernacular names to a taxon.
func (i *itis) addCommonNames(ctx context.Context, t *taxon.Taxon) error {
	rows, err := i.db.QueryContext(ctx, i.rebind(vernacularsQ), t.TSN)
	if err != nil {
		return QueryError("vernaculars", t.CompleteName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return QueryError("vernaculars", t.CompleteName, err)
		}
		t.CommonNames = append(t.CommonNames, name)
	}
	if err = rows.Err(); err != nil {
		return QueryError("vernaculars", t.CompleteName, err)
	}
	slices.Sort(t.CommonNames)
	return nil
}
