package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/caminohealth/camino-backend/internal/domain"
)

var (
	sheetColumns = []string{"id", "name", "created_at", "updated_at"}
	esparColumns = []string{
		"id", "sheet_id", "key_on_table", "data_received", "region",
		"states", "iso_code", "total_average", "created_at", "updated_at",
	}
	indicatorColumns = []string{"id", "espar_id", "code", "value", "created_at", "updated_at"}
)

func (s *store) GetOrCreateSheet(ctx context.Context, name string) (*domain.Sheet, error) {
	query := builder().Insert(tableSheets).
		Columns("name").
		Values(name).
		Suffix(`on conflict (name) do nothing`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(sheetColumns...).
		From(tableSheets).
		Where(sq.Eq{"name": name})

	var selected domain.Sheet
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpsertEspar(ctx context.Context, espar *domain.Espar) (*domain.Espar, error) {
	query := builder().Insert(tableEspar).
		Columns("sheet_id", "key_on_table", "data_received", "region", "states", "iso_code", "total_average").
		Values(espar.SheetID, espar.KeyOnTable, espar.DataReceived, espar.Region, espar.States, espar.ISOCode, espar.TotalAverage).
		Suffix(`
on conflict (sheet_id, key_on_table)
do update
set
	data_received = excluded.data_received,
	region = excluded.region,
	states = excluded.states,
	iso_code = excluded.iso_code,
	total_average = excluded.total_average,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, fmt.Errorf("upsert espar %s: %w", espar.KeyOnTable, wrapErr(err))
	}

	selectQuery := builder().Select(esparColumns...).
		From(tableEspar).
		Where(sq.And{
			sq.Eq{"sheet_id": espar.SheetID},
			sq.Eq{"key_on_table": espar.KeyOnTable},
		})

	var selected domain.Espar
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpsertIndicator(ctx context.Context, indicator *domain.Indicator) error {
	query := builder().Insert(tableIndicators).
		Columns("espar_id", "code", "value").
		Values(indicator.EsparID, indicator.Code, indicator.Value).
		Suffix(`
on conflict (espar_id, code)
do update
set
	value = excluded.value,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert indicator %s: %w", indicator.Code, wrapErr(err))
	}

	return nil
}

func (s *store) ListEsparBySheet(ctx context.Context, sheetName string) ([]*domain.Espar, error) {
	query := builder().
		Select(prefixed("e", esparColumns)...).
		From(tableEspar + " e").
		Join(tableSheets + " s on s.id = e.sheet_id").
		Where(sq.Eq{"s.name": sheetName}).
		OrderBy("e.id")

	var selected []*domain.Espar
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListIndicatorsByEspar(ctx context.Context, esparIDs []int64) ([]*domain.Indicator, error) {
	if len(esparIDs) == 0 {
		return nil, nil
	}

	query := builder().
		Select(indicatorColumns...).
		From(tableIndicators).
		Where(sq.Eq{"espar_id": esparIDs}).
		OrderBy("espar_id, code")

	var selected []*domain.Indicator
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = alias + "." + col
	}
	return out
}
