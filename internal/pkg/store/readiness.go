package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/caminohealth/camino-backend/internal/domain"
)

var readinessColumns = []string{
	"hazard", "key_on_table",
	"question_id", "question_key", "language", "category", "category_code",
	"affects_score", "category_score", "category_weight", "question_score",
	"question_category_weight", "category_language", "question_language",
	"national_yn_value", "national_yn", "comments", "file_name", "country",
	"admin_level", "admin_level_name", "file_language", "table_name",
	"row_no", "question", "data_period", "data_period_id", "district",
	"poe_name", "has_international_poe",
}

type ListReadinessRowsOpts struct {
	Hazard   string
	Country  *string
	Category *string
}

// UpsertReadinessRow inserts the row or, when its key already exists,
// replaces every data column; this is the idempotence contract of
// re-ingesting a file.
func (s *store) UpsertReadinessRow(ctx context.Context, row *domain.ReadinessRow) error {
	query := builder().Insert(tableReadinessRows).
		Columns(readinessColumns...).
		Values(
			row.Hazard, row.KeyOnTable,
			row.QuestionID, row.QuestionKey, row.Language, row.Category, row.CategoryCode,
			row.AffectsScore, row.CategoryScore, row.CategoryWeight, row.QuestionScore,
			row.QuestionCategoryWeight, row.CategoryLanguage, row.QuestionLanguage,
			row.NationalYNValue, row.NationalYN, row.Comments, row.FileName, row.Country,
			row.AdminLevel, row.AdminLevelName, row.FileLanguage, row.Table,
			row.RowNo, row.Question, row.DataPeriod, row.DataPeriodID, row.District,
			row.PoEName, row.HasInternationalPoE,
		).
		Suffix(`
on conflict (key_on_table)
do update
set ` + updateSetClause(readinessColumns[2:]) + `,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert readiness row %s: %w", row.KeyOnTable, wrapErr(err))
	}

	return nil
}

func (s *store) ListReadinessRows(ctx context.Context, opts ListReadinessRowsOpts) ([]*domain.ReadinessRow, error) {
	query := builder().
		Select(append([]string{"id"}, append(readinessColumns, "created_at", "updated_at")...)...).
		From(tableReadinessRows).
		Where(sq.Eq{"hazard": opts.Hazard}).
		OrderBy("id")

	if opts.Country != nil {
		query = query.Where("lower(country) = lower(?)", *opts.Country)
	}
	if opts.Category != nil {
		query = query.Where(sq.Eq{"category": *opts.Category})
	}

	var selected []*domain.ReadinessRow
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// ListExistingEvents shapes stored mpox readiness rows as existing
// events for the unified WHO view.
func (s *store) ListExistingEvents(ctx context.Context) ([]domain.Event, error) {
	query := builder().
		Select("distinct country").
		From(tableReadinessRows).
		Where(sq.Eq{"hazard": "mpox"}).
		Where("country is not null")

	var countries []struct {
		Country string `db:"country"`
	}
	if err := s.pool.Selectx(ctx, &countries, query); err != nil {
		return nil, wrapErr(err)
	}

	events := make([]domain.Event, 0, len(countries))
	for _, c := range countries {
		events = append(events, domain.Event{
			Source:      "EXISTING",
			DataType:    domain.DataTypeExisting,
			Country:     c.Country,
			Disease:     "Mpox",
			EventType:   "Readiness",
			Status:      domain.StatusMonitoring,
			Grade:       domain.Ungraded,
			Description: "Mpox readiness data",
		})
	}

	return events, nil
}

// updateSetClause renders "col = excluded.col" for every column.
func updateSetClause(columns []string) string {
	clause := ""
	for i, col := range columns {
		if i > 0 {
			clause += ",\n\t"
		}
		clause += col + " = excluded." + col
	}
	return clause
}
