package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

// readinessSharedFields is the canonical column set every readiness
// questionnaire export carries; registered domains add their extras on
// top. Source headers are CamelCase and map through parser.SnakeCase.
var readinessSharedFields = []string{
	"question_id", "question_key", "language", "category", "category_code",
	"affects_score", "category_score", "category_weight", "question_score",
	"question_category_weight", "category_language", "question_language",
	"national_yn_value", "national_yn", "comments", "file_name", "country",
	"admin_level", "admin_level_name", "file_language", "table", "row_no",
	"question",
}

func (s *Service) ingestReadiness(ctx context.Context, cfg DomainConfig, fileName string, r io.Reader) (int, error) {
	fields := append(append([]string{}, readinessSharedFields...), cfg.ExtraFields...)

	table, err := parser.ExtractCSV(r, fields, parser.SnakeCase)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", cfg.Name, err)
	}

	saved := 0
	for _, raw := range table.Rows {
		row := &domain.ReadinessRow{
			Hazard:     cfg.Name,
			KeyOnTable: parser.UniqueKey(cfg.Key, raw.Index),

			QuestionID:             raw.Int("question_id"),
			QuestionKey:            raw.Str("question_key"),
			Language:               raw.Str("language"),
			Category:               raw.Str("category"),
			CategoryCode:           raw.Str("category_code"),
			AffectsScore:           raw.Int("affects_score"),
			CategoryScore:          raw.Float("category_score"),
			CategoryWeight:         raw.Float("category_weight"),
			QuestionScore:          raw.Float("question_score"),
			QuestionCategoryWeight: raw.Float("question_category_weight"),
			CategoryLanguage:       raw.Str("category_language"),
			QuestionLanguage:       raw.Str("question_language"),
			NationalYNValue:        raw.Str("national_yn_value"),
			NationalYN:             raw.Str("national_yn"),
			Comments:               raw.Str("comments"),
			FileName:               raw.Str("file_name"),
			Country:                raw.Str("country"),
			AdminLevel:             raw.Str("admin_level"),
			AdminLevelName:         raw.Str("admin_level_name"),
			FileLanguage:           raw.Str("file_language"),
			Table:                  raw.Str("table"),
			RowNo:                  raw.Int("row_no"),
			Question:               raw.Str("question"),

			DataPeriod:          raw.Str("data_period"),
			DataPeriodID:        raw.Str("data_period_id"),
			District:            raw.Str("district"),
			PoEName:             raw.Str("poe_name"),
			HasInternationalPoE: raw.Int("has_international_poe"),
		}
		if row.FileName == nil && fileName != "" {
			name := fileName
			row.FileName = &name
		}

		if err := s.store.UpsertReadinessRow(ctx, row); err != nil {
			return saved, fmt.Errorf("row %d: %w", raw.Index, err)
		}
		saved++
	}

	logger.Infof(ctx, "ingested %d %s rows from %s", saved, cfg.Name, fileName)
	return saved, nil
}
