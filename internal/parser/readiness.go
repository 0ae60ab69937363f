package parser

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/domain/dto"
)

// Canonical vocabulary of a readiness questionnaire export, produced by
// SnakeCase over the source headers.
var readinessFields = []string{
	"question_id", "question_key", "language", "category", "category_code",
	"affects_score", "category_score", "category_weight", "question_score",
	"question_category_weight", "category_language", "question_language",
	"national_yn_value", "national_yn", "comments", "data_period",
	"data_period_id", "file_name", "country", "district", "admin_level",
	"admin_level_name", "file_language", "table", "row_no", "question",
}

// ScoreToGrade maps a numeric readiness score to the four-level grade
// scale. Boundary values land on the better grade.
func ScoreToGrade(score float64) string {
	switch {
	case score >= 8:
		return domain.Grade1
	case score >= 5:
		return domain.Grade2
	case score >= 2:
		return domain.Grade3
	default:
		return domain.Ungraded
	}
}

// mean averages the present values of field across rows, excluding
// absent cells from the denominator; all-absent yields 0.
func mean(rows []dto.RawRow, field string) float64 {
	sum := decimal.Decimal{}
	count := 0
	for _, row := range rows {
		if v := row.Float(field); v != nil {
			sum = sum.Add(decimal.NewFromFloat(*v))
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(count))).Round(4).InexactFloat64()
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

func countAnswer(rows []dto.RawRow, answer string) int {
	n := 0
	for _, row := range rows {
		if cell := row.Cell("national_yn"); cell.Present && cell.Value == answer {
			n++
		}
	}
	return n
}

// groupRows partitions rows by key, preserving first-seen group order.
func groupRows(rows []dto.RawRow, key func(dto.RawRow) string) ([]string, map[string][]dto.RawRow) {
	order := make([]string, 0, 16)
	groups := make(map[string][]dto.RawRow, 16)
	for _, row := range rows {
		k := key(row)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}
	return order, groups
}

func firstValue(rows []dto.RawRow, field string) string {
	for _, row := range rows {
		if cell := row.Cell(field); cell.Present {
			return cell.Value
		}
	}
	return ""
}

// AggregateReadiness rolls a readiness table up into one summary event
// per country (per country+district when the file is subnational). A
// table without a Country column aggregates to nothing; that is policy,
// not an error.
func AggregateReadiness(table Table, disease, csvFile string, isSubnational bool, now time.Time) []domain.Event {
	if !table.HasColumn("country") {
		return nil
	}

	byDistrict := isSubnational && table.HasColumn("district")
	order, groups := groupRows(table.Rows, func(row dto.RawRow) string {
		key := stringOr(row.Cell("country"), "")
		if byDistrict {
			key += "\x00" + stringOr(row.Cell("district"), "")
		}
		return key
	})

	events := make([]domain.Event, 0, len(order))
	for _, key := range order {
		rows := groups[key]
		country := stringOr(rows[0].Cell("country"), "")
		district := ""
		if byDistrict {
			district = stringOr(rows[0].Cell("district"), "")
		}

		avgCategoryScore := 0.0
		if table.HasColumn("category_score") {
			avgCategoryScore = mean(rows, "category_score")
		}
		avgQuestionScore := 0.0
		if table.HasColumn("question_score") {
			avgQuestionScore = mean(rows, "question_score")
		}

		categories := uniqueValues(rows, "category")
		yesCount := countAnswer(rows, "yes")
		noCount := countAnswer(rows, "no")
		total := len(rows)

		responseRate := 0.0
		if total > 0 {
			responseRate = round2(float64(yesCount) / float64(total) * 100)
		}

		adminLevel := firstValue(rows, "admin_level")
		if adminLevel == "" {
			if isSubnational {
				adminLevel = "SubNational"
			} else {
				adminLevel = "National"
			}
		}

		events = append(events, domain.Event{
			ID:       fmt.Sprintf("RDN-%s-%s-%d", upper3(disease), upper3(country), len(events)+1),
			Source:   "WHO",
			DataType: domain.DataTypeReadinessSummary,

			Country:       country,
			District:      district,
			Disease:       disease,
			EventType:     "Readiness",
			AdminLevel:    adminLevel,
			IsSubnational: isSubnational,

			AvgCategoryScore: avgCategoryScore,
			AvgQuestionScore: avgQuestionScore,
			ReadinessGrade:   ScoreToGrade(avgCategoryScore),

			TotalQuestions: total,
			YesResponses:   yesCount,
			NoResponses:    noCount,
			ResponseRate:   responseRate,

			CategoriesCount: len(categories),
			Categories:      categories,

			DataPeriod: firstValue(rows, "data_period"),
			SourceFile: csvFile,
			ReportDate: now.Format(time.RFC3339),
			Year:       now.Year(),
		})
	}

	return events
}

// ReadinessByCategory emits one breakdown event per (group, category)
// with its own mean score, the category weight from the first row of
// the subgroup, and the completion rate.
func ReadinessByCategory(table Table, disease, csvFile string, isSubnational bool, now time.Time) []domain.Event {
	if !table.HasColumn("country") || !table.HasColumn("category") {
		return nil
	}

	byDistrict := isSubnational && table.HasColumn("district")
	order, groups := groupRows(table.Rows, func(row dto.RawRow) string {
		key := stringOr(row.Cell("country"), "")
		if byDistrict {
			key += "\x00" + stringOr(row.Cell("district"), "")
		}
		return key + "\x00" + stringOr(row.Cell("category"), "")
	})

	events := make([]domain.Event, 0, len(order))
	for _, key := range order {
		rows := groups[key]
		country := stringOr(rows[0].Cell("country"), "")
		category := stringOr(rows[0].Cell("category"), "")
		district := ""
		if byDistrict {
			district = stringOr(rows[0].Cell("district"), "")
		}

		avgScore := 0.0
		if table.HasColumn("category_score") {
			avgScore = mean(rows, "category_score")
		}

		categoryWeight := 0.0
		if w := rows[0].Float("category_weight"); w != nil {
			categoryWeight = round4(*w)
		}
		categoryCode := stringOr(rows[0].Cell("category_code"), "")

		yesCount := countAnswer(rows, "yes")
		total := len(rows)
		completionRate := 0.0
		if total > 0 {
			completionRate = round2(float64(yesCount) / float64(total) * 100)
		}

		events = append(events, domain.Event{
			ID:       fmt.Sprintf("CAT-%s-%s-%s", upper3(disease), upper3(country), categoryCode),
			Source:   "WHO",
			DataType: domain.DataTypeReadinessCategory,

			Country:       country,
			District:      district,
			Disease:       disease,
			EventType:     "ReadinessCategory",
			IsSubnational: isSubnational,

			Category:       category,
			CategoryCode:   categoryCode,
			CategoryScore:  avgScore,
			CategoryWeight: categoryWeight,
			CategoryGrade:  ScoreToGrade(avgScore),

			QuestionsInCategory: total,
			YesResponses:        yesCount,
			CompletionRate:      completionRate,

			SourceFile: csvFile,
			ReportDate: now.Format(time.RFC3339),
		})
	}

	return events
}

func uniqueValues(rows []dto.RawRow, field string) []string {
	seen := make(map[string]bool, 16)
	values := make([]string, 0, 16)
	for _, row := range rows {
		cell := row.Cell(field)
		if !cell.Present || seen[cell.Value] {
			continue
		}
		seen[cell.Value] = true
		values = append(values, cell.Value)
	}
	return values
}
