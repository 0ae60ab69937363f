package domain

import "time"

// ReadinessRow is one persisted questionnaire answer row. All hazard
// domains share this shape; domain-specific extras (district, PoE name,
// data period) are nullable. The hazard-qualified KeyOnTable is the
// upsert conflict target.
type ReadinessRow struct {
	ID         int64  `db:"id"`
	Hazard     string `db:"hazard"`
	KeyOnTable string `db:"key_on_table"`

	QuestionID             *int64   `db:"question_id"`
	QuestionKey            *string  `db:"question_key"`
	Language               *string  `db:"language"`
	Category               *string  `db:"category"`
	CategoryCode           *string  `db:"category_code"`
	AffectsScore           *int64   `db:"affects_score"`
	CategoryScore          *float64 `db:"category_score"`
	CategoryWeight         *float64 `db:"category_weight"`
	QuestionScore          *float64 `db:"question_score"`
	QuestionCategoryWeight *float64 `db:"question_category_weight"`
	CategoryLanguage       *string  `db:"category_language"`
	QuestionLanguage       *string  `db:"question_language"`
	NationalYNValue        *string  `db:"national_yn_value"`
	NationalYN             *string  `db:"national_yn"`
	Comments               *string  `db:"comments"`
	FileName               *string  `db:"file_name"`
	Country                *string  `db:"country"`
	AdminLevel             *string  `db:"admin_level"`
	AdminLevelName         *string  `db:"admin_level_name"`
	FileLanguage           *string  `db:"file_language"`
	Table                  *string  `db:"table_name"`
	RowNo                  *int64   `db:"row_no"`
	Question               *string  `db:"question"`

	DataPeriod          *string `db:"data_period"`
	DataPeriodID        *string `db:"data_period_id"`
	District            *string `db:"district"`
	PoEName             *string `db:"poe_name"`
	HasInternationalPoE *int64  `db:"has_international_poe"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WeightedScore is question_score * question_category_weight, defined as
// 0 when either operand is absent.
func (r *ReadinessRow) WeightedScore() float64 {
	if r.QuestionScore == nil || r.QuestionCategoryWeight == nil {
		return 0
	}
	return *r.QuestionScore * *r.QuestionCategoryWeight
}
