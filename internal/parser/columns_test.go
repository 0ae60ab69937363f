package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"QuestionID":             "question_id",
		"QuestionKey":            "question_key",
		"CategoryCode":           "category_code",
		"NationalYN":             "national_yn",
		"NationalYNValue":        "national_yn_value",
		"PoEName":                "poe_name",
		"Country":                "country",
		"AdminLevelName":         "admin_level_name",
		"RowNo":                  "row_no",
		"category":               "category",
		"QuestionCategoryWeight": "question_category_weight",
	}

	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestNormalizeStarColumn(t *testing.T) {
	assert.Equal(t, "n", NormalizeStarColumn("_N"))
	assert.Equal(t, "country", NormalizeStarColumn("Country"))
	assert.Equal(t, "risk_level", NormalizeStarColumn("Risk_Level"))
	// Only a single leading underscore is stripped.
	assert.Equal(t, "_n", NormalizeStarColumn("__N"))
}

func TestTrimColumn(t *testing.T) {
	assert.Equal(t, "Total Average", TrimColumn("  Total Average "))
}
