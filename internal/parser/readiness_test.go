package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
)

func TestScoreToGrade(t *testing.T) {
	assert.Equal(t, domain.Grade1, ScoreToGrade(8))
	assert.Equal(t, domain.Grade1, ScoreToGrade(9.5))
	assert.Equal(t, domain.Grade2, ScoreToGrade(7.99))
	assert.Equal(t, domain.Grade2, ScoreToGrade(5))
	assert.Equal(t, domain.Grade3, ScoreToGrade(4.99))
	assert.Equal(t, domain.Grade3, ScoreToGrade(2))
	assert.Equal(t, domain.Ungraded, ScoreToGrade(1.99))
	assert.Equal(t, domain.Ungraded, ScoreToGrade(0))
}

func readinessTable(t *testing.T, csv string) Table {
	t.Helper()
	table, err := ExtractCSV(strings.NewReader(csv), readinessFields, SnakeCase)
	require.NoError(t, err)
	return table
}

func TestAggregateReadiness(t *testing.T) {
	csv := "Country,Category,CategoryScore,QuestionScore,NationalYN\n" +
		"Kenya,Surveillance,6.0,7.0,yes\n" +
		"Kenya,Surveillance,6.5,5.0,yes\n" +
		"Kenya,Laboratory,7.0,,yes\n" +
		"Kenya,Laboratory,5.5,6.0,no\n" +
		"Kenya,Coordination,8.0,4.0,\n" +
		"Uganda,Surveillance,9.0,9.0,yes\n"

	table := readinessTable(t, csv)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	events := AggregateReadiness(table, "Cholera", "cholera.csv", false, now)
	require.Len(t, events, 2)

	kenya := events[0]
	assert.Equal(t, "Kenya", kenya.Country)
	assert.Equal(t, "RDN-CHO-KEN-1", kenya.ID)
	assert.Equal(t, domain.DataTypeReadinessSummary, kenya.DataType)
	assert.Equal(t, "National", kenya.AdminLevel)
	assert.False(t, kenya.IsSubnational)

	assert.Equal(t, 5, kenya.TotalQuestions)
	assert.Equal(t, 3, kenya.YesResponses)
	assert.Equal(t, 1, kenya.NoResponses)
	// 3 of 5 answered yes.
	assert.Equal(t, 60.0, kenya.ResponseRate)

	// (6.0+6.5+7.0+5.5+8.0)/5
	assert.Equal(t, 6.6, kenya.AvgCategoryScore)
	// The blank question score is excluded from the denominator.
	assert.Equal(t, 5.5, kenya.AvgQuestionScore)
	assert.Equal(t, domain.Grade2, kenya.ReadinessGrade)
	assert.Equal(t, 3, kenya.CategoriesCount)
	assert.Equal(t, []string{"Surveillance", "Laboratory", "Coordination"}, kenya.Categories)

	uganda := events[1]
	assert.Equal(t, "RDN-CHO-UGA-2", uganda.ID)
	assert.Equal(t, domain.Grade1, uganda.ReadinessGrade)
	assert.Equal(t, 100.0, uganda.ResponseRate)
}

func TestAggregateReadinessNoCountryColumn(t *testing.T) {
	table := readinessTable(t, "Category,CategoryScore\nSurveillance,6.0\n")
	events := AggregateReadiness(table, "Cholera", "cholera.csv", false, time.Now())
	assert.Empty(t, events)
}

func TestAggregateReadinessSubnational(t *testing.T) {
	csv := "Country,District,CategoryScore,NationalYN\n" +
		"Kenya,Nairobi,6.0,yes\n" +
		"Kenya,Mombasa,3.0,no\n"

	table := readinessTable(t, csv)
	events := AggregateReadiness(table, "Mpox (Districts)", "mpox_districts.csv", true, time.Now())
	require.Len(t, events, 2)

	assert.Equal(t, "Nairobi", events[0].District)
	assert.Equal(t, "Mombasa", events[1].District)
	assert.Equal(t, "SubNational", events[0].AdminLevel)
	assert.True(t, events[0].IsSubnational)
}

func TestReadinessByCategory(t *testing.T) {
	csv := "Country,Category,CategoryCode,CategoryScore,CategoryWeight,NationalYN\n" +
		"Kenya,Surveillance,SUR,6.0,0.25,yes\n" +
		"Kenya,Surveillance,SUR,4.0,0.25,no\n" +
		"Kenya,Laboratory,LAB,9.0,0.12345,yes\n"

	table := readinessTable(t, csv)
	events := ReadinessByCategory(table, "Cholera", "cholera.csv", false, time.Now())
	require.Len(t, events, 2)

	sur := events[0]
	assert.Equal(t, "CAT-CHO-KEN-SUR", sur.ID)
	assert.Equal(t, domain.DataTypeReadinessCategory, sur.DataType)
	assert.Equal(t, 5.0, sur.CategoryScore)
	assert.Equal(t, 0.25, sur.CategoryWeight)
	assert.Equal(t, domain.Grade2, sur.CategoryGrade)
	assert.Equal(t, 2, sur.QuestionsInCategory)
	assert.Equal(t, 50.0, sur.CompletionRate)

	lab := events[1]
	assert.Equal(t, "CAT-CHO-KEN-LAB", lab.ID)
	// Weight is rounded to 4 places, half away from zero.
	assert.Equal(t, 0.1235, lab.CategoryWeight)
	assert.Equal(t, domain.Grade1, lab.CategoryGrade)
}

func TestReadinessByCategoryNeedsCategoryColumn(t *testing.T) {
	table := readinessTable(t, "Country,CategoryScore\nKenya,6.0\n")
	events := ReadinessByCategory(table, "Cholera", "cholera.csv", false, time.Now())
	assert.Empty(t, events)
}
