package datasets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type fakeStore struct {
	store.Store

	readinessRows []*domain.ReadinessRow
	starRows      []*domain.StarRow
	espars        []*domain.Espar
	indicators    []*domain.Indicator
}

func (f *fakeStore) ListReadinessRows(_ context.Context, _ store.ListReadinessRowsOpts) ([]*domain.ReadinessRow, error) {
	return f.readinessRows, nil
}

func (f *fakeStore) ListStarRows(_ context.Context, _ store.ListStarRowsOpts) ([]*domain.StarRow, error) {
	return f.starRows, nil
}

func (f *fakeStore) ListEsparBySheet(_ context.Context, _ string) ([]*domain.Espar, error) {
	return f.espars, nil
}

func (f *fakeStore) ListIndicatorsByEspar(_ context.Context, _ []int64) ([]*domain.Indicator, error) {
	return f.indicators, nil
}

func sptr(s string) *string   { return &s }
func fptr(v float64) *float64 { return &v }

func TestSummarizeReadiness(t *testing.T) {
	fs := &fakeStore{readinessRows: []*domain.ReadinessRow{
		{Country: sptr("Kenya"), QuestionScore: fptr(7)},
		{Country: sptr(" kenya "), QuestionScore: fptr(0)},
		{Country: sptr("Uganda")},
		{QuestionScore: fptr(3)},
	}}

	summary, err := NewDatasetsService(fs).SummarizeReadiness(context.Background(), "cholera")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalQuestions)
	// Positive scores only.
	assert.Equal(t, 2, summary.AnsweredQuestions)
	assert.Equal(t, 50.0, summary.CompletionPct)
	// Countries fold to lowercase, trimmed.
	assert.Equal(t, []string{"kenya", "uganda"}, summary.Countries)
}

func TestSummarizeStar(t *testing.T) {
	fs := &fakeStore{starRows: []*domain.StarRow{
		{Country: sptr("Kenya"), MainTypeOfHazard: sptr("Hydrometeorological"), RiskLevel: sptr("High"), Severity: sptr("3"), Status: sptr("1")},
		{Country: sptr("Kenya"), MainTypeOfHazard: sptr("Biological"), RiskLevel: sptr("High"), Severity: sptr("2"), Status: sptr("0")},
		{Country: sptr("Mozambique"), RiskLevel: sptr("Low"), Status: sptr(" 1 ")},
	}}

	summary, err := NewDatasetsService(fs).SummarizeStar(context.Background(), store.ListStarRowsOpts{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalIncidents)
	assert.Equal(t, 2, summary.ActiveIncidents)
	assert.Equal(t, []string{"Kenya", "Mozambique"}, summary.Countries)
	assert.Equal(t, []string{"Biological", "Hydrometeorological"}, summary.HazardTypes)
	assert.Equal(t, 2, summary.ByRiskLevel["High"])
	assert.Equal(t, 1, summary.ByRiskLevel["Low"])
	assert.Equal(t, 1, summary.BySeverity["3"])
	assert.Equal(t, 2, summary.ByStatus["1"])
	assert.Equal(t, 1, summary.ByStatus["0"])
}

func TestListEspar(t *testing.T) {
	fs := &fakeStore{
		espars: []*domain.Espar{
			{ID: 1, KeyOnTable: "espar_row_0"},
			{ID: 2, KeyOnTable: "espar_row_1"},
		},
		indicators: []*domain.Indicator{
			{EsparID: 1, Code: "C.1.1", Value: fptr(80)},
			{EsparID: 1, Code: "C.2.1", Value: fptr(35)},
			{EsparID: 2, Code: "C.1.1", Value: fptr(60)},
		},
	}

	out, err := NewDatasetsService(fs).ListEspar(context.Background(), "2023")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Len(t, out[0].Indicators, 2)
	assert.Len(t, out[1].Indicators, 1)
	// 80 scales to 4 (strong), 35 scales to 1 (weak).
	assert.Len(t, out[0].StrongIndicators, 1)
	assert.Len(t, out[0].WeakIndicators, 1)
	assert.Equal(t, "C.1.1", out[0].StrongIndicators[0].Code)
	assert.Equal(t, "C.2.1", out[0].WeakIndicators[0].Code)
}
