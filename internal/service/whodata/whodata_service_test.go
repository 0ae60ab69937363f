package whodata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type fakeStore struct {
	store.Store

	existing []domain.Event
}

func (f *fakeStore) ListExistingEvents(_ context.Context) ([]domain.Event, error) {
	return f.existing, nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testService(t *testing.T, existing []domain.Event) *Service {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "signal_data.csv",
		"iso_code,country_name,disease_name,risk_grade,event_status,report_date\n"+
			"KE-1,Kenya,Cholera,Grade 2,Ongoing,2025-05-01\n"+
			"UG-1,Uganda,Mpox,Grade 1,Situation Closed,2025-05-02\n")
	writeFile(t, dir, "cholera_readiness.csv",
		"Country,Category,CategoryScore,NationalYN\n"+
			"Kenya,Surveillance,6.0,yes\n"+
			"Uganda,Surveillance,9.0,yes\n")

	p := parser.New(parser.Config{
		DataDir:                dir,
		SignalFiles:            []string{"signal_data.csv"},
		ReadinessNationalFiles: []string{"cholera_readiness.csv"},
	})

	return NewWhoDataService(&fakeStore{existing: existing}, p)
}

func TestQueryAll(t *testing.T) {
	svc := testService(t, []domain.Event{{
		DataType: domain.DataTypeExisting,
		Source:   "EXISTING",
		Country:  "Kenya",
		Disease:  "Mpox",
	}})

	result, err := svc.Query(context.Background(), QueryOpts{})
	require.NoError(t, err)

	// 2 signals + 2 summaries + 2 categories + 1 existing.
	assert.Equal(t, 7, result.Metadata.Total)
	assert.Equal(t, 2, result.Metadata.CountsByType[domain.DataTypeSignal])
	assert.Equal(t, 2, result.Metadata.CountsByType[domain.DataTypeReadinessSummary])
	assert.Equal(t, 2, result.Metadata.CountsByType[domain.DataTypeReadinessCategory])
	assert.Equal(t, 1, result.Metadata.CountsByType[domain.DataTypeExisting])
	assert.Contains(t, result.Metadata.Countries, "Kenya")
	assert.Contains(t, result.Metadata.Countries, "Uganda")

	for _, e := range result.Events {
		if e.DataType == domain.DataTypeExisting {
			assert.Equal(t, 2, e.SourcePriority)
		} else {
			assert.Equal(t, 1, e.SourcePriority)
		}
	}
}

func TestQueryCountryFilter(t *testing.T) {
	svc := testService(t, nil)

	result, err := svc.Query(context.Background(), QueryOpts{Country: "kenya"})
	require.NoError(t, err)

	require.NotEmpty(t, result.Events)
	for _, e := range result.Events {
		assert.Equal(t, "Kenya", e.Country)
	}
}

func TestQueryDataTypeSignal(t *testing.T) {
	svc := testService(t, []domain.Event{{
		DataType: domain.DataTypeExisting,
		Country:  "Kenya",
		Disease:  "Mpox",
	}})

	result, err := svc.Query(context.Background(), QueryOpts{DataType: domain.DataTypeSignal})
	require.NoError(t, err)

	// dataType selects what gets parsed from disk; stored records
	// always join the view.
	assert.Equal(t, 3, result.Metadata.Total)
	assert.Equal(t, 2, result.Metadata.CountsByType[domain.DataTypeSignal])
	assert.Equal(t, 1, result.Metadata.CountsByType[domain.DataTypeExisting])
}

func TestQueryDiseaseSubstring(t *testing.T) {
	svc := testService(t, nil)

	result, err := svc.Query(context.Background(), QueryOpts{
		DataType: domain.DataTypeSignal,
		Disease:  "chol",
	})
	require.NoError(t, err)

	require.Len(t, result.Events, 1)
	assert.Equal(t, "Cholera", result.Events[0].Disease)
}

func TestQueryGradeAndStatus(t *testing.T) {
	svc := testService(t, nil)

	result, err := svc.Query(context.Background(), QueryOpts{
		DataType: domain.DataTypeSignal,
		Grade:    "grade 1",
	})
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "Uganda", result.Events[0].Country)

	result, err = svc.Query(context.Background(), QueryOpts{
		DataType: domain.DataTypeSignal,
		Status:   "closed",
	})
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	assert.Equal(t, domain.StatusClosed, result.Events[0].Status)
}

func TestQueryEventTypeReadiness(t *testing.T) {
	svc := testService(t, nil)

	result, err := svc.Query(context.Background(), QueryOpts{EventType: "Readiness"})
	require.NoError(t, err)

	require.Len(t, result.Events, 2)
	for _, e := range result.Events {
		assert.Equal(t, domain.DataTypeReadinessSummary, e.DataType)
	}

	// Both sides fold, so the filter value's casing never matters.
	result, err = svc.Query(context.Background(), QueryOpts{EventType: "READINESS"})
	require.NoError(t, err)
	assert.Len(t, result.Events, 2)
}
