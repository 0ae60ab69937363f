package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
)

func TestClassifyGrade(t *testing.T) {
	assert.Equal(t, domain.Grade2, ClassifyGrade("Risk Grade 2"))
	assert.Equal(t, domain.Grade3, ClassifyGrade("Grade 3"))
	assert.Equal(t, domain.Grade1, ClassifyGrade("g1"))
	// "3" wins over "1" regardless of order in the text.
	assert.Equal(t, domain.Grade3, ClassifyGrade("Grade 1, escalated to 3"))
	assert.Equal(t, domain.Ungraded, ClassifyGrade("pending"))
	assert.Equal(t, domain.Ungraded, ClassifyGrade(""))
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, domain.StatusClosed, ClassifyStatus("Situation Closed"))
	assert.Equal(t, domain.StatusClosed, ClassifyStatus("event ended"))
	assert.Equal(t, domain.StatusMonitoring, ClassifyStatus("Under Monitoring"))
	assert.Equal(t, domain.StatusOngoing, ClassifyStatus("active outbreak"))
	// "closed" takes precedence over "monitor".
	assert.Equal(t, domain.StatusClosed, ClassifyStatus("monitoring closed"))
}

func TestEventTypeFromFile(t *testing.T) {
	assert.Equal(t, "SIGNAL", EventTypeFromFile("signal_data.csv"))
	assert.Equal(t, "PHE", EventTypeFromFile("phe_data.csv"))
	assert.Equal(t, "RRA", EventTypeFromFile("rra_data.csv"))
}

func TestStandardizeSignalDefaults(t *testing.T) {
	csv := "iso_code,disease_name,risk_grade,event_status\n" +
		"KE-001,Cholera,Risk Grade 2,Situation Closed\n"

	table, err := ExtractCSV(strings.NewReader(csv), signalFields, NormalizeSignalColumn)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	events := StandardizeSignal(table, "signal_data.csv", now)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "KE-001", e.ID)
	assert.Equal(t, "WHO", e.Source)
	assert.Equal(t, domain.DataTypeSignal, e.DataType)
	assert.Equal(t, "SIGNAL", e.EventType)
	assert.Equal(t, domain.Grade2, e.Grade)
	assert.Equal(t, domain.StatusClosed, e.Status)

	// Missing columns land on their documented defaults.
	assert.Equal(t, "Unknown", e.Country)
	assert.Equal(t, now.Format(time.RFC3339), e.ReportDate)
	assert.Equal(t, 2025, e.Year)
	assert.Zero(t, e.Lat)
	assert.Zero(t, e.Lon)
	assert.Zero(t, e.Cases)
	assert.Zero(t, e.Deaths)
}

func TestStandardizeSignalCoercion(t *testing.T) {
	csv := "country_name,latitude,longitude,case_count,death_count,report_date\n" +
		"Kenya,-1.28,36.82,120,3.0,2025-05-01\n" +
		"Uganda,not-a-number,,abc,,2025-05-02\n"

	table, err := ExtractCSV(strings.NewReader(csv), signalFields, NormalizeSignalColumn)
	require.NoError(t, err)

	events := StandardizeSignal(table, "phe_data.csv", time.Now())
	require.Len(t, events, 2)

	assert.Equal(t, -1.28, events[0].Lat)
	assert.Equal(t, 120, events[0].Cases)
	assert.Equal(t, 3, events[0].Deaths)
	assert.Equal(t, "2025-05-01", events[0].ReportDate)

	// Unparseable and blank values collapse to zero.
	assert.Zero(t, events[1].Lat)
	assert.Zero(t, events[1].Lon)
	assert.Zero(t, events[1].Cases)
	assert.Zero(t, events[1].Deaths)
}
