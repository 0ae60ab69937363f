package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func testParser(dir string) *Parser {
	p := New(Config{
		DataDir:                   dir,
		SignalFiles:               []string{"signal_data.csv"},
		ReadinessNationalFiles:    []string{"cholera_readiness.csv"},
		ReadinessSubnationalFiles: []string{"mpox_districts.csv"},
	})
	p.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return p
}

func TestParseAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "signal_data.csv",
		"iso_code,country_name,disease_name,risk_grade,event_status\n"+
			"KE-1,Kenya,Cholera,Grade 2,Ongoing\n")
	writeFile(t, dir, "cholera_readiness.csv",
		"Country,Category,CategoryScore,NationalYN\n"+
			"Kenya,Surveillance,6.0,yes\n")

	result := testParser(dir).ParseAll(context.Background())

	require.Len(t, result.Files, 2)
	for _, f := range result.Files {
		assert.Empty(t, f.Error, "file %s", f.File)
		assert.Positive(t, f.Records)
	}

	byType := make(map[string]int)
	for _, e := range result.Events {
		byType[e.DataType]++
	}
	assert.Equal(t, 1, byType[domain.DataTypeSignal])
	assert.Equal(t, 1, byType[domain.DataTypeReadinessSummary])
	assert.Equal(t, 1, byType[domain.DataTypeReadinessCategory])
}

func TestParseAllContinuesPastBadFile(t *testing.T) {
	dir := t.TempDir()
	// No header row at all.
	writeFile(t, dir, "cholera_readiness.csv", "")
	writeFile(t, dir, "signal_data.csv",
		"iso_code,country_name\nKE-1,Kenya\n")

	result := testParser(dir).ParseAll(context.Background())

	require.Len(t, result.Files, 2)
	failed := 0
	for _, f := range result.Files {
		if f.Error != "" {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Len(t, result.Events, 1)
}

func TestSignalEventsSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	result := testParser(dir).SignalEvents(context.Background())
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Events)
}

func TestExtractDiseaseFromFilename(t *testing.T) {
	cases := map[string]string{
		"Arbovirus_denguereadiness_dataunweighted.csv":     "Arbovirus/Dengue",
		"cholerareadiness_DataUnweighted (1).csv":          "Cholera",
		"cholerareadiness_SubNational.DataUnweighted.csv":  "Cholera (Subnational)",
		"FVDreadiness_PoE.DataUnweighted.csv":              "FVD (PoE)",
		"lassafeverreadiness_Districts.DataUnweighted.csv": "Lassa Fever (Districts)",
		"Marburgreadiness_DataUnweighted (1).csv":          "Marburg",
		"meningitiselimination_readiness.csv":              "Meningitis Elimination",
		"MPox readiness_Districts.DataUnweighted.csv":      "Mpox (Districts)",
		"MPoxreadines_DataUnweighted.csv":                  "Mpox",
		"naturaldisastersreadiness.csv":                    "Natural Disasters",
		"riftvalleyfever_readiness.csv":                    "Rift Valley Fever",
		"somethingelse.csv":                                "Unknown",
	}

	for in, want := range cases {
		assert.Equal(t, want, ExtractDiseaseFromFilename(in), "file %q", in)
	}
}

func TestHealth(t *testing.T) {
	dir := t.TempDir()
	p := testParser(dir)

	health := p.Health()
	assert.Equal(t, "degraded", health.Status)
	assert.False(t, health.CSVFiles["signal_data.csv"])

	writeFile(t, dir, "signal_data.csv", "iso_code\n")
	writeFile(t, dir, "cholera_readiness.csv", "Country\n")
	writeFile(t, dir, "mpox_districts.csv", "Country\n")

	health = p.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, health.CSVFiles["signal_data.csv"])
}

func TestIsSubnationalFile(t *testing.T) {
	p := testParser(t.TempDir())
	assert.True(t, p.IsSubnationalFile("mpox_districts.csv"))
	assert.False(t, p.IsSubnationalFile("cholera_readiness.csv"))
}
