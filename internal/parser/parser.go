package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

// Config enumerates the data directory and the static file-to-domain
// classification tables. It is passed in at construction; nothing here
// is package-global state.
type Config struct {
	DataDir string

	SignalFiles               []string
	ReadinessNationalFiles    []string
	ReadinessSubnationalFiles []string
}

// DefaultConfig carries the known WHO export set rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir: dataDir,
		SignalFiles: []string{
			"phe_data.csv",
			"signal_data.csv",
			"rra_data.csv",
			"eis_data.csv",
		},
		ReadinessNationalFiles: []string{
			"Arbovirus_denguereadiness_dataunweighted.csv",
			"cholerareadiness_DataUnweighted (1).csv",
			"cyclonereadiness_DataUnweighted (1).csv",
			"FVDreadiness_DataUnweighted (1).csv",
			"lassaFeverreadiness_DataUnweighted (1).csv",
			"Marburgreadiness_DataUnweighted (1).csv",
			"meningitis readiness_DataUnweighted (1).csv",
			"meningitiselimination_readiness_DataUnweighted (1).csv",
			"MPoxreadines_DataUnweighted.csv",
			"naturaldisastersreadiness_DataUnweighted (1).csv",
			"riftvalleyfever_readiness_DataUnweighted (1).csv",
		},
		ReadinessSubnationalFiles: []string{
			"cholerareadiness_SubNational.DataUnweighted.csv",
			"FVDreadiness_PoE.DataUnweighted.csv",
			"lassafeverreadiness_Districts.DataUnweighted (1).csv",
			"MPox readiness_Districts.DataUnweighted.csv",
		},
	}
}

// Parser reads the WHO export directory into unified events.
type Parser struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Parser {
	return &Parser{cfg: cfg, now: time.Now}
}

// FileResult is one entry of a batch manifest.
type FileResult struct {
	File    string `json:"file"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// BatchResult is the outcome of a multi-file parse: the combined events
// plus the per-file success/failure manifest. One bad file never aborts
// the batch.
type BatchResult struct {
	Events []domain.Event
	Files  []FileResult
}

func (p *Parser) isSignalFile(name string) bool {
	return contains(p.cfg.SignalFiles, name)
}

// IsSubnationalFile classifies a readiness file as subnational. The
// classification is a static property of the file name, never inferred
// from content.
func (p *Parser) IsSubnationalFile(name string) bool {
	return contains(p.cfg.ReadinessSubnationalFiles, name)
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

// CSVFiles lists every CSV in the data directory.
func (p *Parser) CSVFiles() []string {
	return p.filesWithSuffix(".csv")
}

// ExcelFiles lists every workbook in the data directory.
func (p *Parser) ExcelFiles() []string {
	return append(p.filesWithSuffix(".xlsx"), p.filesWithSuffix(".xls")...)
}

func (p *Parser) filesWithSuffix(suffix string) []string {
	entries, err := os.ReadDir(p.cfg.DataDir)
	if err != nil {
		return nil
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			files = append(files, entry.Name())
		}
	}
	return files
}

// ParseAll walks every CSV in the data directory, routing each through
// the signal or readiness path by its static classification.
func (p *Parser) ParseAll(ctx context.Context) BatchResult {
	var result BatchResult

	for _, name := range p.CSVFiles() {
		events, err := p.parseFile(name)
		if err != nil {
			logger.Errorf(ctx, "parse %s: %s", name, err.Error())
			result.Files = append(result.Files, FileResult{File: name, Error: err.Error()})
			continue
		}

		result.Events = append(result.Events, events...)
		result.Files = append(result.Files, FileResult{File: name, Records: len(events)})
	}

	return result
}

func (p *Parser) parseFile(name string) ([]domain.Event, error) {
	if p.isSignalFile(name) {
		return p.parseSignalCSV(name)
	}
	return p.parseReadinessCSV(name, p.IsSubnationalFile(name))
}

func (p *Parser) parseSignalCSV(name string) ([]domain.Event, error) {
	f, err := os.Open(filepath.Join(p.cfg.DataDir, name))
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	table, err := ExtractCSV(f, signalFields, NormalizeSignalColumn)
	if err != nil {
		return nil, fmt.Errorf("ExtractCSV: %w", err)
	}

	return StandardizeSignal(table, name, p.now()), nil
}

func (p *Parser) parseReadinessCSV(name string, isSubnational bool) ([]domain.Event, error) {
	f, err := os.Open(filepath.Join(p.cfg.DataDir, name))
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	table, err := ExtractCSV(f, readinessFields, SnakeCase)
	if err != nil {
		return nil, fmt.Errorf("ExtractCSV: %w", err)
	}

	disease := ExtractDiseaseFromFilename(name)
	now := p.now()

	events := AggregateReadiness(table, disease, name, isSubnational, now)
	events = append(events, ReadinessByCategory(table, disease, name, isSubnational, now)...)
	return events, nil
}

// SignalEvents parses only the signal feed files.
func (p *Parser) SignalEvents(ctx context.Context) BatchResult {
	var result BatchResult
	for _, name := range p.cfg.SignalFiles {
		if _, err := os.Stat(filepath.Join(p.cfg.DataDir, name)); err != nil {
			continue
		}

		events, err := p.parseSignalCSV(name)
		if err != nil {
			logger.Errorf(ctx, "parse %s: %s", name, err.Error())
			result.Files = append(result.Files, FileResult{File: name, Error: err.Error()})
			continue
		}

		result.Events = append(result.Events, events...)
		result.Files = append(result.Files, FileResult{File: name, Records: len(events)})
	}
	return result
}

// ReadinessSummaries returns only the readiness_summary slice of a full
// parse.
func (p *Parser) ReadinessSummaries(ctx context.Context) BatchResult {
	return p.filtered(ctx, domain.DataTypeReadinessSummary)
}

// ReadinessCategories returns only the readiness_category slice.
func (p *Parser) ReadinessCategories(ctx context.Context) BatchResult {
	return p.filtered(ctx, domain.DataTypeReadinessCategory)
}

func (p *Parser) filtered(ctx context.Context, dataType string) BatchResult {
	result := p.ParseAll(ctx)
	events := make([]domain.Event, 0, len(result.Events))
	for _, event := range result.Events {
		if event.DataType == dataType {
			events = append(events, event)
		}
	}
	result.Events = events
	return result
}

// AvailableDiseases lists the distinct disease classifications of the
// readiness files currently on disk.
func (p *Parser) AvailableDiseases() []string {
	seen := make(map[string]bool, 16)
	diseases := make([]string, 0, 16)
	for _, name := range p.CSVFiles() {
		if p.isSignalFile(name) {
			continue
		}
		disease := ExtractDiseaseFromFilename(name)
		if !seen[disease] {
			seen[disease] = true
			diseases = append(diseases, disease)
		}
	}
	return diseases
}

// ExtractDiseaseFromFilename classifies the hazard a readiness export
// covers from its file name.
func ExtractDiseaseFromFilename(filename string) string {
	name := strings.ToLower(filename)

	switch {
	case strings.Contains(name, "arbovirus"), strings.Contains(name, "dengue"):
		return "Arbovirus/Dengue"
	case strings.Contains(name, "cholera"):
		if strings.Contains(name, "subnational") {
			return "Cholera (Subnational)"
		}
		return "Cholera"
	case strings.Contains(name, "cyclone"):
		return "Cyclone"
	case strings.Contains(name, "fvd"):
		if strings.Contains(name, "poe") {
			return "FVD (PoE)"
		}
		return "FVD"
	case strings.Contains(name, "lassa"):
		if strings.Contains(name, "district") {
			return "Lassa Fever (Districts)"
		}
		return "Lassa Fever"
	case strings.Contains(name, "marburg"):
		return "Marburg"
	case strings.Contains(name, "meningitis"):
		if strings.Contains(name, "elimination") {
			return "Meningitis Elimination"
		}
		return "Meningitis"
	case strings.Contains(name, "mpox"):
		if strings.Contains(name, "district") {
			return "Mpox (Districts)"
		}
		return "Mpox"
	case strings.Contains(name, "natural"), strings.Contains(name, "disaster"):
		return "Natural Disasters"
	case strings.Contains(name, "rift"), strings.Contains(name, "valley"):
		return "Rift Valley Fever"
	default:
		return "Unknown"
	}
}

// FileBucket is one classification bucket of the dataset summary.
type FileBucket struct {
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// Summary describes what the data directory currently holds.
type Summary struct {
	TotalCSVFiles             int        `json:"total_csv_files"`
	TotalExcelFiles           int        `json:"total_excel_files"`
	SignalFiles               FileBucket `json:"signal_files"`
	ReadinessNationalFiles    FileBucket `json:"readiness_national_files"`
	ReadinessSubnationalFiles FileBucket `json:"readiness_subnational_files"`
	ExcelFiles                FileBucket `json:"excel_files"`
}

func (p *Parser) Summary() Summary {
	csvFiles := p.CSVFiles()
	excelFiles := p.ExcelFiles()

	return Summary{
		TotalCSVFiles:             len(csvFiles),
		TotalExcelFiles:           len(excelFiles),
		SignalFiles:               bucket(csvFiles, p.cfg.SignalFiles),
		ReadinessNationalFiles:    bucket(csvFiles, p.cfg.ReadinessNationalFiles),
		ReadinessSubnationalFiles: bucket(csvFiles, p.cfg.ReadinessSubnationalFiles),
		ExcelFiles:                FileBucket{Count: len(excelFiles), Files: excelFiles},
	}
}

func bucket(present, expected []string) FileBucket {
	files := make([]string, 0, len(expected))
	for _, name := range present {
		if contains(expected, name) {
			files = append(files, name)
		}
	}
	return FileBucket{Count: len(files), Files: files}
}

// Health reports per-expected-file presence and the overall status.
type Health struct {
	Status   string          `json:"status"`
	Summary  Summary         `json:"summary"`
	CSVFiles map[string]bool `json:"csv_files"`
	DataDir  string          `json:"who_data_dir"`
}

func (p *Parser) Health() Health {
	files := make(map[string]bool)
	for _, group := range [][]string{p.cfg.SignalFiles, p.cfg.ReadinessNationalFiles, p.cfg.ReadinessSubnationalFiles} {
		for _, name := range group {
			_, err := os.Stat(filepath.Join(p.cfg.DataDir, name))
			files[name] = err == nil
		}
	}

	status := "healthy"
	if len(files) == 0 {
		status = "degraded"
	}
	for _, present := range files {
		if !present {
			status = "degraded"
			break
		}
	}

	return Health{
		Status:   status,
		Summary:  p.Summary(),
		CSVFiles: files,
		DataDir:  p.cfg.DataDir,
	}
}
