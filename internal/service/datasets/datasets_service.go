package datasets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

// Service is the read side of the ingested datasets.
type Service struct {
	store store.Store
}

func NewDatasetsService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListReadinessRows(ctx context.Context, opts store.ListReadinessRowsOpts) ([]*domain.ReadinessRow, error) {
	rows, err := s.store.ListReadinessRows(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListReadinessRows: %w", err)
	}

	return rows, nil
}

// ReadinessSummary describes one hazard's stored questionnaire data.
type ReadinessSummary struct {
	Hazard            string   `json:"hazard"`
	TotalQuestions    int      `json:"totalQuestions"`
	AnsweredQuestions int      `json:"answeredQuestions"`
	CompletionPct     float64  `json:"completionPct"`
	Countries         []string `json:"countries"`
}

// SummarizeReadiness reports coverage of one stored hazard: a question
// counts as answered when its score is positive.
func (s *Service) SummarizeReadiness(ctx context.Context, hazard string) (*ReadinessSummary, error) {
	rows, err := s.store.ListReadinessRows(ctx, store.ListReadinessRowsOpts{Hazard: hazard})
	if err != nil {
		return nil, fmt.Errorf("store.ListReadinessRows: %w", err)
	}

	summary := &ReadinessSummary{Hazard: hazard}
	countries := make(map[string]bool)
	for _, row := range rows {
		summary.TotalQuestions++
		if row.QuestionScore != nil && *row.QuestionScore > 0 {
			summary.AnsweredQuestions++
		}
		if row.Country != nil {
			countries[strings.ToLower(strings.TrimSpace(*row.Country))] = true
		}
	}
	if summary.TotalQuestions > 0 {
		summary.CompletionPct = float64(summary.AnsweredQuestions) / float64(summary.TotalQuestions) * 100
	}

	summary.Countries = make([]string, 0, len(countries))
	for country := range countries {
		summary.Countries = append(summary.Countries, country)
	}
	sort.Strings(summary.Countries)

	return summary, nil
}

func (s *Service) ListStarRows(ctx context.Context, opts store.ListStarRowsOpts) ([]*domain.StarRow, error) {
	rows, err := s.store.ListStarRows(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListStarRows: %w", err)
	}

	return rows, nil
}

// StarSummary is the registry overview the dashboard charts are built
// from.
type StarSummary struct {
	TotalIncidents  int            `json:"totalIncidents"`
	ActiveIncidents int            `json:"activeIncidents"`
	Countries       []string       `json:"countries"`
	Hazards         []string       `json:"hazards"`
	HazardTypes     []string       `json:"hazardTypes"`
	ByRiskLevel     map[string]int `json:"byRiskLevel"`
	BySeverity      map[string]int `json:"bySeverity"`
	ByStatus        map[string]int `json:"byStatus"`
}

// SummarizeStar aggregates the registry slice selected by opts.
// Registry exports mark an active incident with status "1".
func (s *Service) SummarizeStar(ctx context.Context, opts store.ListStarRowsOpts) (*StarSummary, error) {
	rows, err := s.store.ListStarRows(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListStarRows: %w", err)
	}

	summary := &StarSummary{
		TotalIncidents: len(rows),
		ByRiskLevel:    make(map[string]int),
		BySeverity:     make(map[string]int),
		ByStatus:       make(map[string]int),
	}

	countries := make(map[string]bool)
	hazards := make(map[string]bool)
	hazardTypes := make(map[string]bool)
	for _, row := range rows {
		if row.Status != nil {
			status := strings.TrimSpace(*row.Status)
			summary.ByStatus[status]++
			if status == "1" {
				summary.ActiveIncidents++
			}
		}
		if row.Country != nil {
			countries[strings.TrimSpace(*row.Country)] = true
		}
		if row.Hazard != nil {
			hazards[strings.TrimSpace(*row.Hazard)] = true
		}
		if row.MainTypeOfHazard != nil {
			hazardTypes[strings.TrimSpace(*row.MainTypeOfHazard)] = true
		}
		if row.RiskLevel != nil {
			summary.ByRiskLevel[strings.TrimSpace(*row.RiskLevel)]++
		}
		if row.Severity != nil {
			summary.BySeverity[strings.TrimSpace(*row.Severity)]++
		}
	}

	summary.Countries = sortedKeys(countries)
	summary.Hazards = sortedKeys(hazards)
	summary.HazardTypes = sortedKeys(hazardTypes)

	return summary, nil
}

// EsparEntry is one listed states-party row with its weak and strong
// indicators broken out for the response.
type EsparEntry struct {
	domain.EsparWithIndicators
	WeakIndicators   []domain.Indicator `json:"weakIndicators"`
	StrongIndicators []domain.Indicator `json:"strongIndicators"`
}

// ListEspar returns a sheet's states-party rows with their indicator
// scores attached.
func (s *Service) ListEspar(ctx context.Context, sheetName string) ([]*EsparEntry, error) {
	espars, err := s.store.ListEsparBySheet(ctx, sheetName)
	if err != nil {
		return nil, fmt.Errorf("store.ListEsparBySheet: %w", err)
	}

	ids := make([]int64, 0, len(espars))
	for _, e := range espars {
		ids = append(ids, e.ID)
	}

	indicators, err := s.store.ListIndicatorsByEspar(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("store.ListIndicatorsByEspar: %w", err)
	}

	byEspar := make(map[int64][]domain.Indicator, len(espars))
	for _, indicator := range indicators {
		byEspar[indicator.EsparID] = append(byEspar[indicator.EsparID], *indicator)
	}

	out := make([]*EsparEntry, 0, len(espars))
	for _, e := range espars {
		entry := &EsparEntry{EsparWithIndicators: domain.EsparWithIndicators{
			Espar:      *e,
			Indicators: byEspar[e.ID],
		}}
		entry.WeakIndicators = entry.EsparWithIndicators.WeakIndicators()
		entry.StrongIndicators = entry.EsparWithIndicators.StrongIndicators()
		out = append(out, entry)
	}

	return out, nil
}

// CHWData is the full community-health-worker hierarchy.
type CHWData struct {
	Countries []*domain.CHWCountry  `json:"countries"`
	Regions   []*domain.CHWRegion   `json:"regions"`
	Districts []*domain.CHWDistrict `json:"districts"`
}

func (s *Service) ListCHW(ctx context.Context) (*CHWData, error) {
	countries, err := s.store.ListCHWCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCHWCountries: %w", err)
	}

	regions, err := s.store.ListCHWRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCHWRegions: %w", err)
	}

	districts, err := s.store.ListCHWDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListCHWDistricts: %w", err)
	}

	return &CHWData{Countries: countries, Regions: regions, Districts: districts}, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
