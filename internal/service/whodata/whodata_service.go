package whodata

import (
	"context"
	"sort"
	"strings"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type Service struct {
	store  store.Store
	parser *parser.Parser
}

func NewWhoDataService(store store.Store, p *parser.Parser) *Service {
	return &Service{store: store, parser: p}
}

// QueryOpts narrows the unified view; nil/empty selectors match
// everything. String matching regimes differ on purpose: country,
// status, eventType and source compare case-insensitively, disease and
// category are substring matches.
type QueryOpts struct {
	DataType      string
	Country       string
	Disease       string
	EventType     string
	Grade         string
	Status        string
	Source        string
	Category      string
	IsSubnational *bool
}

// Metadata summarizes a query result alongside the records.
type Metadata struct {
	Total         int                 `json:"total"`
	CountsByType  map[string]int      `json:"countsByType"`
	CountsByEvent map[string]int      `json:"countsByEvent"`
	Countries     []string            `json:"countries"`
	Diseases      []string            `json:"diseases"`
	Categories    []string            `json:"categories"`
	Files         []parser.FileResult `json:"files"`
}

// Result is the unified WHO data response.
type Result struct {
	Events   []domain.Event `json:"events"`
	Metadata Metadata       `json:"metadata"`
}

// Query parses the requested slice of the data directory, merges it
// with stored records and applies the filters. Stored records join the
// view whatever dataType selects; dataType only decides what gets
// parsed from disk.
func (s *Service) Query(ctx context.Context, opts QueryOpts) (*Result, error) {
	batch := s.parse(ctx, opts.DataType)

	existing, err := s.store.ListExistingEvents(ctx)
	if err != nil {
		// Stored records enrich the view; their absence degrades it
		// rather than failing the request.
		logger.Warnf(ctx, "list existing events: %s", err.Error())
		existing = nil
	}

	events := parser.CombineAndDeduplicate(batch.Events, existing)
	events = filter(events, opts)
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })

	return &Result{
		Events:   events,
		Metadata: buildMetadata(events, batch.Files),
	}, nil
}

// Health reports on the data directory's expected-file presence.
func (s *Service) Health(ctx context.Context) parser.Health {
	return s.parser.Health()
}

// AvailableDiseases lists hazard classifications present on disk.
func (s *Service) AvailableDiseases(ctx context.Context) []string {
	return s.parser.AvailableDiseases()
}

func (s *Service) parse(ctx context.Context, dataType string) parser.BatchResult {
	switch dataType {
	case domain.DataTypeSignal:
		return s.parser.SignalEvents(ctx)
	case domain.DataTypeReadinessSummary:
		return s.parser.ReadinessSummaries(ctx)
	case domain.DataTypeReadinessCategory:
		return s.parser.ReadinessCategories(ctx)
	default:
		return s.parser.ParseAll(ctx)
	}
}

func filter(events []domain.Event, opts QueryOpts) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if opts.Country != "" && !strings.EqualFold(e.Country, opts.Country) {
			continue
		}
		if opts.Disease != "" && !strings.Contains(strings.ToLower(e.Disease), strings.ToLower(opts.Disease)) {
			continue
		}
		if opts.EventType != "" && !strings.EqualFold(e.EventType, opts.EventType) {
			continue
		}
		if opts.Grade != "" && !strings.Contains(strings.ToLower(e.Grade), strings.ToLower(opts.Grade)) {
			continue
		}
		if opts.Status != "" && !strings.EqualFold(e.Status, opts.Status) {
			continue
		}
		if opts.Source != "" && !strings.EqualFold(e.Source, opts.Source) {
			continue
		}
		if opts.Category != "" && !strings.Contains(strings.ToLower(e.Category), strings.ToLower(opts.Category)) {
			continue
		}
		if opts.IsSubnational != nil && e.IsSubnational != *opts.IsSubnational {
			continue
		}
		out = append(out, e)
	}
	return out
}

func buildMetadata(events []domain.Event, files []parser.FileResult) Metadata {
	meta := Metadata{
		Total:         len(events),
		CountsByType:  make(map[string]int),
		CountsByEvent: make(map[string]int),
		Files:         files,
	}

	countries := make(map[string]bool)
	diseases := make(map[string]bool)
	categories := make(map[string]bool)
	for _, e := range events {
		meta.CountsByType[e.DataType]++
		if e.EventType != "" {
			meta.CountsByEvent[e.EventType]++
		}
		if e.Country != "" {
			countries[e.Country] = true
		}
		if e.Disease != "" {
			diseases[e.Disease] = true
		}
		if e.Category != "" {
			categories[e.Category] = true
		}
	}

	meta.Countries = sortedKeys(countries)
	meta.Diseases = sortedKeys(diseases)
	meta.Categories = sortedKeys(categories)
	return meta
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
