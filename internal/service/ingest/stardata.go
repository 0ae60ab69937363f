package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

// starFields is the canonical column set of a STAR registry export,
// after parser.NormalizeStarColumn ("_N" → "n").
var starFields = []string{
	"n", "country", "level", "year", "start_date", "end_date",
	"subgroup_of_hazards", "main_type_of_hazard", "hazard",
	"health_consequences", "scale", "geographical_area", "exposure",
	"frequency", "seasonality",
	"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
	"likelihood", "severity", "vulnerability", "vulnerability_details",
	"coping_capacity", "coping_capacity_details", "governance_and_resouces",
	"health_sector_capacity", "non_health_sector_capcity", "commuty_capacity",
	"resources", "impact", "confidence_level", "risk_level",
	"risk_level_number", "status",
}

func (s *Service) ingestStar(ctx context.Context, cfg DomainConfig, r io.Reader) (int, error) {
	table, err := parser.ExtractCSV(r, starFields, parser.NormalizeStarColumn)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", cfg.Name, err)
	}

	saved := 0
	for _, raw := range table.Rows {
		row := &domain.StarRow{
			KeyOnTable: parser.UniqueKey(cfg.Key, raw.Index),

			N:                      raw.Int("n"),
			Country:                raw.Str("country"),
			Level:                  raw.Str("level"),
			Year:                   raw.Str("year"),
			StartDate:              raw.Str("start_date"),
			EndDate:                raw.Str("end_date"),
			SubgroupOfHazards:      raw.Str("subgroup_of_hazards"),
			MainTypeOfHazard:       raw.Str("main_type_of_hazard"),
			Hazard:                 raw.Str("hazard"),
			HealthConsequences:     raw.Str("health_consequences"),
			Scale:                  raw.Str("scale"),
			GeographicalArea:       raw.Str("geographical_area"),
			Exposure:               raw.Str("exposure"),
			Frequency:              raw.Str("frequency"),
			Seasonality:            raw.Str("seasonality"),
			Jan:                    raw.Str("jan"),
			Feb:                    raw.Str("feb"),
			Mar:                    raw.Str("mar"),
			Apr:                    raw.Str("apr"),
			May:                    raw.Str("may"),
			Jun:                    raw.Str("jun"),
			Jul:                    raw.Str("jul"),
			Aug:                    raw.Str("aug"),
			Sep:                    raw.Str("sep"),
			Oct:                    raw.Str("oct"),
			Nov:                    raw.Str("nov"),
			Dec:                    raw.Str("dec"),
			Likelihood:             raw.Str("likelihood"),
			Severity:               raw.Str("severity"),
			Vulnerability:          raw.Str("vulnerability"),
			VulnerabilityDetails:   raw.Str("vulnerability_details"),
			CopingCapacity:         raw.Str("coping_capacity"),
			CopingCapacityDetails:  raw.Str("coping_capacity_details"),
			GovernanceAndResouces:  raw.Str("governance_and_resouces"),
			HealthSectorCapacity:   raw.Str("health_sector_capacity"),
			NonHealthSectorCapcity: raw.Str("non_health_sector_capcity"),
			CommutyCapacity:        raw.Str("commuty_capacity"),
			Resources:              raw.Str("resources"),
			Impact:                 raw.Str("impact"),
			ConfidenceLevel:        raw.Str("confidence_level"),
			RiskLevel:              raw.Str("risk_level"),
			RiskLevelNumber:        raw.Str("risk_level_number"),
			Status:                 raw.Str("status"),
		}

		if err := s.store.UpsertStarRow(ctx, row); err != nil {
			return saved, fmt.Errorf("row %d: %w", raw.Index, err)
		}
		saved++
	}

	logger.Infof(ctx, "ingested %d star rows", saved)
	return saved, nil
}
