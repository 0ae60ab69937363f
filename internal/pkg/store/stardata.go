package store

import (
	"context"
	"fmt"

	"github.com/caminohealth/camino-backend/internal/domain"
)

var starColumns = []string{
	"key_on_table",
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

type ListStarRowsOpts struct {
	Country    *string
	Hazard     *string
	HazardType *string
	Severity   *string
	Status     *string
}

func (s *store) UpsertStarRow(ctx context.Context, row *domain.StarRow) error {
	query := builder().Insert(tableStarRows).
		Columns(starColumns...).
		Values(
			row.KeyOnTable,
			row.N, row.Country, row.Level, row.Year, row.StartDate, row.EndDate,
			row.SubgroupOfHazards, row.MainTypeOfHazard, row.Hazard,
			row.HealthConsequences, row.Scale, row.GeographicalArea, row.Exposure,
			row.Frequency, row.Seasonality,
			row.Jan, row.Feb, row.Mar, row.Apr, row.May, row.Jun,
			row.Jul, row.Aug, row.Sep, row.Oct, row.Nov, row.Dec,
			row.Likelihood, row.Severity, row.Vulnerability, row.VulnerabilityDetails,
			row.CopingCapacity, row.CopingCapacityDetails, row.GovernanceAndResouces,
			row.HealthSectorCapacity, row.NonHealthSectorCapcity, row.CommutyCapacity,
			row.Resources, row.Impact, row.ConfidenceLevel, row.RiskLevel,
			row.RiskLevelNumber, row.Status,
		).
		Suffix(`
on conflict (key_on_table)
do update
set ` + updateSetClause(starColumns[1:]) + `,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert star row %s: %w", row.KeyOnTable, wrapErr(err))
	}

	return nil
}

func (s *store) ListStarRows(ctx context.Context, opts ListStarRowsOpts) ([]*domain.StarRow, error) {
	query := builder().
		Select(append([]string{"id"}, append(starColumns, "created_at", "updated_at")...)...).
		From(tableStarRows).
		OrderBy("id")

	if opts.Country != nil {
		query = query.Where("trim(country) = ?", *opts.Country)
	}
	if opts.Hazard != nil {
		query = query.Where("trim(hazard) = ?", *opts.Hazard)
	}
	if opts.HazardType != nil {
		query = query.Where("trim(main_type_of_hazard) = ?", *opts.HazardType)
	}
	if opts.Severity != nil {
		query = query.Where("trim(severity) = ?", *opts.Severity)
	}
	if opts.Status != nil {
		query = query.Where("trim(status) = ?", *opts.Status)
	}

	var selected []*domain.StarRow
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
