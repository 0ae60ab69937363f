package store

import (
	"context"
	"fmt"

	"github.com/caminohealth/camino-backend/internal/domain"
)

var (
	chwCountryColumns = []string{
		"country_id", "country", "population_2024", "total_chws",
		"chws_per_10000", "total_regions", "total_districts",
		"data_year", "last_updated",
	}
	chwRegionColumns = []string{
		"region_id", "country_id", "region_name", "district_count",
		"region_number", "province",
	}
	chwDistrictColumns = []string{
		"district_id", "region_id", "country_id", "district_name",
		"chw_count", "population_est", "chws_per_10k",
	}
)

func (s *store) UpsertCHWCountry(ctx context.Context, country *domain.CHWCountry) error {
	query := builder().Insert(tableCHWCountries).
		Columns(chwCountryColumns...).
		Values(
			country.CountryID, country.Country, country.Population2024, country.TotalCHWs,
			country.CHWsPer10000, country.TotalRegions, country.TotalDistricts,
			country.DataYear, country.LastUpdated,
		).
		Suffix(`
on conflict (country_id)
do update
set ` + updateSetClause(chwCountryColumns[1:]) + `,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert chw country %d: %w", country.CountryID, wrapErr(err))
	}

	return nil
}

func (s *store) UpsertCHWRegion(ctx context.Context, region *domain.CHWRegion) error {
	query := builder().Insert(tableCHWRegions).
		Columns(chwRegionColumns...).
		Values(
			region.RegionID, region.CountryID, region.RegionName,
			region.DistrictCount, region.RegionNumber, region.Province,
		).
		Suffix(`
on conflict (region_id)
do update
set ` + updateSetClause(chwRegionColumns[1:]) + `,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert chw region %d: %w", region.RegionID, wrapErr(err))
	}

	return nil
}

func (s *store) UpsertCHWDistrict(ctx context.Context, district *domain.CHWDistrict) error {
	query := builder().Insert(tableCHWDistricts).
		Columns(chwDistrictColumns...).
		Values(
			district.DistrictID, district.RegionID, district.CountryID,
			district.DistrictName, district.CHWCount, district.PopulationEst,
			district.CHWsPer10K,
		).
		Suffix(`
on conflict (district_id)
do update
set ` + updateSetClause(chwDistrictColumns[1:]) + `,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("upsert chw district %d: %w", district.DistrictID, wrapErr(err))
	}

	return nil
}

func (s *store) ListCHWCountries(ctx context.Context) ([]*domain.CHWCountry, error) {
	query := builder().
		Select(append(chwCountryColumns, "created_at", "updated_at")...).
		From(tableCHWCountries).
		OrderBy("country_id")

	var selected []*domain.CHWCountry
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListCHWRegions(ctx context.Context) ([]*domain.CHWRegion, error) {
	query := builder().
		Select(append(chwRegionColumns, "created_at", "updated_at")...).
		From(tableCHWRegions).
		OrderBy("region_id")

	var selected []*domain.CHWRegion
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListCHWDistricts(ctx context.Context) ([]*domain.CHWDistrict, error) {
	query := builder().
		Select(append(chwDistrictColumns, "created_at", "updated_at")...).
		From(tableCHWDistricts).
		OrderBy("district_id")

	var selected []*domain.CHWDistrict
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
