package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/parser"
	"github.com/caminohealth/camino-backend/internal/pkg/logger"
)

const (
	chwCountrySheet  = "CHW Country"
	chwRegionSheet   = "CHW Region"
	chwDistrictSheet = "CHW District"
)

var (
	chwCountryFields = []string{
		"country_id", "country", "population_2024", "total_chws",
		"chws_per_10000", "total_regions", "total_districts",
		"data_year", "last_updated",
	}
	chwRegionFields = []string{
		"region_id", "country_id", "region_name", "district_count",
		"region_number", "province",
	}
	chwDistrictFields = []string{
		"district_id", "region_id", "country_id", "district_name",
		"chw_count", "population_est", "chws_per_10k",
	}
)

// The workbook writes its id headers as CamelCase without separators
// (CountryID, RegionID, DistrictID); every other header lowercases
// straight into the column vocabulary.
var chwHeaderAliases = map[string]string{
	"countryid":  "country_id",
	"regionid":   "region_id",
	"districtid": "district_id",
}

func normalizeCHWColumn(name string) string {
	lowered := strings.ToLower(parser.TrimColumn(name))
	if canonical, ok := chwHeaderAliases[lowered]; ok {
		return canonical
	}
	return lowered
}

// ingestCHW loads the three fixed sheets of a community-health-worker
// workbook. A sheet missing from the workbook is skipped, rows without
// their natural id are skipped; everything else upserts, so
// re-uploading a workbook is a refresh, not a duplicate.
func (s *Service) ingestCHW(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	saved := 0

	n, err := s.ingestCHWCountries(ctx, f)
	saved += n
	if err != nil {
		return saved, err
	}

	n, err = s.ingestCHWRegions(ctx, f)
	saved += n
	if err != nil {
		return saved, err
	}

	n, err = s.ingestCHWDistricts(ctx, f)
	saved += n
	if err != nil {
		return saved, err
	}

	logger.Infof(ctx, "ingested %d chw rows", saved)
	return saved, nil
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func (s *Service) ingestCHWCountries(ctx context.Context, f *excelize.File) (int, error) {
	if !hasSheet(f, chwCountrySheet) {
		return 0, nil
	}

	countries, err := parser.ExtractSheet(f, chwCountrySheet, chwCountryFields, normalizeCHWColumn, 0)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, raw := range countries.Rows {
		id := raw.Int("country_id")
		if id == nil {
			continue
		}
		country := &domain.CHWCountry{
			CountryID:      *id,
			Country:        raw.Str("country"),
			Population2024: raw.Int("population_2024"),
			TotalCHWs:      raw.Int("total_chws"),
			CHWsPer10000:   raw.Float("chws_per_10000"),
			TotalRegions:   raw.Int("total_regions"),
			TotalDistricts: raw.Int("total_districts"),
			DataYear:       raw.Int("data_year"),
			LastUpdated:    raw.Str("last_updated"),
		}
		if err := s.store.UpsertCHWCountry(ctx, country); err != nil {
			return saved, fmt.Errorf("country row %d: %w", raw.Index, err)
		}
		saved++
	}

	return saved, nil
}

func (s *Service) ingestCHWRegions(ctx context.Context, f *excelize.File) (int, error) {
	if !hasSheet(f, chwRegionSheet) {
		return 0, nil
	}

	regions, err := parser.ExtractSheet(f, chwRegionSheet, chwRegionFields, normalizeCHWColumn, 0)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, raw := range regions.Rows {
		id := raw.Int("region_id")
		if id == nil {
			continue
		}
		region := &domain.CHWRegion{
			RegionID:      *id,
			CountryID:     raw.Int("country_id"),
			RegionName:    raw.Str("region_name"),
			DistrictCount: raw.Int("district_count"),
			RegionNumber:  raw.Int("region_number"),
			Province:      raw.Str("province"),
		}
		if err := s.store.UpsertCHWRegion(ctx, region); err != nil {
			return saved, fmt.Errorf("region row %d: %w", raw.Index, err)
		}
		saved++
	}

	return saved, nil
}

func (s *Service) ingestCHWDistricts(ctx context.Context, f *excelize.File) (int, error) {
	if !hasSheet(f, chwDistrictSheet) {
		return 0, nil
	}

	districts, err := parser.ExtractSheet(f, chwDistrictSheet, chwDistrictFields, normalizeCHWColumn, 0)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, raw := range districts.Rows {
		id := raw.Int("district_id")
		if id == nil {
			continue
		}
		district := &domain.CHWDistrict{
			DistrictID:    *id,
			RegionID:      raw.Int("region_id"),
			CountryID:     raw.Int("country_id"),
			DistrictName:  raw.Str("district_name"),
			CHWCount:      raw.Int("chw_count"),
			PopulationEst: raw.Int("population_est"),
			CHWsPer10K:    raw.Float("chws_per_10k"),
		}
		if err := s.store.UpsertCHWDistrict(ctx, district); err != nil {
			return saved, fmt.Errorf("district row %d: %w", raw.Index, err)
		}
		saved++
	}

	return saved, nil
}
