package domain

import "time"

// CHWCountry is one row of the "CHW Country" workbook sheet.
type CHWCountry struct {
	CountryID      int64    `db:"country_id"`
	Country        *string  `db:"country"`
	Population2024 *int64   `db:"population_2024"`
	TotalCHWs      *int64   `db:"total_chws"`
	CHWsPer10000   *float64 `db:"chws_per_10000"`
	TotalRegions   *int64   `db:"total_regions"`
	TotalDistricts *int64   `db:"total_districts"`
	DataYear       *int64   `db:"data_year"`
	LastUpdated    *string  `db:"last_updated"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CHWRegion is one row of the "CHW Region" sheet.
type CHWRegion struct {
	RegionID      int64   `db:"region_id"`
	CountryID     *int64  `db:"country_id"`
	RegionName    *string `db:"region_name"`
	DistrictCount *int64  `db:"district_count"`
	RegionNumber  *int64  `db:"region_number"`
	Province      *string `db:"province"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CHWDistrict is one row of the "CHW District" sheet.
type CHWDistrict struct {
	DistrictID    int64    `db:"district_id"`
	RegionID      *int64   `db:"region_id"`
	CountryID     *int64   `db:"country_id"`
	DistrictName  *string  `db:"district_name"`
	CHWCount      *int64   `db:"chw_count"`
	PopulationEst *int64   `db:"population_est"`
	CHWsPer10K    *float64 `db:"chws_per_10k"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
