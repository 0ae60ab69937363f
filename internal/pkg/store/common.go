package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

const (
	tableReadinessRows = "readiness_rows"
	tableStarRows      = "star_rows"
	tableSheets        = "espar_sheets"
	tableEspar         = "espar_rows"
	tableIndicators    = "espar_indicators"
	tableCHWCountries  = "chw_countries"
	tableCHWRegions    = "chw_regions"
	tableCHWDistricts  = "chw_districts"
	tableAlerts        = "alerts"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
