package store

import (
	"context"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	UpsertReadinessRow(ctx context.Context, row *domain.ReadinessRow) error
	ListReadinessRows(ctx context.Context, opts ListReadinessRowsOpts) ([]*domain.ReadinessRow, error)

	UpsertStarRow(ctx context.Context, row *domain.StarRow) error
	ListStarRows(ctx context.Context, opts ListStarRowsOpts) ([]*domain.StarRow, error)

	GetOrCreateSheet(ctx context.Context, name string) (*domain.Sheet, error)
	UpsertEspar(ctx context.Context, espar *domain.Espar) (*domain.Espar, error)
	UpsertIndicator(ctx context.Context, indicator *domain.Indicator) error
	ListEsparBySheet(ctx context.Context, sheetName string) ([]*domain.Espar, error)
	ListIndicatorsByEspar(ctx context.Context, esparIDs []int64) ([]*domain.Indicator, error)

	UpsertCHWCountry(ctx context.Context, country *domain.CHWCountry) error
	UpsertCHWRegion(ctx context.Context, region *domain.CHWRegion) error
	UpsertCHWDistrict(ctx context.Context, district *domain.CHWDistrict) error
	ListCHWCountries(ctx context.Context) ([]*domain.CHWCountry, error)
	ListCHWRegions(ctx context.Context) ([]*domain.CHWRegion, error)
	ListCHWDistricts(ctx context.Context) ([]*domain.CHWDistrict, error)

	CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error)
	GetAlert(ctx context.Context, id int64) (*domain.Alert, error)
	ListAlerts(ctx context.Context, opts ListAlertsOpts) ([]*domain.Alert, error)
	SetAlertStatus(ctx context.Context, id int64, status string) error

	ListExistingEvents(ctx context.Context) ([]domain.Event, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
