package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/constants"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type fakeStore struct {
	store.Store

	nextID int64
	alerts map[int64]*domain.Alert
}

func newFakeStore() *fakeStore {
	return &fakeStore{alerts: make(map[int64]*domain.Alert)}
}

func (f *fakeStore) CreateAlert(_ context.Context, alert *domain.Alert) (*domain.Alert, error) {
	f.nextID++
	copied := *alert
	copied.ID = f.nextID
	f.alerts[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (f *fakeStore) GetAlert(_ context.Context, id int64) (*domain.Alert, error) {
	alert, ok := f.alerts[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	copied := *alert
	return &copied, nil
}

func (f *fakeStore) ListAlerts(_ context.Context, opts store.ListAlertsOpts) ([]*domain.Alert, error) {
	out := make([]*domain.Alert, 0, len(f.alerts))
	for _, alert := range f.alerts {
		if opts.Status != nil && alert.Status != *opts.Status {
			continue
		}
		copied := *alert
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStore) SetAlertStatus(_ context.Context, id int64, status string) error {
	alert, ok := f.alerts[id]
	if !ok {
		return constants.ErrDBNotFound
	}
	alert.Status = status
	return nil
}

func testService(fs *fakeStore) *Service {
	svc := NewAlertsService(fs)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate(t *testing.T) {
	svc := testService(newFakeStore())

	alert, err := svc.Create(context.Background(), CreateOpts{
		Title:    "Cholera outbreak",
		Category: domain.AlertCategoryDiseaseOutbreak,
		Severity: domain.AlertSeverityHigh,
		Country:  "Kenya",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), alert.ID)
	assert.Equal(t, domain.AlertStatusActive, alert.Status)
	assert.Equal(t, alert.Date, alert.LastUpdatedDate)
}

func TestLifecycle(t *testing.T) {
	fs := newFakeStore()
	svc := testService(fs)

	created, err := svc.Create(context.Background(), CreateOpts{
		Title:    "Flood warning",
		Category: domain.AlertCategoryNaturalDisaster,
		Severity: domain.AlertSeverityCritical,
		Country:  "Mozambique",
	})
	require.NoError(t, err)

	acked, err := svc.Acknowledge(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusAcknowledged, acked.Status)

	// Acknowledging again is a no-op, not an error.
	acked, err = svc.Acknowledge(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusAcknowledged, acked.Status)

	resolved, err := svc.Resolve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusResolved, resolved.Status)

	// A resolved alert never transitions back.
	acked, err = svc.Acknowledge(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusResolved, acked.Status)
}

func TestResolveFromActive(t *testing.T) {
	svc := testService(newFakeStore())

	created, err := svc.Create(context.Background(), CreateOpts{
		Title:    "Supply shortage",
		Category: domain.AlertCategoryResourceShortage,
		Severity: domain.AlertSeverityMedium,
		Country:  "Uganda",
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusResolved, resolved.Status)
}

func TestTransitionUnknownAlert(t *testing.T) {
	svc := testService(newFakeStore())
	_, err := svc.Acknowledge(context.Background(), 42)
	assert.Error(t, err)
}
