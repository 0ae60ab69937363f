package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/store"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewAlertsService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateOpts carries the caller-supplied alert fields; status and the
// timestamps are owned by the service.
type CreateOpts struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Severity    string `json:"severity" validate:"required,oneof=critical high medium low"`
	Country     string `json:"country" validate:"required"`
	Region      string `json:"region"`
}

func (s *Service) Create(ctx context.Context, opts CreateOpts) (*domain.Alert, error) {
	now := s.now()
	alert := &domain.Alert{
		Title:           opts.Title,
		Description:     opts.Description,
		Category:        opts.Category,
		Status:          domain.AlertStatusActive,
		Severity:        opts.Severity,
		Country:         opts.Country,
		Region:          opts.Region,
		Date:            now,
		LastUpdatedDate: now,
	}

	created, err := s.store.CreateAlert(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("store.CreateAlert: %w", err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Alert, error) {
	alert, err := s.store.GetAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetAlert: %w", err)
	}

	return alert, nil
}

func (s *Service) List(ctx context.Context, opts store.ListAlertsOpts) ([]*domain.Alert, error) {
	alerts, err := s.store.ListAlerts(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListAlerts: %w", err)
	}

	return alerts, nil
}

// Acknowledge moves an active alert to acknowledged. Acknowledging an
// alert that is already acknowledged or resolved is a no-op.
func (s *Service) Acknowledge(ctx context.Context, id int64) (*domain.Alert, error) {
	return s.transition(ctx, id, domain.AlertStatusAcknowledged)
}

// Resolve moves an alert to resolved from either earlier state;
// resolving a resolved alert is a no-op.
func (s *Service) Resolve(ctx context.Context, id int64) (*domain.Alert, error) {
	return s.transition(ctx, id, domain.AlertStatusResolved)
}

func (s *Service) transition(ctx context.Context, id int64, target string) (*domain.Alert, error) {
	alert, err := s.store.GetAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetAlert: %w", err)
	}

	if !shouldTransition(alert.Status, target) {
		return alert, nil
	}

	if err = s.store.SetAlertStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("store.SetAlertStatus: %w", err)
	}

	alert, err = s.store.GetAlert(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetAlert: %w", err)
	}

	return alert, nil
}

// shouldTransition enforces the one-way lifecycle: active →
// acknowledged → resolved.
func shouldTransition(current, target string) bool {
	switch target {
	case domain.AlertStatusAcknowledged:
		return current == domain.AlertStatusActive
	case domain.AlertStatusResolved:
		return current == domain.AlertStatusActive || current == domain.AlertStatusAcknowledged
	default:
		return false
	}
}
