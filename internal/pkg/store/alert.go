package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

var alertColumns = []string{
	"id", "title", "description", "category", "status", "severity",
	"country", "region", "date", "last_updated_date",
}

type ListAlertsOpts struct {
	Status   *string
	Severity *string
	Category *string
	Country  *string
}

func (s *store) CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error) {
	query := builder().Insert(tableAlerts).
		Columns("title", "description", "category", "status", "severity", "country", "region", "date", "last_updated_date").
		Values(
			alert.Title, alert.Description, alert.Category, alert.Status,
			alert.Severity, alert.Country, alert.Region, alert.Date, alert.LastUpdatedDate,
		).
		Suffix("returning " + joinColumns(alertColumns))

	var created domain.Alert
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, fmt.Errorf("create alert: %w", wrapErr(err))
	}

	return &created, nil
}

func (s *store) GetAlert(ctx context.Context, id int64) (*domain.Alert, error) {
	query := builder().
		Select(alertColumns...).
		From(tableAlerts).
		Where(sq.Eq{"id": id})

	var selected domain.Alert
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListAlerts(ctx context.Context, opts ListAlertsOpts) ([]*domain.Alert, error) {
	query := builder().
		Select(alertColumns...).
		From(tableAlerts).
		OrderBy("date desc, id desc")

	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}
	if opts.Severity != nil {
		query = query.Where(sq.Eq{"severity": *opts.Severity})
	}
	if opts.Category != nil {
		query = query.Where(sq.Eq{"category": *opts.Category})
	}
	if opts.Country != nil {
		query = query.Where("lower(country) = lower(?)", *opts.Country)
	}

	var selected []*domain.Alert
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SetAlertStatus(ctx context.Context, id int64, status string) error {
	query := builder().Update(tableAlerts).
		Set("status", status).
		Set("last_updated_date", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return fmt.Errorf("set alert %d status: %w", id, wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, col := range columns {
		if i > 0 {
			out += ", "
		}
		out += col
	}
	return out
}
