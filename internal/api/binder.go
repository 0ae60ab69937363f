package api

import "github.com/labstack/echo/v4"

// Binder binds and validates in one step so handlers never see an
// unvalidated payload.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return err
	}
	return c.Validate(i)
}
