package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/caminohealth/camino-backend/internal/domain"
	"github.com/caminohealth/camino-backend/internal/pkg/constants"
	"github.com/caminohealth/camino-backend/internal/pkg/utils"
)

type createSessionRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// CreateSession exchanges the configured operator secret for the
// signed cookies the protected endpoints check, plus an opaque refresh
// token the client presents to renew the session.
func (c *Controller) CreateSession(ctx echo.Context) error {
	req := new(createSessionRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	if req.Secret != viper.GetString(constants.ViperSecretKey) {
		return constants.ErrUnauthorized
	}

	signed, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		UserID: 1,
		Secret: req.Secret,
	})
	if err != nil {
		return err
	}

	expires := time.Now().Add(24 * time.Hour)
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	})
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	})
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyRefreshToken,
		Value:    utils.GenerateRefreshToken(),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	})

	return ctx.JSON(http.StatusOK, domain.StatusResponse{Status: "ok"})
}
