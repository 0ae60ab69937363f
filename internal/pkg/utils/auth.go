package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"

	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

// AuthTokenWrapper is the claim payload carried inside the auth cookie.
type AuthTokenWrapper struct {
	UserID int64  `json:"user_id"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.ExpiresAt = time.Now().Add(24 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	_, err := jwt.ParseWithClaims(raw, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}

// GenerateRefreshToken returns an opaque 64-char token.
func GenerateRefreshToken() string {
	return random.String(64, random.Hex)
}
