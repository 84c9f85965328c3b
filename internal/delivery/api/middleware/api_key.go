package middleware

import (
	"crypto/subtle"

	"muslimapp/config"
	"muslimapp/internal/domain/constants"
	domainerrors "muslimapp/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// APIKeyMiddleware rejects requests without a configured x-api-key.
type APIKeyMiddleware struct {
	keys [][]byte
}

// NewAPIKeyMiddleware is the constructor for APIKeyMiddleware.
func NewAPIKeyMiddleware(cfg *config.Config) *APIKeyMiddleware {
	keys := make([][]byte, 0, len(cfg.HTTP.APIKeys))
	for _, key := range cfg.HTTP.APIKeys {
		if key != "" {
			keys = append(keys, []byte(key))
		}
	}

	return &APIKeyMiddleware{keys: keys}
}

// Enabled reports whether at least one key is configured.
func (m *APIKeyMiddleware) Enabled() bool {
	return len(m.keys) > 0
}

// Authenticate checks the x-api-key header. With no key configured every request passes.
func (m *APIKeyMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.Enabled() {
			return next(c)
		}

		presented := []byte(c.Request().Header.Get(constants.HeaderAPIKey))
		if len(presented) == 0 {
			return domainerrors.ErrUnauthorized
		}

		// Compare against every key so the response time does not reveal which matched.
		matched := 0
		for _, key := range m.keys {
			matched |= subtle.ConstantTimeCompare(presented, key)
		}
		if matched != 1 {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
