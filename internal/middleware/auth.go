package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/planeta-guru/storefront-service/internal/identity"
	"github.com/planeta-guru/storefront-service/pkg/response"
)

const UserIDContextKey = "userID"

// Authenticated guards the session-gated route group. It only checks that a
// valid session exists; the bearer exchange happens in the context resolver.
func Authenticated(provider identity.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := provider.CurrentUserID(c.Request())
			if err != nil {
				log.Ctx(c.Request().Context()).Info().Err(err).Str("component", "Authenticated").Msg("rejected request")
				return response.WriteErrorResponse(c, err, nil)
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}
