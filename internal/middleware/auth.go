package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopscout/catalog-service/pkg/auth"
	"github.com/shopscout/catalog-service/pkg/errs"
	"github.com/shopscout/catalog-service/pkg/response"
)

// UserIDContextKey is where the verified user id is stashed for handlers.
const UserIDContextKey = "userID"

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid "Bearer <token>" Authorization
// header and binds the token's user id to the request context.
func Auth(tokens auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(UserIDContextKey, userID)

			return next(c)
		}
	}
}
