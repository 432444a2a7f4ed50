package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/biogate/internal/server/auth"
)

const claimsContextKey = "auth_claims"

// jwtAuth returns a middleware that verifies the Authorization bearer token
// and attaches the parsed claims to the request context. Requests without a
// valid token never reach the handler.
func (s *Server) jwtAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization header"})
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization header"})
			}

			claims, err := auth.GetClaimsFromToken(parts[1], s.jwtSecret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// getClaims extracts the claims attached by jwtAuth, or nil when the
// request was not authenticated.
func getClaims(c echo.Context) *auth.Claims {
	v := c.Get(claimsContextKey)
	if v == nil {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
