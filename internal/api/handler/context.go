package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/workpulse-api/internal/api/middleware"
	"github.com/workpulse/workpulse-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing role proves
// the middleware never ran, and an identity with neither email nor id is
// operationally unusable even when the token was structurally valid.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(middleware.CtxUserID).(string)
	email, _ := c.Get(middleware.CtxEmail).(string)
	if id == "" && email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	return domain.Identity{ID: id, Role: role, Email: email}, nil
}
