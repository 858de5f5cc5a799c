package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/erlanggafajar/nilai-ict/core/user"
)

// sessionMiddleware re-derives the caller's session from the verified token
// and refuses anonymous callers. Evaluated on every guarded request.
func sessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := contextSession(ctx)
			if err := sess.RequireAuthenticated(); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}

// adminMiddleware gates write actions to admin sessions.
func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := contextSession(ctx)
			if err := sess.RequireRole(user.RoleAdmin); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}
