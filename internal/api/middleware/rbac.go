package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC restricts an endpoint to the given role labels. The token's role
// claim must be exactly present in the set; the match is a case-sensitive
// string comparison on the canonical labels, not an enum comparison.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
