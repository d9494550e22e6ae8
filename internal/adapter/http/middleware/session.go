package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rakshalokam/storefront-api/internal/session"
)

// Session lifts the browser's commerce credentials off the request and
// into the context, where the commerce gateway picks them up. The
// storefront distinguishes ops bearer tokens (handled by Authz) from
// commerce bearer tokens by route, not by inspection.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Session{
			Cookie: c.GetHeader("Cookie"),
		}
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			s.Bearer = strings.TrimPrefix(auth, "Bearer ")
		}
		c.Request = c.Request.WithContext(session.With(c.Request.Context(), s))
		c.Next()
	}
}
