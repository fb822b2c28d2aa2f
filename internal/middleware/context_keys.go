package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// principalKey is the key used to store the authenticated principal in the
// request context.
const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal from the Gin
// context. It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	if !ok || principal.IsZero() {
		return domain.Principal{}, false
	}
	return principal, true
}
