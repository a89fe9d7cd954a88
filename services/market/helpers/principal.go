package helpers

import (
	"github.com/gin-gonic/gin"

	"grain-market/internal/auth"
)

const principalKey = "principal"

// SetPrincipal stores the authenticated principal on the request context
func SetPrincipal(c *gin.Context, principal auth.Principal) {
	c.Set(principalKey, principal)
}

// CurrentPrincipal returns the principal set by the auth middleware
func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}
