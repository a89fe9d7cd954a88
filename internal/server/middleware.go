package server

import (
	"net/http"
	"strings"
	"time"

	"grain-market/internal/auth"
	"grain-market/internal/markerrors"
	"grain-market/services/market/helpers"
	"grain-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthMiddleware gates routes on a validated bearer token and the
// role/accreditation carried in its claims
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware creates an AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Authorization header and stores the
// resulting principal on the request context
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		utils.JSONError(c, http.StatusUnauthorized, markerrors.ErrInvalidToken, "could not validate credentials")
		c.Abort()
		return
	}

	principal, err := m.tokens.Verify(token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, markerrors.ErrInvalidToken, "could not validate credentials")
		c.Abort()
		return
	}

	helpers.SetPrincipal(c, principal)
	c.Next()
}

// RequireAdmin rejects principals without the admin role. Must run
// after Authenticate.
func (m *AuthMiddleware) RequireAdmin(c *gin.Context) {
	principal, ok := helpers.CurrentPrincipal(c)
	if !ok || !principal.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, markerrors.ErrNotAdmin, "not enough permissions")
		c.Abort()
		return
	}
	c.Next()
}

// RequireApprovedBuyer rejects principals whose accreditation is not
// approved. Must run after Authenticate.
func (m *AuthMiddleware) RequireApprovedBuyer(c *gin.Context) {
	principal, ok := helpers.CurrentPrincipal(c)
	if !ok || !principal.IsApprovedBuyer() {
		utils.JSONError(c, http.StatusForbidden, markerrors.ErrNotAccredited, "accreditation not approved")
		c.Abort()
		return
	}
	c.Next()
}
