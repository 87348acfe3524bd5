package middleware

import (
	"crypto/subtle"
	"net/http"

	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/pkg/config"
	"auction-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errAdminTokenInvalid = errs.New("invalid admin token")

// AdminAuthMiddleware guards the lifecycle management endpoints with a
// shared static token.
type AdminAuthMiddleware struct {
	cfg config.AdminConfig
}

func NewAdminAuthMiddleware(cfg config.AdminConfig) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{cfg: cfg}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.cfg.APIToken)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminTokenInvalid, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}
