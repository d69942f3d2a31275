package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/services/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller id asserted by the upstream identity provider
const UserIDHeader = "X-User-ID"

var errMissingIdentity = errors.New("missing " + UserIDHeader + " header")

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if userID := helpers.UserID(c); userID != "" {
		fields["user_id"] = userID
	}
	utils.Info("HTTP Request", fields)
}

// IdentityMiddleware trusts the upstream identity header and rejects
// requests without one.
func IdentityMiddleware(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "unauthenticated")
		c.Abort()
		return
	}
	c.Set(helpers.UserIDKey, userID)
	c.Next()
}
