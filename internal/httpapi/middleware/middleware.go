package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/singhsaravjit/portfolio-assistant/internal/auth"
	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/observability"
)

const (
	RequestIDHeader = "X-Request-ID"
	AdminSubjectKey = "admin_subject"
)

// Recovery turns panics into the standard error envelope instead of a
// dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				observability.LoggerFromContext(c.Request.Context()).
					Error("panic recovered", "panic", r, "path", c.Request.URL.Path)
				common.Fail(c, http.StatusInternalServerError, 50000, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RequestID assigns (or propagates) a request ID and threads it
// through the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(
			observability.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AuthRequired guards admin routes with a bearer JWT.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
			c.Abort()
			return
		}
		subject, err := auth.ParseJWT(token, secret)
		if err != nil {
			common.Fail(c, http.StatusUnauthorized, 40102, "invalid token")
			c.Abort()
			return
		}
		c.Set(AdminSubjectKey, subject)
		c.Next()
	}
}
