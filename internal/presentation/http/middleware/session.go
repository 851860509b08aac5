package middleware

import (
	"net/http"
	"strings"

	"github.com/ModelHouseContracting/modelhouse-go/internal/domain/entities/admin"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/security"
	"github.com/gin-gonic/gin"
)

const (
	// AdminSessionHeader carries the admin session id.
	AdminSessionHeader = "X-Admin-Session"
	// AdminSessionCookie carries the admin session id for browser clients.
	AdminSessionCookie = "admin_session"
	// RequestIDHeader carries the per-request id.
	RequestIDHeader = "X-Request-ID"

	adminSessionKey = "adminSession"
	requestIDKey    = "requestId"
)

// SessionLookup finds a live admin session.
type SessionLookup interface {
	Session(id string) (*admin.Session, error)
}

// SessionID extracts the admin session id from the header or cookie.
func SessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(AdminSessionHeader)); id != "" {
		return id
	}
	id, _ := c.Cookie(AdminSessionCookie)
	return id
}

// AdminSessionMiddleware rejects requests without a live admin session and
// stores the session on the context.
func AdminSessionMiddleware(lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := lookup.Session(SessionID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
			return
		}
		c.Set(adminSessionKey, session)
		c.Next()
	}
}

// GetAdminSession returns the session stored by AdminSessionMiddleware.
func GetAdminSession(c *gin.Context) (*admin.Session, bool) {
	v, ok := c.Get(adminSessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*admin.Session)
	return session, ok
}

// RequestIDMiddleware tags each request with a ULID, reusing a well-formed
// incoming X-Request-ID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = security.GenerateULID()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestIDMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// BearerAuthMiddleware requires Authorization: Bearer token on requests. An
// empty token disables the check.
func BearerAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		provided, found := strings.CutPrefix(header, "Bearer ")
		if !found || !security.ComparePassword(token, strings.TrimSpace(provided)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing bearer token"})
			return
		}
		c.Next()
	}
}
