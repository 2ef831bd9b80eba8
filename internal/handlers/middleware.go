package handlers

import (
	"net/http"
	"strings"

	"building_directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	principalKey    = "principal"
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-Id"
)

// requestIDMiddleware assigns every request an id, echoed back in the
// response header and attached to error log lines.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// principalMiddleware authenticates the bearer token and stores the caller
// identity in the request-scoped gin context. Identity is never stored on
// the handler or services, so concurrent requests cannot leak callers.
func (h *Handler) principalMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	caller, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(principalKey, caller)
	c.Next()
}

// principal returns the authenticated caller stored by principalMiddleware.
func (h *Handler) principal(c *gin.Context) service.Identity {
	v, ok := c.Get(principalKey)
	if !ok {
		return service.Identity{}
	}
	caller, _ := v.(service.Identity)
	return caller
}
