package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/chainpay/gateway/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// APIKeyHeader carries the merchant credential on authenticated routes.
	APIKeyHeader = "X-API-Key"
	// ContextKey is where the resolved key record lives in the gin context.
	ContextKey = "apiKey"
)

// AuthService resolves an opaque API key to its active record.
type AuthService interface {
	Lookup(ctx context.Context, apiKey string) (*models.APIKey, error)
}

// APIKeyAuth rejects requests without a valid active API key and injects the
// resolved record into the request context for downstream handlers.
func APIKeyAuth(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
			return
		}

		record, err := auth.Lookup(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				return
			}
			logrus.Errorf("API key lookup failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(ContextKey, record)
		c.Next()
	}
}

// KeyFromContext returns the API key record injected by APIKeyAuth.
func KeyFromContext(c *gin.Context) (*models.APIKey, bool) {
	value, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	record, ok := value.(*models.APIKey)
	return record, ok
}
