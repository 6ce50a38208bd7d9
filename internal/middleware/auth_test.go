package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chainpay/gateway/internal/middleware"
	"github.com/chainpay/gateway/internal/models"
	"github.com/chainpay/gateway/internal/service"
	"github.com/chainpay/gateway/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func router(auth middleware.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.APIKeyAuth(auth))
	r.GET("/protected", func(c *gin.Context) {
		key, ok := middleware.KeyFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no key in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"merchant_id": key.MerchantID})
	})
	return r
}

func TestAPIKeyAuth_MissingHeader(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	r := router(service.NewAuthService(mockRepo))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRepo.AssertNotCalled(t, "GetBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	r := router(service.NewAuthService(mockRepo))

	empty := []models.APIKey{}
	mockRepo.EXPECT().
		GetBy(mock.Anything, "key = ? AND active = ?", "pk_bogus", true).
		Return(&empty, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.APIKeyHeader, "pk_bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	mockRepo := mocks.NewMockKeyRepo(t)
	r := router(service.NewAuthService(mockRepo))

	records := []models.APIKey{{
		Key:        "pk_abc123",
		MerchantID: "merchant-123",
		Active:     true,
	}}
	mockRepo.EXPECT().
		GetBy(mock.Anything, "key = ? AND active = ?", "pk_abc123", true).
		Return(&records, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(middleware.APIKeyHeader, "pk_abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "merchant-123")
}
