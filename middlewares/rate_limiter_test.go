package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func hitOnce(r *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestStrictRateLimiterBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", NewStrictRateLimiter(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Burst 5 percobaan per IP, setelah itu 429
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hitOnce(r), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(r))
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/login", NewRateLimiter(3, 1).RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hitOnce(r), "attempt %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hitOnce(r))
}
