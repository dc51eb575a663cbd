package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdesk/comdesk-api/internal/infrastructure/repository"
)

func newIdempotentRouter() (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	calls := 0
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("sales_person_code", "SP1")
	})
	router.Use(Idempotency(IdempotencyConfig{Repo: repository.NewMemoryIdempotencyRepository()}))
	router.POST("/generate", func(c *gin.Context) {
		calls++
		c.Header("Content-Type", "application/pdf")
		c.String(http.StatusOK, "%%PDF-run-%d", calls)
	})
	return router, &calls
}

func doPost(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	router, calls := newIdempotentRouter()

	first := doPost(router, "k-1")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, 1, *calls)

	second := doPost(router, "k-1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, *calls, "retry must not re-run the handler")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/pdf")
}

func TestIdempotencyDistinctKeysRunSeparately(t *testing.T) {
	router, calls := newIdempotentRouter()

	doPost(router, "k-1")
	doPost(router, "k-2")
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyNoKeyPassesThrough(t *testing.T) {
	router, calls := newIdempotentRouter()

	doPost(router, "")
	doPost(router, "")
	assert.Equal(t, 2, *calls)
}
