package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows requests within burst", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 3)
		defer rl.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("192.168.1.1"))
		}
		assert.False(t, rl.Allow("192.168.1.1"))
	})

	t.Run("different clients have separate limits", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1)
		defer rl.Stop()

		assert.True(t, rl.Allow("192.168.1.3"))
		assert.False(t, rl.Allow("192.168.1.3"))
		assert.True(t, rl.Allow("192.168.1.4"))
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.Allow("10.0.0.1")
	rl.cleanup(time.Now().Add(clientIdleThreshold + time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestRouter(t, 0.001, 2)

	var codes []int
	for i := 0; i < 3; i++ {
		w := postJSON(router, "/lease/calculate", zeroDownBody)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/lease/manufacturers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
