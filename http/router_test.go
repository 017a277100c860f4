package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(limiter *RateLimiter) http.Handler {
	return NewRouter(RouterConfig{
		Handler:        newTestHandler(0),
		Limiter:        limiter,
		AllowedOrigins: []string{"*"},
		Log:            testLog,
	})
}

func postFrom(router http.Handler, remoteAddr string, headers map[string]string) int {
	req := httptest.NewRequest(http.MethodPost, "/compound-interests", bytes.NewBufferString(`{}`))
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRouter_Calculate(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/compound-interests", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestRouter_NegativePrincipal(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/compound-interests", bytes.NewBufferString(`{"principal":-1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/compound-interests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_NotFound(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/compound-interest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	router := newTestRouter(limiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/compound-interests", bytes.NewBufferString(`{}`))
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health checks are not limited.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ForwardingHeadersDoNotResetRateLimit(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	router := newTestRouter(limiter)

	codes := []int{
		postFrom(router, "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "1.1.1.1"}),
		postFrom(router, "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "2.2.2.2"}),
		postFrom(router, "10.0.0.1:1234", map[string]string{"X-Real-IP": "3.3.3.3"}),
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.clients, 1)
}

func TestRouter_TrustedProxyLimitsForwardedClients(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	router := NewRouter(RouterConfig{
		Handler:        newTestHandler(0),
		Limiter:        limiter,
		AllowedOrigins: []string{"*"},
		TrustProxy:     true,
		Log:            testLog,
	})

	proxy := "10.0.0.254:4000"
	assert.Equal(t, http.StatusOK, postFrom(router, proxy, map[string]string{"X-Forwarded-For": "1.1.1.1"}))
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, proxy, map[string]string{"X-Forwarded-For": "1.1.1.1"}))
	assert.Equal(t, http.StatusOK, postFrom(router, proxy, map[string]string{"X-Forwarded-For": "2.2.2.2"}))
}
