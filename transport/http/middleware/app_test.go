package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/config"
	otelMocks "tourbook/infras/otel/mocks"
	"tourbook/shared/cache"
	cacheMocks "tourbook/shared/cache/mocks"
	"tourbook/shared/constant"
	"tourbook/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var noContent = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	key := cache.BuildCacheKey("limiter", "203.0.113.7", "curl/8")

	tests := []struct {
		name      string
		mock      func(c *cacheMocks.MockRedisCache)
		code      int
		remaining string
	}{
		{
			name: "first request",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(fmt.Errorf("get: %w", cache.Nil))
				c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			code:      http.StatusNoContent,
			remaining: "1",
		},
		{
			name: "over the limit",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_ any, _ string, value any) error {
					*(value.(*int)) = 2

					return nil
				})
			},
			code: http.StatusTooManyRequests,
		},
		{
			name: "cache down fails open",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
			},
			code: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.mock(redis)

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), redis)

			r := httptest.NewRequest(http.MethodGet, "/v1/excursiones", nil)
			r.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
			r.Header.Set(constant.RequestHeaderUserAgent, "curl/8")

			recorder := httptest.NewRecorder()
			mw.RateLimit()(noContent).ServeHTTP(recorder, r)

			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, tt.remaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, redis)

	recorder := httptest.NewRecorder()
	mw.RateLimit()(noContent).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		w.WriteHeader(http.StatusNoContent)
	}))

	generated := httptest.NewRecorder()
	handler.ServeHTTP(generated, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, generated.Header().Get(constant.RequestHeaderRequestID))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(constant.RequestHeaderRequestID, "req-42")

	propagated := httptest.NewRecorder()
	handler.ServeHTTP(propagated, r)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", propagated.Header().Get(constant.RequestHeaderRequestID))
}

func TestTracing_PassesThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	recorder := httptest.NewRecorder()
	mw.Tracing(noContent).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
