package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func rateLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, requestsPerMin)
	r := gin.New()
	r.POST("/generate", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitGenerate(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitRejectsOverBudget(t *testing.T) {
	// 10/min gives a burst of 1: the second immediate request from the
	// same client must be rejected.
	r := rateLimitedRouter(10)

	if code := hitGenerate(r, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := hitGenerate(r, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := rateLimitedRouter(10)

	if code := hitGenerate(r, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first client status = %d, want 200", code)
	}
	if code := hitGenerate(r, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("first client not throttled: %d", code)
	}
	if code := hitGenerate(r, "10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("second client status = %d, want 200 despite first being throttled", code)
	}
}

func TestRateLimitUsesForwardedFor(t *testing.T) {
	r := rateLimitedRouter(10)

	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}

	// Same forwarded client behind a different proxy address shares
	// the budget.
	req2 := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req2.RemoteAddr = "10.0.0.9:6000"
	req2.Header.Set("X-Forwarded-For", "203.0.113.7")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("forwarded client status = %d, want 429", w2.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := rateLimitedRouter(0)

	for i := 0; i < 5; i++ {
		if code := hitGenerate(r, "10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200 with limiter disabled", i+1, code)
		}
	}
}
