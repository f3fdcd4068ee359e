package ops

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Leganyst/homeservice-platform/internal/logging"
	"github.com/Leganyst/homeservice-platform/internal/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestHealth(t *testing.T) {
	m := metrics.New()
	ok := NewRouter(pingFunc(func(context.Context) error { return nil }), m.Handler(), logging.Discard())

	code, body := get(t, ok, "/health")
	if code != http.StatusOK {
		t.Fatalf("health: code = %d, want 200", code)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("health: unexpected body %s", body)
	}

	down := NewRouter(pingFunc(func(context.Context) error { return errors.New("refused") }), m.Handler(), logging.Discard())
	code, body = get(t, down, "/health")
	if code != http.StatusServiceUnavailable {
		t.Fatalf("health: code = %d, want 503", code)
	}
	if !strings.Contains(body, `"database":"unavailable"`) {
		t.Fatalf("health: unexpected body %s", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.ObserveOperation("accept", "ok")
	r := NewRouter(pingFunc(func(context.Context) error { return nil }), m.Handler(), logging.Discard())

	code, body := get(t, r, "/metrics")
	if code != http.StatusOK {
		t.Fatalf("metrics: code = %d, want 200", code)
	}
	if !strings.Contains(body, `marketplace_lifecycle_operations_total{operation="accept",outcome="ok"} 1`) {
		t.Fatalf("metrics: counter missing in output:\n%s", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := NewRouter(pingFunc(func(context.Context) error { return nil }), metrics.New().Handler(), logging.Discard())
	if code, _ := get(t, r, "/nope"); code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", code)
	}
}
