package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsUseRoutePattern(t *testing.T) {
	m := NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/products/{barcode}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, code := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/products/"+code, nil))
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/products/{barcode}", "4xx"))
	if got != 3 {
		t.Errorf("expected 3 requests under the route pattern, got %v", got)
	}
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	m := NewMetrics()
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/x", nil))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(w.Body.String(), `http_requests_total{endpoint="unmatched",method="GET",status="2xx"} 1`) {
		t.Errorf("expected request counter in exposition, got:\n%s", w.Body.String())
	}
}

func TestClassifyStatus(t *testing.T) {
	cases := map[int]string{200: "2xx", 201: "2xx", 404: "4xx", 503: "5xx", 42: "unknown"}
	for code, want := range cases {
		if got := classifyStatus(code); got != want {
			t.Errorf("classifyStatus(%d) = %q, want %q", code, got, want)
		}
	}
}
