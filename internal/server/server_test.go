package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barcode-scanner/internal/config"
	"barcode-scanner/internal/repository/memory"
	"barcode-scanner/internal/service"

	"go.uber.org/zap"
)

type stubDB struct{ closed bool }

func (s *stubDB) DB() *sql.DB { return nil }

func (s *stubDB) Health(ctx context.Context) (map[string]string, error) {
	return map[string]string{"status": "up"}, nil
}

func (s *stubDB) Close() error {
	s.closed = true
	return nil
}

func newTestServer(t *testing.T) (*Server, *stubDB) {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", Env: "test"},
		Catalog: config.CatalogConfig{DefaultExpiringDays: 7},
	}
	catalog := service.NewCatalogService(memory.NewProductRepository(), memory.NewBrandRepository(), zap.NewNop())
	db := &stubDB{}
	return New(cfg, zap.NewNop(), db, catalog), db
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/nope", "/api/unknown", "/api/products/1/unknown"} {
		w := get(srv, path)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: response is not JSON: %v", path, err)
		}
		if body["success"] != false || body["message"] != "Endpoint not found" {
			t.Errorf("%s: unexpected body %v", path, body)
		}
	}
}

func TestRoutesAreMountedUnderAPI(t *testing.T) {
	srv, _ := newTestServer(t)

	if w := get(srv, "/api/health"); w.Code != http.StatusOK {
		t.Errorf("expected health to be served, got %d", w.Code)
	}
	if w := get(srv, "/api/products"); w.Code != http.StatusOK {
		t.Errorf("expected products to be served, got %d", w.Code)
	}
	if w := get(srv, "/api/products/expired"); w.Code != http.StatusOK {
		t.Errorf("expected expired list to be served, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	get(srv, "/api/health")

	w := get(srv, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `endpoint="/api/health"`) {
		t.Errorf("expected health request to be recorded, got:\n%s", w.Body.String())
	}
}

func TestSwaggerDocIsServed(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(srv, "/swagger/doc.json")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/scan") {
		t.Errorf("expected swagger document, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/scan", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestCloseClosesDatabase(t *testing.T) {
	srv, db := newTestServer(t)
	if err := srv.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !db.closed {
		t.Error("expected the database to be closed")
	}
}
