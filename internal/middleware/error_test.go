package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

// Property: every client error carries success=false and the message, nothing else required
func TestProperty_ErrorsHaveConsistentStructure(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("all error responses have consistent structure", prop.ForAll(
		func(message string, pick int) bool {
			codes := []int{
				http.StatusBadRequest,
				http.StatusNotFound,
				http.StatusConflict,
				http.StatusServiceUnavailable,
			}
			statusCode := codes[pick%len(codes)]

			w := httptest.NewRecorder()
			RespondWithError(w, statusCode, message)

			if w.Code != statusCode || w.Header().Get("Content-Type") != "application/json" {
				return false
			}

			var response map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				return false
			}

			return response["success"] == false && response["message"] == message && len(response) == 2
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 }),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRespondWithErrorDetailsEchoesInput(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithErrorDetails(w, http.StatusBadRequest, "Barcode is required", map[string]any{"code": "x"})

	body := decode(t, w)
	received, ok := body["received"].(map[string]any)
	if !ok || received["code"] != "x" {
		t.Errorf("expected received payload to be echoed, got %v", body)
	}
}

func TestRespondWithInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithInternalError(w, errors.New("connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decode(t, w)
	if body["message"] != "Internal server error" || body["error"] != "connection refused" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestRespondWithListFlattensExtra(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithList(w, []string{"a", "b"}, map[string]any{"searchTerm": "milk"})

	body := decode(t, w)
	if body["success"] != true || body["count"] != float64(2) || body["searchTerm"] != "milk" {
		t.Errorf("unexpected body %v", body)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 2 {
		t.Errorf("expected data array, got %v", body["data"])
	}
}

func TestRespondWithListEmptyIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	var items []int
	RespondWithList(w, items, nil)

	body := decode(t, w)
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Errorf("expected empty array, got %v", body["data"])
	}
	if body["count"] != float64(0) {
		t.Errorf("expected count 0, got %v", body["count"])
	}
}

func TestNotFoundHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NotFoundHandler(w, httptest.NewRequest("GET", "/nowhere", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decode(t, w); body["message"] != "Endpoint not found" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	h := ErrorHandlingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decode(t, w)
	if body["success"] != false || body["message"] != "Internal server error" {
		t.Errorf("unexpected body %v", body)
	}
}
