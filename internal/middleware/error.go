package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SuccessResponse is the envelope for successful requests.
// Extra carries endpoint specific top-level fields such as searchTerm or daysRange.
type SuccessResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Count   *int           `json:"count,omitempty"`
	Message string         `json:"message,omitempty"`
	Extra   map[string]any `json:"-"`
}

// MarshalJSON flattens Extra into the envelope
func (r SuccessResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+4)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["success"] = true
	if r.Data != nil {
		out["data"] = r.Data
	}
	if r.Count != nil {
		out["count"] = *r.Count
	}
	if r.Message != "" {
		out["message"] = r.Message
	}
	return json.Marshal(out)
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
	Received any    `json:"received,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithData sends a success envelope
func RespondWithData(w http.ResponseWriter, statusCode int, data any) {
	RespondWithJSON(w, statusCode, SuccessResponse{Success: true, Data: data})
}

// RespondWithList sends a success envelope carrying a count and optional extra fields
func RespondWithList[T any](w http.ResponseWriter, items []T, extra map[string]any) {
	count := len(items)
	if items == nil {
		items = []T{}
	}
	RespondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: items, Count: &count, Extra: extra})
}

// RespondWithError sends a client error envelope
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message})
}

// RespondWithErrorDetails sends a client error envelope echoing the offending input
func RespondWithErrorDetails(w http.ResponseWriter, statusCode int, message string, received any) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message, Received: received})
}

// RespondWithInternalError sends the 500 envelope with a diagnostic string
func RespondWithInternalError(w http.ResponseWriter, err error) {
	RespondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
		Error:   err.Error(),
	})
}

// NotFoundHandler answers requests that match no route
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, http.StatusNotFound, "Endpoint not found")
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("Panic recovered",
						zap.Any("error", rec),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
						Message: "Internal server error",
						Error:   "unexpected panic",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
