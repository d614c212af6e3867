package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds request bodies read by DecodeAndValidate
const MaxBodyBytes = 1 << 20

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateRequest validates the request body against a struct with validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// DecodeError wraps a body that could not be decoded
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "invalid JSON body: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadBody reads the request body once and returns it as generic JSON for echoing back
// in error responses. A missing or undecodable body yields an empty object.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, any, error) {
	if r.Body == nil {
		return nil, map[string]any{}, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, map[string]any{}, &DecodeError{Err: err}
	}

	var echo any = map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &echo); err != nil {
			return raw, map[string]any{}, &DecodeError{Err: err}
		}
	}
	return raw, echo, nil
}

// DecodeAndValidate decodes JSON request body and validates it.
// The second return value is the body as generic JSON.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) (any, error) {
	raw, echo, err := ReadBody(w, r)
	if err != nil {
		return echo, err
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, v); err != nil {
			return echo, &DecodeError{Err: err}
		}
	}
	return echo, ValidateRequest(v)
}

// IsDecodeError reports whether err came from decoding rather than validation
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator errors to a readable format
func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   e.Field(),
				Message: getErrorMessage(e),
			})
		}
	}

	return errors
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	default:
		return "Invalid value"
	}
}
