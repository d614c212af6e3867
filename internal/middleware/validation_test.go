package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type testRequest struct {
	Barcode string `json:"barcode" validate:"required"`
	Count   *int   `json:"count" validate:"omitempty,gte=0"`
}

// Property: a body passes validation exactly when the required barcode is present
func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(barcode string, includeBarcode bool) bool {
			reqMap := map[string]interface{}{"other": "value"}
			if includeBarcode {
				reqMap["barcode"] = barcode
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			w := httptest.NewRecorder()

			var testReq testRequest
			echo, err := DecodeAndValidate(w, req, &testReq)

			body, ok := echo.(map[string]any)
			if !ok || body["other"] != "value" {
				return false
			}

			if includeBarcode && barcode != "" {
				return err == nil && testReq.Barcode == barcode
			}
			return err != nil && !IsDecodeError(err)
		},
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property: negative counts are rejected with a field level message
func TestProperty_ValidationErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("range violations name the offending field", prop.ForAll(
		func(count int) bool {
			reqBody, _ := json.Marshal(map[string]any{"barcode": "123", "count": count})
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))

			var testReq testRequest
			_, err := DecodeAndValidate(httptest.NewRecorder(), req, &testReq)
			if count >= 0 {
				return err == nil
			}

			errs := FormatValidationErrors(err)
			return len(errs) == 1 && errs[0].Field == "Count" && errs[0].Message != ""
		},
		gen.IntRange(-50, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDecodeAndValidateMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader("{not json"))

	var testReq testRequest
	echo, err := DecodeAndValidate(httptest.NewRecorder(), req, &testReq)
	if !IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if m, ok := echo.(map[string]any); !ok || len(m) != 0 {
		t.Errorf("expected empty echo, got %v", echo)
	}
}

func TestDecodeAndValidateEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", nil)

	var testReq testRequest
	_, err := DecodeAndValidate(httptest.NewRecorder(), req, &testReq)
	if err == nil || IsDecodeError(err) {
		t.Fatalf("expected a validation error for an empty body, got %v", err)
	}
}

func TestDecodeAndValidateRejectsOversizedBody(t *testing.T) {
	big := `{"barcode":"` + strings.Repeat("9", MaxBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/test", strings.NewReader(big))

	var testReq testRequest
	_, err := DecodeAndValidate(httptest.NewRecorder(), req, &testReq)
	if !IsDecodeError(err) {
		t.Fatalf("expected decode error for oversized body, got %v", err)
	}
}
