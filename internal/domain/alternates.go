package domain

import (
	"encoding/json"
)

type alternatesEnvelope struct {
	Alternates []string `json:"alternates"`
}

// DecodeAlternates extracts the alternates barcodes from the serialized column.
// Anything that is not an object with a string-array "alternates" field decodes to an empty list.
func DecodeAlternates(raw string) []string {
	var env alternatesEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.Alternates == nil {
		return []string{}
	}
	return env.Alternates
}

// EncodeAlternates serializes barcodes for storage. A nil list is stored as NULL.
func EncodeAlternates(barcodes []string) *string {
	if barcodes == nil {
		return nil
	}
	data, err := json.Marshal(alternatesEnvelope{Alternates: barcodes})
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}
