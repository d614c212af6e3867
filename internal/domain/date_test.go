package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Exp Date `json:"exp_date"`
		Mfg Date `json:"mfg_date"`
	}

	if err := json.Unmarshal([]byte(`{"exp_date":"2024-07-15","mfg_date":null}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Exp.Valid || payload.Exp.String() != "2024-07-15" {
		t.Fatalf("unexpected exp date: %+v", payload.Exp)
	}
	if payload.Mfg.Valid {
		t.Fatal("null must decode to an invalid date")
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `{"exp_date":"2024-07-15","mfg_date":null}` {
		t.Fatalf("unexpected JSON: %s", out)
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/07/2024"`), &d); err == nil {
		t.Fatal("expected an error for a non ISO date")
	}
	if err := json.Unmarshal([]byte(`20240715`), &d); err == nil {
		t.Fatal("expected an error for a numeric date")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if d.String() != "2024-07-15" {
		t.Fatalf("unexpected date %s", d)
	}

	if err := d.Scan(nil); err != nil || d.Valid {
		t.Fatalf("nil must scan to NULL, got %+v (%v)", d, err)
	}

	v, err := d.Value()
	if err != nil || v != nil {
		t.Fatalf("NULL date must be stored as nil, got %v", v)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date{Year: 2024, Month: time.December, Day: 30, Valid: true}

	if got := d.AddDays(3).String(); got != "2025-01-02" {
		t.Fatalf("AddDays crossed year wrong: %s", got)
	}
	if !d.Before(d.AddDays(1)) || d.Before(d) {
		t.Fatal("Before must be strict")
	}
}
