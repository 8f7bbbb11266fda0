package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Fatalf("got %s", d)
	}

	// older exports stored full timestamps
	d, err = ParseDate("2026-03-15T10:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate timestamp: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Fatalf("timestamp truncated to %s", d)
	}

	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Fatal("french date format must be rejected")
	}
}

func TestDateJSONNullAndEmpty(t *testing.T) {
	type payload struct {
		Day *Date `json:"day,omitempty"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"day": null}`), &p); err != nil {
		t.Fatalf("null: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"day": ""}`), &p); err != nil {
		t.Fatalf("empty string: %v", err)
	}
	if p.Day != nil && !p.Day.IsZero() {
		t.Fatalf("empty string parsed to %s", p.Day)
	}

	d := NewDate(2026, time.March, 15)
	out, err := json.Marshal(payload{Day: &d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"day":"2026-03-15"}` {
		t.Fatalf("marshaled as %s", out)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, time.March, 15, 23, 50, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Fatalf("scanned %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatal("nil must scan to the zero date")
	}

	if err := d.Scan([]byte("2026-01-31")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.Day() != 31 {
		t.Fatalf("scanned day %d", d.Day())
	}
}
