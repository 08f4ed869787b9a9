package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateAddDaysCrossesMonth(t *testing.T) {
	got := NewDate(2025, time.September, 30).AddDays(2)
	if got.String() != "2025-10-02" {
		t.Fatalf("expected 2025-10-02, got %s", got)
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		CheckIn Date `json:"checkInDate"`
	}
	if err := json.Unmarshal([]byte(`{"checkInDate":"2025-09-30"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.CheckIn.Equal(NewDate(2025, time.September, 30)) {
		t.Fatalf("unexpected date %s", payload.CheckIn)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"checkInDate":"2025-09-30"}` {
		t.Fatalf("unexpected json %s", out)
	}

	if err := json.Unmarshal([]byte(`{"checkInDate":"30/09/2025"}`), &payload); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestDateZeroIsNull(t *testing.T) {
	out, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("expected null, got %s", out)
	}
}

func TestDateScan(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "time", input: time.Date(2025, 10, 2, 15, 4, 5, 0, time.UTC), want: "2025-10-02"},
		{name: "string", input: "2025-10-02", want: "2025-10-02"},
		{name: "timestamp string", input: "2025-10-02T00:00:00Z", want: "2025-10-02"},
		{name: "bytes", input: []byte("2025-10-02"), want: "2025-10-02"},
		{name: "nil", input: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tc.input); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if d.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, d.String())
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}
