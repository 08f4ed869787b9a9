package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLoggerRespectsLevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: WarnLevel, JSON: true, Output: &buf})

	log.Info("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered at warn level, got %q", buf.String())
	}

	log.WithFields(Fields{"operator": "op1"}).Warn("check in failed for %s", "res-1")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line: %v (%q)", err, buf.String())
	}
	if entry["operator"] != "op1" || !strings.Contains(entry["msg"].(string), "res-1") || entry["level"] != "warning" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
