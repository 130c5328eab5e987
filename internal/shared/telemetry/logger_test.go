package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfoWritesJSONLineWithFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Output: &buf})
	t.Cleanup(func() { Configure(Options{}) })

	Info("lookup.done", map[string]any{"bucket": 70, "condition": "calm"})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log line: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "lookup.done" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["condition"] != "calm" {
		t.Fatalf("unexpected condition: %v", payload["condition"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestLevelFiltersLowerSeverity(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Output: &buf, Level: "warn"})
	t.Cleanup(func() { Configure(Options{}) })

	Info("dropped", nil)
	Debug("dropped", nil)
	Warn("kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"kept"`) {
		t.Fatalf("unexpected line: %s", lines[0])
	}
}
