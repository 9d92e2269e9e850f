package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	NewComponentLogger(logger, "composer").Info("plan composed",
		Int("sections", 2),
		String("muscle", "chest"),
		Duration("elapsed", 1500*time.Millisecond))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record[FieldComponent] != "composer" {
		t.Errorf("component = %v", record[FieldComponent])
	}
	if record["sections"] != float64(2) {
		t.Errorf("sections = %v", record["sections"])
	}
	if record["muscle"] != "chest" {
		t.Errorf("muscle = %v", record["muscle"])
	}
	if record["elapsed"] == nil {
		t.Error("elapsed duration attr missing")
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn record missing")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	// Must not panic and must stay silent.
	NewComponentLogger(nil, "test").Error("discarded", Error(nil))
}
