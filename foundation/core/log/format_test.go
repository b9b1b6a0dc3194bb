// File: format_test.go
// Title: Formatter Tests
// Description: Tests for JSON, text, console and logfmt output formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial formatter tests
// - 2026-10-14 v0.2.0: Deterministic field order, run/program context

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelInfo, "program loaded")
	e.Timestamp = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	e.Logger = "robo"
	e.RunID = "r1"
	e.Program = "a.robo"
	e.Fields["statements"] = 4
	e.Fields["blocks"] = 2
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	e := sampleEntry()
	e.Error = errors.New("boom")
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := map[string]interface{}{
		"level":       "info",
		"message":     "program loaded",
		"logger":      "robo",
		"run_id":      "r1",
		"program":     "a.robo",
		"statements":  float64(4),
		"error":       "boom",
		"duration_ms": 1.5,
		"timestamp":   "2026-10-14T09:30:00Z",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v, want %v", k, m[k], v)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	out, err := f.Format(sampleEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {robo} (run=r1,program=a.robo) program loaded [blocks=2 statements=4]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	colored, _ := f.Format(sampleEntry())
	if !strings.HasPrefix(string(colored), LevelInfo.Color()) {
		t.Error("console output should start with the level color")
	}

	f.DisableColors = true
	plain, _ := f.Format(sampleEntry())
	if strings.Contains(string(plain), "\033[") {
		t.Error("DisableColors output contains escape codes")
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(sampleEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-14T09:30:00Z level=info message="program loaded" logger=robo run_id=r1 program="a.robo" blocks=2 statements=4` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatterDefault(t *testing.T) {
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("unknown format should fall back to JSON")
	}
}
