package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"Info", InfoLevel},
		{"WARN", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"invalid", InfoLevel}, // Default
		{"", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{"TEXT", FormatText},
		{"", FormatJSON},
		{"xml", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("key", "value"), "key", "value"},
		{"Int", Int("count", 42), "count", 42},
		{"Int64", Int64("distance", 1234567890), "distance", int64(1234567890)},
		{"Bool", Bool("found", true), "found", true},
		{"Duration", Duration("timeout", 5*time.Second), "timeout", "5s"},
		{"Error", Error(errors.New("test error")), "error", "test error"},
		{"Error_nil", Error(nil), "error", nil},
		{"Component", Component("session"), "component", "session"},
		{"RunID", RunID("abc"), "run_id", "abc"},
		{"Line", Line(3), "line", 3},
		{"Verb", Verb("shortest"), "verb", "shortest"},
		{"Label", Label("Z"), "label", "Z"},
		{"NodeCount", NodeCount(5), "nodes", 5},
		{"EdgeCount", EdgeCount(9), "edges", 9},
		{"Latency", Latency(time.Millisecond), "latency", "1ms"},
		{"Path", Path("graph.txt"), "path", "graph.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("got %+v, want {Key:%v Value:%v}", tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestJSONLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("graph loaded", NodeCount(5), EdgeCount(9))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal log entry: %v", err)
	}

	if entry.Level != "INFO" {
		t.Errorf("Level = %v, want INFO", entry.Level)
	}
	if entry.Message != "graph loaded" {
		t.Errorf("Message = %v, want 'graph loaded'", entry.Message)
	}
	// JSON numbers decode as float64
	if entry.Fields["nodes"] != float64(5) {
		t.Errorf("Fields[nodes] = %v, want 5", entry.Fields["nodes"])
	}
	if entry.Time == "" {
		t.Error("Time field is empty")
	}
}

func TestJSONLogger_NoFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("bare")

	if strings.Contains(buf.String(), `"fields"`) {
		t.Errorf("entry without fields should omit the fields key: %s", buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("messages below WARN were written: %s", buf.String())
	}

	logger.Warn("kept")
	logger.Error("kept")
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("wrote %d lines, want 2", lines)
	}

	logger.SetLevel(DebugLevel)
	if logger.GetLevel() != DebugLevel {
		t.Errorf("GetLevel() = %v, want DEBUG", logger.GetLevel())
	}
	logger.Debug("now kept")
	if lines := strings.Count(buf.String(), "\n"); lines != 3 {
		t.Errorf("wrote %d lines after SetLevel, want 3", lines)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	parent := NewJSONLogger(&buf, InfoLevel)
	child := parent.With(RunID("run-1"), Component("session"))

	child.Info("line handled", Line(2))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal log entry: %v", err)
	}
	if entry.Fields["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", entry.Fields["run_id"])
	}
	if entry.Fields["component"] != "session" {
		t.Errorf("component = %v, want session", entry.Fields["component"])
	}

	// The parent is not affected by the child's fields
	buf.Reset()
	parent.Info("plain")
	if strings.Contains(buf.String(), "run_id") {
		t.Errorf("parent logger picked up child fields: %s", buf.String())
	}
}

func TestLogger_CallFieldsOverridePreset(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(Component("query"))

	logger.Info("msg", Component("render"))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to unmarshal log entry: %v", err)
	}
	if entry.Fields["component"] != "render" {
		t.Errorf("component = %v, want render", entry.Fields["component"])
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, InfoLevel)

	logger.Warn("invalid command", Line(4), Verb("maxStops"), Error(errors.New("bad limit")))

	out := buf.String()
	for _, want := range []string{
		"level=WARN",
		`msg="invalid command"`,
		"line=4",
		"verb=maxStops",
		`error="bad limit"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output %q missing %q", out, want)
		}
	}

	// Fields are written in key order
	if strings.Index(out, "error=") > strings.Index(out, "line=") {
		t.Errorf("fields not sorted: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("text entry should end with a newline")
	}
}

func TestTextValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"two words", `"two words"`},
		{"k=v", `"k=v"`},
		{`say "hi"`, `"say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := textValue(tt.in); got != tt.want {
				t.Errorf("textValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, InfoLevel, Format("yaml"))

	logger.Info("msg")

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
}

func TestLogger_ConcurrentChildren(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			child := logger.With(Line(n))
			for j := 0; j < 50; j++ {
				child.Info("concurrent")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines, want 400", len(lines))
	}
	for _, line := range lines {
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("interleaved output %q: %v", line, err)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.SetLevel(DebugLevel)

	if logger.GetLevel() != InfoLevel {
		t.Errorf("NopLogger.GetLevel() = %v, want INFO", logger.GetLevel())
	}
	if _, ok := logger.With(Component("x")).(NopLogger); !ok {
		t.Error("NopLogger.With() should return a NopLogger")
	}
}

func TestTimedOperation(t *testing.T) {
	t.Run("End", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, InfoLevel)

		timer := StartTimer(logger, "graph built", Path("graph.txt"))
		elapsed := timer.End(NodeCount(5))

		var entry LogEntry
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to unmarshal log entry: %v", err)
		}
		if entry.Message != "graph built" {
			t.Errorf("Message = %v, want 'graph built'", entry.Message)
		}
		if entry.Fields["path"] != "graph.txt" || entry.Fields["nodes"] != float64(5) {
			t.Errorf("Fields = %v", entry.Fields)
		}
		if _, ok := entry.Fields["latency"]; !ok {
			t.Error("latency field missing")
		}
		if elapsed < 0 {
			t.Errorf("elapsed = %v, want >= 0", elapsed)
		}
	})

	t.Run("EndWithLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, DebugLevel)

		StartTimer(logger, "ignored").EndWithLevel(DebugLevel, "query evaluated")

		var entry LogEntry
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to unmarshal log entry: %v", err)
		}
		if entry.Level != "DEBUG" || entry.Message != "query evaluated" {
			t.Errorf("entry = %+v", entry)
		}
	})

	t.Run("EndError", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, InfoLevel)

		StartTimer(logger, "load").EndError(errors.New("boom"))

		var entry LogEntry
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to unmarshal log entry: %v", err)
		}
		if entry.Level != "ERROR" || entry.Fields["error"] != "boom" {
			t.Errorf("entry = %+v", entry)
		}
	})
}

func TestDefaultLogger(t *testing.T) {
	original := DefaultLogger()
	defer SetDefaultLogger(original)

	var buf bytes.Buffer
	SetDefaultLogger(NewJSONLogger(&buf, DebugLevel))

	Debug("d")
	Info("i")
	Warn("w")
	ErrorLog("e")
	With(Component("pkg")).Info("child")

	if lines := strings.Count(buf.String(), "\n"); lines != 5 {
		t.Errorf("default logger wrote %d lines, want 5", lines)
	}
}
