package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var file, stderr bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&file)
	l.SetErrOutput(&stderr)
	l.now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}
	return l, &file, &stderr
}

func TestLogger_Destinations(t *testing.T) {
	l, file, stderr := newTestLogger()

	l.Debug("debug %s", "msg")
	l.Info("info %s", "msg")
	l.Warn("warn %s", "msg")
	l.Error("error %s", "msg")

	wantFile := "2026-01-02T03:04:05Z [INFO] info msg\n" +
		"2026-01-02T03:04:05Z [WARN] warn msg\n" +
		"2026-01-02T03:04:05Z [ERROR] error msg\n"
	if file.String() != wantFile {
		t.Errorf("file output = %q, want %q", file.String(), wantFile)
	}

	wantErr := "[WARN] warn msg\n[ERROR] error msg\n"
	if stderr.String() != wantErr {
		t.Errorf("stderr output = %q, want %q", stderr.String(), wantErr)
	}
}

func TestLogger_NilWriters(t *testing.T) {
	l := NewLogger()
	l.SetFileOutput(nil)
	l.SetErrOutput(nil)

	// Should not panic.
	l.Error("dropped")
}

func TestConfigure(t *testing.T) {
	defer Reset()

	logPath := filepath.Join(t.TempDir(), "nested", "pathcalc.log")
	if err := Configure(LevelInfo, logPath, false); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	captureStderr(t)

	Debug("hidden")
	Info("visible")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(content), "hidden") {
		t.Errorf("debug message written at info level: %s", content)
	}
	if !strings.Contains(string(content), "[INFO] visible") {
		t.Errorf("expected info message in log file, got: %s", content)
	}
}

func TestConfigure_Debug(t *testing.T) {
	defer Reset()

	if err := Configure(LevelError, "", true); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	stderr := captureStderr(t)

	Debug("tracing %d", 1)

	if !strings.Contains(stderr.String(), "[DEBUG] tracing 1") {
		t.Errorf("expected debug message on stderr, got: %q", stderr.String())
	}
}

func TestReplaceGlobal(t *testing.T) {
	defer Reset()

	l, file, _ := newTestLogger()
	old := ReplaceGlobal(l)
	if old == nil {
		t.Fatal("ReplaceGlobal() returned nil previous logger")
	}

	Warn("through global")
	if !strings.Contains(file.String(), "[WARN] through global") {
		t.Errorf("expected message in replaced logger, got: %q", file.String())
	}
}

// captureStderr redirects the global logger's stderr to a buffer.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	std.SetErrOutput(&buf)
	return &buf
}
