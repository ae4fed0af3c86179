package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		mode    string
		verbose bool
		debug   bool
	}{
		{"dev", false, false},
		{"dev", true, true},
		{"prod", false, false},
		{"prod", true, true},
	}
	for _, tt := range tests {
		l, err := New(tt.mode, tt.verbose)
		if err != nil {
			t.Fatalf("New(%q, %v): %v", tt.mode, tt.verbose, err)
		}
		core := l.SugaredLogger.Desugar().Core()
		if got := core.Enabled(zapcore.DebugLevel); got != tt.debug {
			t.Errorf("New(%q, %v) debug enabled = %v, want %v", tt.mode, tt.verbose, got, tt.debug)
		}
		if !core.Enabled(zapcore.WarnLevel) {
			t.Errorf("New(%q, %v) drops warnings", tt.mode, tt.verbose)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop().With("k", "v")
	l.Warn("discarded", "n", 1)
	l.Sync()
	if l.SugaredLogger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("nop logger should not enable any level")
	}
}

// logLine builds a dev logger writing to a temp file and returns one warning.
func logLine(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log")
	cfg := newConfig("dev", false)
	cfg.OutputPaths = []string{path}
	zl, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	zl.Warn("careful")
	_ = zl.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestDevEncoder_Color(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
		color   bool
	}{
		{"default", "", "xterm-256color", true},
		{"NO_COLOR", "1", "xterm-256color", false},
		{"dumb terminal", "", "dumb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)

			line := logLine(t)
			if !strings.Contains(line, "WARN") || !strings.Contains(line, "careful") {
				t.Fatalf("unexpected log line %q", line)
			}
			if got := strings.Contains(line, "\x1b["); got != tt.color {
				t.Fatalf("escape codes present = %v, want %v: %q", got, tt.color, line)
			}
		})
	}
}
