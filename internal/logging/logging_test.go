package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{name: "debug text", level: LevelDebug, format: FormatText},
		{name: "info json", level: LevelInfo, format: FormatJSON},
		{name: "warn text", level: LevelWarn, format: FormatText},
		{name: "error json", level: LevelError, format: FormatJSON},
		{name: "unknown level defaults to info", level: Level(99), format: FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Fatalf("GetLogger() = nil after InitLogger")
			}
		})
	}

	// Restore defaults for other tests
	InitLogger(LevelInfo, FormatText)
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{name: "debug", log: func() { Debug("dbg", "k", "v") }, want: `"msg":"dbg"`},
		{name: "info", log: func() { Info("inf") }, want: `"msg":"inf"`},
		{name: "warn", log: func() { Warn("wrn") }, want: `"msg":"wrn"`},
		{name: "error", log: func() { Error("err") }, want: `"msg":"err"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(tt.log)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
		})
	}
}

func TestRenderEvent(t *testing.T) {
	out := captureLogOutput(func() {
		RenderEvent("article", 4, 512, "path", "out.tex")
	})

	for _, want := range []string{`"msg":"render"`, `"class":"article"`, `"elements":4`, `"bytes":512`, `"path":"out.tex"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLibraryEvent(t *testing.T) {
	out := captureLogOutput(func() {
		LibraryEvent("add", "knuth1984")
	})

	for _, want := range []string{`"msg":"library"`, `"operation":"add"`, `"key":"knuth1984"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
