package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func swapDefault(t *testing.T, logger Logger) {
	t.Helper()

	defaultMu.Lock()
	original := defaultLog
	defaultLog = logger
	defaultMu.Unlock()

	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	})
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
	))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Trace", Trace, "TRACE", "trace message"},
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected message %q, got: %s", tt.msg, output)
			}

			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, Make(&buf, WithLevel(LevelTrace), WithPretty(false)))

	ctx := context.Background()

	TraceContext(ctx, "a")
	DebugContext(ctx, "b")
	InfoContext(ctx, "c")
	WarnContext(ctx, "d")
	ErrorContext(ctx, "e")

	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Errorf("got %d lines, want 5: %s", got, buf.String())
	}
}

func TestPackage_Config_ReconfiguresDefault(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, Make(&buf))

	Debug("hidden")
	Config(WithLevel(LevelDebug))
	Debug("shown")

	if Default().Level() != LevelDebug {
		t.Errorf("Default().Level() = %v, want %v", Default().Level(), LevelDebug)
	}

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestPackage_Caller_PointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, Make(&buf, WithCaller(true), WithPretty(false)))

	Warn("here")

	if !strings.Contains(buf.String(), "pkg_test.go:") {
		t.Errorf("expected caller pkg_test.go, got: %s", buf.String())
	}
}

func TestPackage_With_DerivesFromDefault(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, Make(&buf, WithPretty(false)))

	With(slog.String("file", "calltrace.yaml")).Info("loaded")

	if !strings.Contains(buf.String(), "file=calltrace.yaml") {
		t.Errorf("expected attribute, got: %s", buf.String())
	}
}
