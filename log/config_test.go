package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{" TRACE ", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"info+2", Level(2)},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}

	if s := Level(2).String(); s != "info+2" {
		t.Errorf("Level(2).String() = %q, want %q", s, "info+2")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("Formats() = %v", got)
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := makeConfig(nil,
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
	)

	if cfg.level != LevelDebug {
		t.Errorf("level = %v, want %v", cfg.level, LevelDebug)
	}

	if cfg.format != FormatJSON {
		t.Errorf("format = %v, want %v", cfg.format, FormatJSON)
	}

	if !cfg.caller {
		t.Error("caller = false, want true")
	}

	if cfg.pretty {
		t.Error("pretty = true, want false")
	}
}

func TestConfig_formatTime_FormatsTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 123456789, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-09T14:05:07Z"},
		{"rfc-3339-nano", "2024-03-09T14:05:07.123456789Z"},
		{"Kitchen", "2:05PM"},
		{"ms", "Mar  9 14:05:07.123"},
		{"2006/01/02", "2024/03/09"},
		{"none", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			cfg := makeConfig(nil, WithTimeLayout(tt.layout))

			if got := cfg.formatTime(ts); got != tt.want {
				t.Errorf("formatTime(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

func TestConfig_formatTime_DefaultsToRFC3339(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	cfg := makeConfig(nil)
	if got := cfg.formatTime(ts); got != ts.Format(time.RFC3339) {
		t.Errorf("formatTime() = %q, want RFC3339", got)
	}
}

func BenchmarkConfig_formatTime(b *testing.B) {
	cfg := makeConfig(nil, WithTimeLayout("RFC3339Nano"))
	ts := time.Now()

	for b.Loop() {
		_ = cfg.formatTime(ts)
	}
}
