package cli

import (
	"os"
	"testing"

	"github.com/ardnew/calltrace/log"
)

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"demo", "--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=warn", "--log-time-layout=none", "resolve", "A.b"},
			want: logConfig{Level: "warn", TimeLayout: "none", Pretty: true},
		},
		{
			name: "negated booleans",
			args: []string{"--no-log-pretty", "--log-caller"},
			want: logConfig{Caller: true},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=false", "--no-log-caller=false"},
			want: logConfig{Caller: true},
		},
		{
			name: "missing value",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "unrelated flags",
			args: []string{"--parallel", "4", "--logfile"},
			want: logConfig{Pretty: true},
		},
	}

	defer log.Config(log.WithDefaults(os.Stderr))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
