package cli

import (
	"testing"

	"github.com/ardnew/oden/log"
)

// TestLogScan is not parallel: scan configures the default logger.
func TestLogScan(t *testing.T) {
	t.Cleanup(func() {
		log.Config(
			log.WithLevel(log.DefaultLevel),
			log.WithFormat(log.DefaultFormat),
			log.WithTimeLayout(log.DefaultTimeLayout),
			log.WithCaller(false),
			log.WithPretty(true),
		)
	})

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "none",
			args: []string{"build", "-s", "a.oden"},
			want: logConfig{Pretty: true},
		},
		{
			name: "assigned",
			args: []string{"--log-level=debug", "--log-format=json", "build"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "separate value",
			args: []string{"build", "--log-level", "info", "--log-time-layout", "RFC3339"},
			want: logConfig{Level: "info", TimeLayout: "RFC3339", Pretty: true},
		},
		{
			name: "missing value",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "negated",
			args: []string{"--no-log-pretty", "--log-caller=false"},
			want: logConfig{},
		},
		{
			name: "after terminator",
			args: []string{"--", "--log-level=error", "--no-log-pretty"},
			want: logConfig{Pretty: true},
		},
	}

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
