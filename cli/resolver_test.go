package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want map[string]any
	}{
		{
			name: "empty",
			yaml: "",
			want: map[string]any{},
		},
		{
			name: "scalars",
			yaml: "log-level: debug\nlog_pretty: false\nwidth: 5\nratio: 0.5\n",
			want: map[string]any{
				"log-level":  "debug",
				"log_pretty": false,
				"width":      "5",
				"ratio":      "0.5",
			},
		},
		{
			name: "sequence",
			yaml: "include: [parts, vendor/parts]\n",
			want: map[string]any{"include": "parts,vendor/parts"},
		},
		{
			name: "version removed",
			yaml: "version: 0.0.1\nlog-format: json\n",
			want: map[string]any{"log-format": "json"},
		},
		{
			name: "invalid",
			yaml: "log-level: [unterminated\n",
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := resolve(t.Context())(strings.NewReader(tt.yaml))
			if err != nil {
				t.Fatal(err)
			}

			got, ok := r.(config)
			if !ok {
				t.Fatalf("resolver type = %T", r)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("config = %v, want %v", got, tt.want)
			}

			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("config[%q] = %#v, want %#v", k, got[k], v)
				}
			}
		})
	}
}

func TestConfigResolve(t *testing.T) {
	t.Parallel()

	cfg := config{
		"log-level":  "debug",
		"log_pretty": false,
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-pretty", false},
		{"log-format", nil},
	}

	for _, tt := range tests {
		flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

		got, err := cfg.Resolve(nil, nil, flag)
		if err != nil {
			t.Fatal(err)
		}

		if got != tt.want {
			t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}
}

func TestFlagText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want any
	}{
		{nil, nil},
		{true, true},
		{"s", "s"},
		{uint64(7), "7"},
		{int64(-7), "-7"},
		{1.25, "1.25"},
		{[]any{"a", uint64(2)}, "a,2"},
	}

	for _, tt := range tests {
		if got := flagText(tt.in); got != tt.want {
			t.Errorf("flagText(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
