package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ardnew/oden/pkg"
)

func TestVersionRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		check   string
		wantErr error
	}{
		{"", nil},
		{">= 0.1", nil},
		{"^" + pkg.Version(), nil},
		{"< 0.1", ErrVersion},
		{"not a constraint", ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.check, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			err := (&Version{Check: tt.check}).Run(WithOutput(t.Context(), &out))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if want := "oden " + pkg.Version() + "\n"; out.String() != want {
				t.Errorf("output = %q, want %q", out.String(), want)
			}
		})
	}
}
