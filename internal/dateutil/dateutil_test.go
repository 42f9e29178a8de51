package dateutil

// Notes:
// - A fixed instant keeps formatted output stable.

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixed = time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "passthrough", value: "Spring 2025", want: "Spring 2025"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto", value: "auto", want: "2025-03-07"},
		{name: "auto uppercase", value: "AUTO", want: "2025-03-07"},
		{name: "preset", value: "auto:long", want: "March 7, 2025"},
		{name: "preset case-insensitive", value: "auto:European", want: "07/03/2025"},
		{name: "custom format", value: "auto:DD.MM.YY", want: "07.03.25"},
		{name: "bracket literal", value: "auto:[Day] D", want: "Day 7"},
		{name: "bad syntax", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", value: "auto:[YYYY", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Resolve(tt.value, fixed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestLayout_TooLong(t *testing.T) {
	t.Parallel()

	_, err := Layout(strings.Repeat("Y", MaxFormatLength+1))
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("Layout(long) error = %v, want ErrInvalidDateFormat", err)
	}
}
