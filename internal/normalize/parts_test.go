package normalize

import (
	"reflect"
	"testing"
)

func TestExtractParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   Parts
	}{
		{
			name:   "slide markup",
			markup: `<h2>Title</h2><ul><li>a</li><li> b  c </li></ul><p class="notes">speak</p>`,
			want: Parts{
				Title:   "Title",
				Bullets: []string{"a", "b c"},
				Notes:   []string{"speak"},
				Text:    "Title a b c speak",
			},
		},
		{
			name:   "report markup",
			markup: "<p>One.</p><p>Two.</p>",
			want: Parts{
				Paragraphs: []string{"One.", "Two."},
				Text:       "One. Two.",
			},
		},
		{
			name:   "first non-empty heading wins",
			markup: "<h1> </h1><h3>Real</h3><h2>Later</h2>",
			want:   Parts{Title: "Real", Text: "Real Later"},
		},
		{
			name:   "bare text",
			markup: "just words",
			want:   Parts{Text: "just words"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractParts(tt.markup); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractParts(%q) = %#v, want %#v", tt.markup, got, tt.want)
			}
		})
	}
}
