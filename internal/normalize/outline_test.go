package normalize

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseOutline(t *testing.T) {
	t.Parallel()

	many := make([]string, 12)
	for i := range many {
		many[i] = fmt.Sprintf("Topic %d", i+1)
	}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "json array deduped", input: `["Intro","Body","Intro"]`, want: []string{"Intro", "Body"}},
		{name: "fenced array", input: "```json\n[\"a\", \"b\"]\n```", want: []string{"a", "b"}},
		{name: "array inside prose", input: `Here you go: ["Plan", "Risks"] enjoy`, want: []string{"Plan", "Risks"}},
		{name: "numbered lines", input: "1. Intro\n2) Market\n- Risks\n* Close", want: []string{"Intro", "Market", "Risks", "Close"}},
		{name: "comma separated", input: "Intro, Market, Close", want: []string{"Intro", "Market", "Close"}},
		{name: "broken json lines", input: "json\n{\n\"A\",\n\"B\"\n}", want: []string{"A", "B"}},
		{name: "capped", input: strings.Join(many, "\n"), want: many[:MaxOutlineTitles]},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseOutline(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOutline(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
