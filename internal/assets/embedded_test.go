package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{name: "loads report style", styleName: "report", wantContain: "p.notes"},
		{name: "loads compact style", styleName: "compact", wantContain: "line-height"},
		{name: "nonexistent", styleName: "nonexistent-xyz", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", styleName: "../secret", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) missing %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"professional_clean", "modern_minimal", "creative_portfolio"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}
			if !strings.Contains(string(got), "name: "+name) {
				t.Errorf("LoadTemplate(%q) content does not declare its name", name)
			}
		})
	}

	t.Run("nonexistent", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("missing_template")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestEmbeddedLoader_ListTemplates(t *testing.T) {
	t.Parallel()

	names, err := NewEmbeddedLoader().ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}

	want := []string{"creative_portfolio", "modern_minimal", "professional_clean"}
	if len(names) != len(want) {
		t.Fatalf("ListTemplates() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ListTemplates()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDefaultTemplateIsEmbedded(t *testing.T) {
	t.Parallel()

	if _, err := NewEmbeddedLoader().LoadTemplate(DefaultTemplateName); err != nil {
		t.Fatalf("default template %q must be embedded: %v", DefaultTemplateName, err)
	}
	if _, err := NewEmbeddedLoader().LoadStyle(DefaultStyleName); err != nil {
		t.Fatalf("default style %q must be embedded: %v", DefaultStyleName, err)
	}
}
