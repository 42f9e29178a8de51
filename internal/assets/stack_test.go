package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewStack(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		s, err := NewStack("")
		if err != nil {
			t.Fatalf("NewStack(\"\") error = %v", err)
		}
		if s.Custom() {
			t.Error("Custom() = true, want false for empty path")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewStack("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewStack() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestStack_Layers(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "templates", "professional_clean.yaml", "name: professional_clean\naccentColor: \"#111111\"\n")
	writeAsset(t, base, "templates", "house.yaml", "name: house\n")
	writeAsset(t, base, "styles", "report.css", "/* custom */")

	s, err := NewStack(base)
	if err != nil {
		t.Fatalf("NewStack() error = %v", err)
	}
	if !s.Custom() {
		t.Error("Custom() = false, want true")
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		got, err := s.LoadTemplate("professional_clean")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(string(got), "#111111") {
			t.Errorf("LoadTemplate() did not return the custom definition: %s", got)
		}
	})

	t.Run("falls through to embedded", func(t *testing.T) {
		t.Parallel()

		got, err := s.LoadTemplate("modern_minimal")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(string(got), "modern_minimal") {
			t.Error("LoadTemplate() did not fall through to the embedded definition")
		}
	})

	t.Run("custom style", func(t *testing.T) {
		t.Parallel()

		got, err := s.LoadStyle("report")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != "/* custom */" {
			t.Errorf("LoadStyle() = %q, want custom content", got)
		}
	})

	t.Run("embedded style when custom lacks it", func(t *testing.T) {
		t.Parallel()

		if _, err := s.LoadStyle("compact"); err != nil {
			t.Errorf("LoadStyle(compact) error = %v", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := s.LoadTemplate("nowhere")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid names stop at the first layer", func(t *testing.T) {
		t.Parallel()

		_, err := s.LoadTemplate("../etc")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("list merges layers", func(t *testing.T) {
		t.Parallel()

		names, err := s.ListTemplates()
		if err != nil {
			t.Fatalf("ListTemplates() error = %v", err)
		}
		want := "creative_portfolio,house,modern_minimal,professional_clean"
		if got := strings.Join(names, ","); got != want {
			t.Errorf("ListTemplates() = %q, want %q", got, want)
		}
	})
}
