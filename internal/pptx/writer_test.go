package pptx

// Notes:
// - Packages are reopened with archive/zip and every XML part is run
//   through encoding/xml to prove well-formedness.
// - Assertions on slide XML use substrings; the exact attribute layout is
//   not part of the contract.

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-deckgen/internal/layout"
	"github.com/alnah/go-deckgen/internal/media"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func openPackage(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(b)
	}
	return parts
}

func assertWellFormed(t *testing.T, name, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Errorf("%s is not well-formed: %v", name, err)
			return
		}
	}
}

func textPage(texts ...string) layout.Page {
	box := layout.TextBox{Frame: layout.Rect{X: 1, Y: 1, W: 100, H: 100}}
	for _, text := range texts {
		box.Paragraphs = append(box.Paragraphs, layout.Paragraph{Runs: []layout.Run{{Text: text, Font: "Arial", Size: 16, Color: "1F2937"}}})
	}
	return layout.Page{Shapes: []layout.Shape{
		layout.Rectangle{Frame: layout.FullPage(), Fill: "FFFFFF", Opacity: 1},
		box,
	}}
}

func testImage(data string) *media.Image {
	return &media.Image{Data: []byte(data), ContentType: "image/png", Ext: "png", Width: 1, Height: 1}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEncode_Parts(t *testing.T) {
	t.Parallel()

	pages := []layout.Page{textPage("Hello"), textPage("World")}
	pages[0].Notes = "first\nsecond"

	data, err := Encode(pages, Meta{Title: "Deck & Co", Author: "Jane"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	parts := openPackage(t, data)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/notesMasters/notesMaster1.xml",
		"ppt/notesSlides/notesSlide1.xml",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if _, ok := parts["ppt/notesSlides/notesSlide2.xml"]; ok {
		t.Error("slide without notes got a notes part")
	}

	for name, doc := range parts {
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".rels") {
			assertWellFormed(t, name, doc)
		}
	}

	if !strings.Contains(parts["ppt/slides/slide1.xml"], "<a:t>Hello</a:t>") {
		t.Error("slide1 missing text run")
	}
	if !strings.Contains(parts["ppt/slides/slide2.xml"], "<a:t>World</a:t>") {
		t.Error("slide2 missing text run")
	}
	notes := parts["ppt/notesSlides/notesSlide1.xml"]
	if !strings.Contains(notes, "<a:t>first</a:t>") || !strings.Contains(notes, "<a:t>second</a:t>") {
		t.Errorf("notes lines missing: %s", notes)
	}
	if !strings.Contains(parts["docProps/core.xml"], "Deck &amp; Co") {
		t.Error("title not escaped in core properties")
	}
	if !strings.Contains(parts["ppt/presentation.xml"], `<p:sldSz cx="9144000" cy="6858000"/>`) {
		t.Error("slide size is not 10in x 7.5in")
	}
	ct := parts["[Content_Types].xml"]
	for _, want := range []string{"/ppt/slides/slide2.xml", "/ppt/notesSlides/notesSlide1.xml"} {
		if !strings.Contains(ct, want) {
			t.Errorf("content types missing %s", want)
		}
	}
}

func TestEncode_EscapesText(t *testing.T) {
	t.Parallel()

	data, err := Encode([]layout.Page{textPage(`<b>"R&D"</b>`)}, Meta{})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	slide := openPackage(t, data)["ppt/slides/slide1.xml"]
	assertWellFormed(t, "slide1", slide)
	if strings.Contains(slide, "<b>") {
		t.Error("markup leaked into slide XML")
	}
	if !strings.Contains(slide, "R&amp;D") {
		t.Error("ampersand not escaped")
	}
}

func TestEncode_MediaDedup(t *testing.T) {
	t.Parallel()

	pic := layout.Picture{Frame: layout.FullPage(), Image: testImage("same-bytes")}
	other := layout.Picture{Frame: layout.FullPage(), Image: testImage("other-bytes")}
	pages := []layout.Page{
		{Shapes: []layout.Shape{pic, pic}},
		{Shapes: []layout.Shape{pic, other}},
	}

	data, err := Encode(pages, Meta{})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	parts := openPackage(t, data)

	count := 0
	for name := range parts {
		if strings.HasPrefix(name, "ppt/media/") {
			count++
		}
	}
	if count != 2 {
		t.Errorf("media parts = %d, want 2", count)
	}
	rels := parts["ppt/slides/_rels/slide1.xml.rels"]
	if got := strings.Count(rels, "relationships/image"); got != 1 {
		t.Errorf("slide1 image relationships = %d, want 1", got)
	}
	if !strings.Contains(parts["[Content_Types].xml"], `Extension="png"`) {
		t.Error("png default content type missing")
	}
}

func TestEncode_Alpha(t *testing.T) {
	t.Parallel()

	page := layout.Page{Shapes: []layout.Shape{
		layout.Rectangle{Frame: layout.FullPage(), Fill: "111827", Opacity: 1},
		layout.Rectangle{Frame: layout.FullPage(), Fill: "374151", Opacity: 0.15},
	}}
	data, err := Encode([]layout.Page{page}, Meta{})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	slide := openPackage(t, data)["ppt/slides/slide1.xml"]
	if got := strings.Count(slide, "<a:alpha "); got != 1 {
		t.Errorf("alpha elements = %d, want 1", got)
	}
	if !strings.Contains(slide, `<a:alpha val="15000"/>`) {
		t.Error("overlay alpha not 15000")
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pages   []layout.Page
		wantErr error
	}{
		{
			name:    "picture without data",
			pages:   []layout.Page{{Shapes: []layout.Shape{layout.Picture{Frame: layout.FullPage()}}}},
			wantErr: ErrNilImage,
		},
		{
			name:    "opacity out of range",
			pages:   []layout.Page{{Shapes: []layout.Shape{layout.Rectangle{Fill: "FFFFFF", Opacity: 2}}}},
			wantErr: ErrBadOpacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Encode(tt.pages, Meta{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Encode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncode_NoPages(t *testing.T) {
	t.Parallel()

	data, err := Encode(nil, Meta{Title: "empty"})
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	parts := openPackage(t, data)
	pres, ok := parts["ppt/presentation.xml"]
	if !ok {
		t.Fatal("missing ppt/presentation.xml")
	}
	if strings.Contains(pres, "sldIdLst") {
		t.Error("empty presentation should not list slides")
	}
	for name := range parts {
		if strings.HasPrefix(name, "ppt/slides/") {
			t.Errorf("unexpected slide part %s", name)
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	pages := []layout.Page{textPage("a"), textPage("b")}
	meta := Meta{Title: "t", Created: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	first, err := Encode(pages, meta)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := Encode(pages, meta)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Encode() output differs between identical calls")
	}
	if !strings.Contains(openPackage(t, first)["docProps/core.xml"], "2024-05-01T12:00:00Z") {
		t.Error("created timestamp missing")
	}
}

func TestEncode_EmptyTextBox(t *testing.T) {
	t.Parallel()

	page := layout.Page{Shapes: []layout.Shape{layout.TextBox{Frame: layout.FullPage()}}}
	data, err := Encode([]layout.Page{page}, Meta{})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(openPackage(t, data)["ppt/slides/slide1.xml"], "<a:endParaRPr") {
		t.Error("empty text box must still carry one paragraph")
	}
}
