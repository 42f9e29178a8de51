package layout

import "github.com/alnah/go-deckgen/internal/media"

// Align is horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Anchor is vertical text anchoring within a box.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

// Run is a span of uniformly styled text.
type Run struct {
	Text  string
	Font  string
	Size  float64 // points
	Bold  bool
	Color string // RRGGBB
}

// Paragraph is one line-broken block inside a text box.
type Paragraph struct {
	Runs  []Run
	Align Align
}

// Text returns the concatenated run text.
func (p Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// Shape is anything placed on a page. The set is closed.
type Shape interface {
	Bounds() Rect
	shape()
}

// Rectangle is a filled, borderless rectangle.
type Rectangle struct {
	Frame   Rect
	Fill    string  // RRGGBB
	Opacity float64 // 1 is opaque
}

// TextBox holds paragraphs inside a frame, optionally filled.
type TextBox struct {
	Frame       Rect
	Paragraphs  []Paragraph
	Fill        string  // RRGGBB, empty for none
	FillOpacity float64 // used when Fill is set
	Anchor      Anchor
	Shrink      bool // ask the viewer to shrink text that overflows
}

// Picture is a raster image stretched to its frame.
type Picture struct {
	Frame       Rect
	Image       *media.Image
	Description string
}

func (r Rectangle) Bounds() Rect { return r.Frame }
func (t TextBox) Bounds() Rect   { return t.Frame }
func (p Picture) Bounds() Rect   { return p.Frame }

func (Rectangle) shape() {}
func (TextBox) shape()   {}
func (Picture) shape()   {}

// Page is one physical slide.
type Page struct {
	Kind   string // slide kind that produced it
	Shapes []Shape
	Notes  string // speaker notes, not visible on the page
	// Extent is the lower edge of the last flowed line; zero for pages
	// without flowing content.
	Extent int64
}

// Texts returns the text of every paragraph on the page, in shape order.
func (p Page) Texts() []string {
	var out []string
	for _, s := range p.Shapes {
		if tb, ok := s.(TextBox); ok {
			for _, para := range tb.Paragraphs {
				out = append(out, para.Text())
			}
		}
	}
	return out
}

// TextBoxes returns the page's text boxes in order.
func (p Page) TextBoxes() []TextBox {
	var out []TextBox
	for _, s := range p.Shapes {
		if tb, ok := s.(TextBox); ok {
			out = append(out, tb)
		}
	}
	return out
}

// Pictures returns the page's pictures in order.
func (p Page) Pictures() []Picture {
	var out []Picture
	for _, s := range p.Shapes {
		if pic, ok := s.(Picture); ok {
			out = append(out, pic)
		}
	}
	return out
}
