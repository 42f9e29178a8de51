package pptx

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/alnah/go-deckgen/internal/layout"
	"github.com/alnah/go-deckgen/internal/media"
)

// Sentinel errors.
var (
	ErrNilImage   = errors.New("picture without image data")
	ErrWritePart  = errors.New("failed to write package part")
	ErrBadOpacity = errors.New("opacity out of range")
)

// Meta is document-level information.
type Meta struct {
	Title       string
	Author      string
	Created     time.Time // zero omits timestamps
	Application string
	Accent      string // RRGGBB for the theme accent1 slot
	HeadingFont string
	BodyFont    string
}

func (m Meta) withDefaults() Meta {
	if m.Application == "" {
		m.Application = "deckgen"
	}
	if m.Accent == "" {
		m.Accent = "0A74DA"
	}
	if m.HeadingFont == "" {
		m.HeadingFont = "Arial"
	}
	if m.BodyFont == "" {
		m.BodyFont = m.HeadingFont
	}
	return m
}

// Encode returns the presentation as bytes.
func Encode(pages []layout.Page, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, pages, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes pages as a presentation package to w. Output is
// deterministic for equal input. Zero pages give an empty presentation.
func Write(w io.Writer, pages []layout.Page, meta Meta) error {
	meta = meta.withDefaults()

	pkg := &packageWriter{
		zw:    zip.NewWriter(w),
		mtime: meta.Created,
		media: newMediaStore(),
	}

	slides := make([]slideRef, len(pages))
	notesCount := 0
	for i, page := range pages {
		n := i + 1
		view, rels, err := pkg.slideView(page, n)
		if err != nil {
			return fmt.Errorf("slide %d: %w", n, err)
		}
		slides[i] = slideRef{ID: firstSlideID + i, RelID: fmt.Sprintf("rId%d", firstSlideRel+i)}

		rels = append(rels, relationship{ID: "rId1", Type: relBase + "slideLayout", Target: "../slideLayouts/slideLayout1.xml"})
		if page.Notes != "" {
			notesCount++
			rels = append(rels, relationship{ID: "rIdNotes", Type: relBase + "notesSlide", Target: fmt.Sprintf("../notesSlides/notesSlide%d.xml", n)})
			if err := pkg.notes(page.Notes, n); err != nil {
				return err
			}
		}
		pkg.slides = append(pkg.slides, n)

		if err := pkg.template(fmt.Sprintf("ppt/slides/slide%d.xml", n), "slide", view); err != nil {
			return err
		}
		if err := pkg.rels(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), rels); err != nil {
			return err
		}
	}

	if err := pkg.media.write(pkg); err != nil {
		return err
	}
	if err := pkg.presentation(slides, notesCount > 0); err != nil {
		return err
	}
	if err := pkg.fixedParts(meta, len(pages), notesCount); err != nil {
		return err
	}
	if err := pkg.contentTypes(); err != nil {
		return err
	}
	if err := pkg.zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePart, err)
	}
	return nil
}

type slideRef struct {
	ID    int
	RelID string
}

type relationship struct {
	ID     string
	Type   string
	Target string
}

type packageWriter struct {
	zw     *zip.Writer
	mtime  time.Time
	media  *mediaStore
	slides []int
	notesN []int
}

func (p *packageWriter) write(name string, data []byte) error {
	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
	if !p.mtime.IsZero() {
		hdr.Modified = p.mtime
	}
	f, err := p.zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	return nil
}

func (p *packageWriter) template(name, tmpl string, data any) error {
	b, err := render(tmpl, data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePart, name, err)
	}
	return p.write(name, b)
}

func (p *packageWriter) rels(name string, rels []relationship) error {
	return p.template(name, "rels", rels)
}

func (p *packageWriter) notes(text string, n int) error {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	p.notesN = append(p.notesN, n)
	if err := p.template(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), "notes", lines); err != nil {
		return err
	}
	return p.rels(fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), []relationship{
		{ID: "rId1", Type: relBase + "notesMaster", Target: "../notesMasters/notesMaster1.xml"},
		{ID: "rId2", Type: relBase + "slide", Target: fmt.Sprintf("../slides/slide%d.xml", n)},
	})
}

func (p *packageWriter) presentation(slides []slideRef, hasNotes bool) error {
	rels := []relationship{
		{ID: "rId1", Type: relBase + "slideMaster", Target: "slideMasters/slideMaster1.xml"},
		{ID: "rId2", Type: relBase + "theme", Target: "theme/theme1.xml"},
		{ID: "rId4", Type: relBase + "presProps", Target: "presProps.xml"},
		{ID: "rId5", Type: relBase + "viewProps", Target: "viewProps.xml"},
		{ID: "rId6", Type: relBase + "tableStyles", Target: "tableStyles.xml"},
	}
	if hasNotes {
		rels = append(rels, relationship{ID: "rId3", Type: relBase + "notesMaster", Target: "notesMasters/notesMaster1.xml"})
	}
	for i, s := range slides {
		rels = append(rels, relationship{ID: s.RelID, Type: relBase + "slide", Target: fmt.Sprintf("slides/slide%d.xml", i+1)})
	}

	data := struct {
		MasterID                int64
		HasNotes                bool
		Slides                  []slideRef
		Width, Height           int64
		NotesWidth, NotesHeight int64
	}{masterID, hasNotes, slides, layout.PageWidth, layout.PageHeight, notesSizeCX, notesSizeCY}

	if err := p.template("ppt/presentation.xml", "presentation", data); err != nil {
		return err
	}
	return p.rels("ppt/_rels/presentation.xml.rels", rels)
}

// fixedPart is either a template rendered with data or a raw document.
type fixedPart struct {
	name string
	tmpl string
	data any
	raw  string
}

func (p *packageWriter) fixedParts(meta Meta, slides, notes int) error {
	created := ""
	if !meta.Created.IsZero() {
		created = meta.Created.UTC().Format(time.RFC3339)
	}

	parts := []fixedPart{
		{name: "ppt/theme/theme1.xml", tmpl: "theme", data: meta},
		{name: "ppt/slideMasters/slideMaster1.xml", raw: slideMasterXML},
		{name: "ppt/slideLayouts/slideLayout1.xml", raw: slideLayoutXML},
		{name: "ppt/presProps.xml", raw: presPropsXML},
		{name: "ppt/viewProps.xml", raw: viewPropsXML},
		{name: "ppt/tableStyles.xml", raw: tableStylesXML},
		{name: "docProps/core.xml", tmpl: "core", data: map[string]string{"Title": meta.Title, "Author": meta.Author, "Created": created}},
		{name: "docProps/app.xml", tmpl: "app", data: map[string]any{"Application": meta.Application, "Slides": slides, "Notes": notes}},
	}
	if notes > 0 {
		parts = append(parts,
			fixedPart{name: "ppt/notesMasters/notesMaster1.xml", raw: notesMasterXML},
			fixedPart{name: "ppt/theme/theme2.xml", tmpl: "theme", data: meta},
		)
	}

	for _, part := range parts {
		var err error
		if part.tmpl != "" {
			err = p.template(part.name, part.tmpl, part.data)
		} else {
			err = p.write(part.name, []byte(part.raw))
		}
		if err != nil {
			return err
		}
	}

	rels := map[string][]relationship{
		"_rels/.rels": {
			{ID: "rId1", Type: relBase + "officeDocument", Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relPkgCore, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relBase + "extended-properties", Target: "docProps/app.xml"},
		},
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": {
			{ID: "rId1", Type: relBase + "slideLayout", Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relBase + "theme", Target: "../theme/theme1.xml"},
		},
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels": {
			{ID: "rId1", Type: relBase + "slideMaster", Target: "../slideMasters/slideMaster1.xml"},
		},
	}
	if notes > 0 {
		rels["ppt/notesMasters/_rels/notesMaster1.xml.rels"] = []relationship{
			{ID: "rId1", Type: relBase + "theme", Target: "../theme/theme2.xml"},
		}
	}
	// Fixed order keeps the archive deterministic.
	for _, name := range []string{
		"_rels/.rels",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/notesMasters/_rels/notesMaster1.xml.rels",
	} {
		if r, ok := rels[name]; ok {
			if err := p.rels(name, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *packageWriter) contentTypes() error {
	type override struct{ Part, Type string }
	overrides := []override{
		{"/ppt/presentation.xml", ctPresentation},
		{"/ppt/slideMasters/slideMaster1.xml", ctSlideMaster},
		{"/ppt/slideLayouts/slideLayout1.xml", ctSlideLayout},
		{"/ppt/theme/theme1.xml", ctTheme},
		{"/ppt/presProps.xml", ctPresProps},
		{"/ppt/viewProps.xml", ctViewProps},
		{"/ppt/tableStyles.xml", ctTableStyles},
		{"/docProps/core.xml", ctCore},
		{"/docProps/app.xml", ctApp},
	}
	if len(p.notesN) > 0 {
		overrides = append(overrides,
			override{"/ppt/notesMasters/notesMaster1.xml", ctNotesMaster},
			override{"/ppt/theme/theme2.xml", ctTheme},
		)
	}
	for _, n := range p.slides {
		overrides = append(overrides, override{fmt.Sprintf("/ppt/slides/slide%d.xml", n), ctSlide})
	}
	for _, n := range p.notesN {
		overrides = append(overrides, override{fmt.Sprintf("/ppt/notesSlides/notesSlide%d.xml", n), ctNotesSlide})
	}

	data := struct {
		Defaults  []mediaType
		Overrides []override
	}{p.media.types(), overrides}

	b, err := render("contentTypes", data)
	if err != nil {
		return fmt.Errorf("%w: [Content_Types].xml: %v", ErrWritePart, err)
	}
	return p.write("[Content_Types].xml", b)
}

// ---------------------------------------------------------------------------
// Slide view model
// ---------------------------------------------------------------------------

type shapeView struct {
	Kind       string // rect, text or pic
	ID         int
	X, Y, W, H int64
	Fill       string
	Alpha      int // 0 when opaque
	Anchor     string
	Shrink     bool
	Paras      []paraView
	RelID      string
	Descr      string
}

type paraView struct {
	Align string
	Runs  []runView
}

type runView struct {
	Text  string
	Size  int // hundredths of a point
	Bold  bool
	Color string
	Font  string
}

type slideData struct {
	Shapes []shapeView
}

func (p *packageWriter) slideView(page layout.Page, n int) (slideData, []relationship, error) {
	var (
		view slideData
		rels []relationship
		seen = map[string]string{} // media part -> rel id
	)
	for i, s := range page.Shapes {
		id := i + 2
		f := s.Bounds()
		sv := shapeView{ID: id, X: f.X, Y: f.Y, W: f.W, H: f.H}

		switch s := s.(type) {
		case layout.Rectangle:
			alpha, err := alphaOf(s.Opacity)
			if err != nil {
				return view, nil, err
			}
			sv.Kind, sv.Fill, sv.Alpha = "rect", s.Fill, alpha

		case layout.TextBox:
			sv.Kind, sv.Shrink, sv.Anchor = "text", s.Shrink, anchorOf(s.Anchor)
			if s.Fill != "" {
				alpha, err := alphaOf(s.FillOpacity)
				if err != nil {
					return view, nil, err
				}
				sv.Fill, sv.Alpha = s.Fill, alpha
			}
			for _, para := range s.Paragraphs {
				pv := paraView{Align: alignOf(para.Align)}
				for _, r := range para.Runs {
					pv.Runs = append(pv.Runs, runView{
						Text:  r.Text,
						Size:  int(math.Round(r.Size * 100)),
						Bold:  r.Bold,
						Color: r.Color,
						Font:  r.Font,
					})
				}
				sv.Paras = append(sv.Paras, pv)
			}

		case layout.Picture:
			if s.Image == nil || len(s.Image.Data) == 0 {
				return view, nil, ErrNilImage
			}
			part := p.media.add(s.Image)
			relID, ok := seen[part]
			if !ok {
				relID = fmt.Sprintf("rIdImg%d", len(seen)+1)
				seen[part] = relID
				rels = append(rels, relationship{ID: relID, Type: relBase + "image", Target: "../media/" + part})
			}
			sv.Kind, sv.RelID, sv.Descr = "pic", relID, s.Description
		}
		view.Shapes = append(view.Shapes, sv)
	}
	return view, rels, nil
}

// alphaOf maps opacity to DrawingML thousandths of a percent; opaque
// fills return zero so no alpha element is written.
func alphaOf(opacity float64) (int, error) {
	if opacity < 0 || opacity > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadOpacity, opacity)
	}
	if opacity == 1 || opacity == 0 {
		// Zero means unset in layout shapes.
		return 0, nil
	}
	return int(math.Round(opacity * 100000)), nil
}

func anchorOf(a layout.Anchor) string {
	switch a {
	case layout.AnchorMiddle:
		return "ctr"
	case layout.AnchorBottom:
		return "b"
	default:
		return "t"
	}
}

func alignOf(a layout.Align) string {
	if a == layout.AlignCenter {
		return "ctr"
	}
	return "l"
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

type mediaType struct {
	Ext  string
	Type string
}

type mediaPart struct {
	name string
	data []byte
}

// mediaStore dedupes images by content hash.
type mediaStore struct {
	byHash map[[32]byte]string
	parts  []mediaPart
	exts   map[string]string
	order  []string
}

func newMediaStore() *mediaStore {
	return &mediaStore{byHash: map[[32]byte]string{}, exts: map[string]string{}}
}

func (m *mediaStore) add(img *media.Image) string {
	sum := sha256.Sum256(img.Data)
	if name, ok := m.byHash[sum]; ok {
		return name
	}
	ext := img.Ext
	if ext == "" {
		ext = "png"
	}
	name := fmt.Sprintf("image%d.%s", len(m.parts)+1, ext)
	m.byHash[sum] = name
	m.parts = append(m.parts, mediaPart{name: name, data: img.Data})
	if _, ok := m.exts[ext]; !ok {
		ct := img.ContentType
		if ct == "" {
			ct = "image/" + ext
		}
		m.exts[ext] = ct
		m.order = append(m.order, ext)
	}
	return name
}

func (m *mediaStore) types() []mediaType {
	out := make([]mediaType, 0, len(m.order))
	for _, ext := range m.order {
		out = append(out, mediaType{Ext: ext, Type: m.exts[ext]})
	}
	return out
}

func (m *mediaStore) write(p *packageWriter) error {
	for _, part := range m.parts {
		if err := p.write("ppt/media/"+part.name, part.data); err != nil {
			return err
		}
	}
	return nil
}
