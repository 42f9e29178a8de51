package layout

import (
	"context"
	"errors"

	"github.com/alnah/go-deckgen/internal/logger"
	"github.com/alnah/go-deckgen/internal/media"
)

// ImageSource resolves an image reference to an embeddable picture.
type ImageSource interface {
	Image(ctx context.Context, ref string) (*media.Image, error)
}

// Cursor is the flow position threaded through renderers.
type Cursor struct {
	// Y is the vertical position on the current page. Zero lets each
	// renderer start at its own first line.
	Y int64
	// Page counts pages emitted so far in the document.
	Page int
}

// Renderer lays out slides. It memoizes image lookups, so use one Renderer
// per document; it is not safe for concurrent use.
type Renderer struct {
	images ImageSource
	log    logger.Logger
	cache  map[string]imageResult
}

type imageResult struct {
	img *media.Image
	err error
}

// NewRenderer creates a Renderer. A nil source makes every image lookup
// fail, which degrades backgrounds to solid and drops item pictures.
func NewRenderer(images ImageSource, log logger.Logger) *Renderer {
	return &Renderer{
		images: images,
		log:    logger.OrNop(log),
		cache:  make(map[string]imageResult),
	}
}

var errNoImageSource = errors.New("no image source configured")

// image fetches ref once; failures are logged the first time only.
func (r *Renderer) image(ctx context.Context, ref, purpose string) *media.Image {
	if ref == "" {
		return nil
	}
	if res, ok := r.cache[ref]; ok {
		return res.img
	}

	var res imageResult
	if r.images == nil {
		res.err = errNoImageSource
	} else {
		res.img, res.err = r.images.Image(ctx, ref)
	}
	r.cache[ref] = res

	if res.err != nil {
		r.log.Warn("image unavailable, degrading", "purpose", purpose, "ref", ref, "err", res.err)
		return nil
	}
	return res.img
}

// firstImage returns the first reference that resolves.
func (r *Renderer) firstImage(ctx context.Context, refs []string, purpose string) *media.Image {
	for _, ref := range refs {
		if img := r.image(ctx, ref, purpose); img != nil {
			return img
		}
	}
	return nil
}

// background paints the page base layer for the style.
func (r *Renderer) background(ctx context.Context, st Style) []Shape {
	switch st.BackgroundType {
	case BackgroundGradient:
		from, to := st.GradientFrom, st.GradientTo
		if from == "" {
			from = st.Background
		}
		if to == "" {
			to = st.Background
		}
		return []Shape{
			Rectangle{Frame: FullPage(), Fill: from, Opacity: 1},
			Rectangle{Frame: FullPage(), Fill: to, Opacity: gradientOverlayOpacity},
		}
	case BackgroundImage:
		if img := r.image(ctx, st.BackgroundImage, "background"); img != nil {
			return []Shape{Picture{Frame: FullPage(), Image: img, Description: "background"}}
		}
		if st.BackgroundImage == "" {
			r.log.Warn("image background without reference, using solid color")
		}
	}
	return []Shape{Rectangle{Frame: FullPage(), Fill: st.Background, Opacity: 1}}
}

// pager accumulates the pages of one slide definition.
type pager struct {
	r     *Renderer
	ctx   context.Context
	st    Style
	kind  string
	pages []Page
	y     int64
	docPg int
}

func (r *Renderer) newPager(ctx context.Context, kind string, st Style, c Cursor) *pager {
	p := &pager{r: r, ctx: ctx, st: st, kind: kind, docPg: c.Page}
	p.newPage()
	p.y = c.Y
	return p
}

// newPage starts a page with the background and resets the flow position.
func (p *pager) newPage() {
	p.pages = append(p.pages, Page{Kind: p.kind, Shapes: p.r.background(p.ctx, p.st)})
	p.y = ContinuationTop
}

func (p *pager) current() *Page {
	return &p.pages[len(p.pages)-1]
}

// add places a fixed shape on the current page without moving the cursor.
func (p *pager) add(shapes ...Shape) {
	cur := p.current()
	cur.Shapes = append(cur.Shapes, shapes...)
}

// startAt moves the flow position down to y if it is above it.
func (p *pager) startAt(y int64) {
	p.y = max(p.y, y)
}

// pageSpan is the flow height available on a continuation page.
var pageSpan = UsableBottom - ContinuationTop

// flow places a block of height h at the cursor, breaking to a new page
// first when the block would cross UsableBottom. A block taller than a
// page is clamped to pageSpan; place receives the height actually granted.
func (p *pager) flow(h int64, place func(y, h int64) []Shape) {
	h = min(h, pageSpan)
	if p.y+h > UsableBottom {
		p.newPage()
	}
	p.add(place(p.y, h)...)
	p.y += h
	p.current().Extent = p.y
}

// flowText flows text set at size in width. Text taller than a page is
// split: the first chunk fills the room left on the current page and the
// rest continue on new pages. build returns the shapes for one chunk.
func (p *pager) flowText(text string, size float64, width, minH int64, build func(y, h int64, text string) []Shape) {
	if h := textHeight(text, size, width, minH); h <= pageSpan {
		p.flow(h, func(y, h int64) []Shape { return build(y, h, text) })
		return
	}
	room := linesIn(UsableBottom-p.y, size)
	for _, chunk := range splitText(text, size, width, room, linesIn(pageSpan, size)) {
		h := textHeight(chunk, size, width, minH)
		p.flow(h, func(y, h int64) []Shape { return build(y, h, chunk) })
	}
}

// keepWithNext breaks the page now when h, a block plus the first line of
// what follows it, would not fit below the cursor. A fresh page is never
// broken.
func (p *pager) keepWithNext(h int64) {
	h = min(h, pageSpan)
	if p.y > ContinuationTop && p.y+h > UsableBottom {
		p.newPage()
	}
}

// gap advances the cursor without placing content.
func (p *pager) gap(h int64) {
	p.y += h
}

// finish attaches notes to the first page and returns the result.
func (p *pager) finish(notes string) ([]Page, Cursor) {
	if notes != "" {
		p.pages[0].Notes = notes
	}
	return p.pages, Cursor{Y: min(p.y, UsableBottom), Page: p.docPg + len(p.pages)}
}

// run builds a single-run paragraph.
func run(text, font string, size float64, bold bool, color string, align Align) Paragraph {
	return Paragraph{
		Runs:  []Run{{Text: text, Font: font, Size: size, Bold: bold, Color: color}},
		Align: align,
	}
}
