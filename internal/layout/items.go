package layout

import (
	"context"
	"strings"

	"github.com/alnah/go-deckgen/internal/media"
)

// Flow metrics shared by the item renderers.
var (
	itemLeft      = Inches(0.6)
	lineAdvance   = Inches(0.35)
	itemGap       = Inches(0.1)
	educationStep = Inches(0.7)
	projectStep   = Inches(1.6)
	projectImageW = Inches(2.5)
	projectImageH = Inches(1.5)
	projectTextX  = Inches(3.2)
)

// Experience renders roles top to bottom, continuing on new pages when
// the next line would pass the usable bottom.
func (r *Renderer) Experience(ctx context.Context, s ExperienceSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindExperience, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Experience"
	}
	p.add(TextBox{
		Frame:      Rect{X: Inches(0.5), Y: Inches(0.5), W: PageWidth - Inches(1), H: Inches(1)},
		Paragraphs: []Paragraph{run(heading, st.titleFont(), st.TitleSize, true, st.TitleColor(), AlignLeft)},
	})
	p.startAt(Inches(1.4))

	headW := PageWidth - 2*itemLeft
	bulletX, bulletW := itemLeft+Inches(0.15), PageWidth-Inches(1.5)

	for _, item := range s.Items {
		if line := itemHeading(item.Role, item.Company, item.Dates); line != "" {
			h := textHeight(line, st.BodySize, headW, lineAdvance)
			if len(item.Bullets) > 0 {
				p.keepWithNext(h + firstLineHeight(bullet+item.Bullets[0], st.BodySize, bulletW))
			}
			p.flowText(line, st.BodySize, headW, lineAdvance, func(y, h int64, text string) []Shape {
				return []Shape{TextBox{
					Frame:      Rect{X: itemLeft, Y: y, W: headW, H: h},
					Paragraphs: []Paragraph{run(text, st.titleFont(), st.BodySize, true, st.TitleColor(), AlignLeft)},
				}}
			})
		}

		for _, b := range item.Bullets {
			p.flowText(bullet+b, st.BodySize, bulletW, lineAdvance, func(y, h int64, text string) []Shape {
				return []Shape{TextBox{
					Frame:      Rect{X: bulletX, Y: y, W: bulletW, H: h},
					Paragraphs: []Paragraph{run(text, st.FontBody, st.BodySize, false, st.BodyColor(), AlignLeft)},
				}}
			})
		}
		p.gap(itemGap)
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}

// Education renders one heading line per entry: degree, school, then dates.
func (r *Renderer) Education(ctx context.Context, s EducationSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindEducation, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Education"
	}
	p.add(headingBox(heading, st, Inches(0.3)))
	p.startAt(Inches(1))

	for _, item := range s.Items {
		line := itemHeading(item.Degree, item.School, item.Dates)
		if line == "" {
			continue
		}
		w := PageWidth - 2*itemLeft
		p.flowText(line, st.BodySize, w, educationStep, func(y, h int64, text string) []Shape {
			return []Shape{TextBox{
				Frame:      Rect{X: itemLeft, Y: y, W: w, H: h},
				Paragraphs: []Paragraph{run(text, st.titleFont(), st.BodySize, false, st.BodyColor(), AlignLeft)},
			}}
		})
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}

// Projects renders a title and description per entry, with the project
// image on the left when it resolves.
func (r *Renderer) Projects(ctx context.Context, s ProjectsSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindProjects, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Projects"
	}
	p.add(headingBox(heading, st, Inches(0.3)))
	p.startAt(Inches(1))

	for _, item := range s.Items {
		img := r.image(ctx, item.Image, "project image")
		imgW, imgH := projectImageSize(img)

		textX := itemLeft
		if img != nil {
			textX = projectTextX
		}
		textW := PageWidth - textX - Inches(0.5)

		var paras []Paragraph
		if item.Title != "" {
			paras = append(paras, run(item.Title, st.titleFont(), st.BodySize, true, st.TitleColor(), AlignLeft))
		}
		if item.Description != "" {
			paras = append(paras, run(item.Description, st.FontBody, st.BodySize, false, st.BodyColor(), AlignLeft))
		}
		if len(paras) == 0 && img == nil {
			continue
		}

		textH := textHeight(item.Title, st.BodySize, textW, 0) + textHeight(item.Description, st.BodySize, textW, 0)
		h := max(projectStep, imgH+itemGap, textH+Inches(0.4))

		// An oversized description is clamped to one page and shrunk by the viewer.
		p.flow(h, func(y, got int64) []Shape {
			var shapes []Shape
			if img != nil {
				shapes = append(shapes, Picture{Frame: Rect{X: Inches(0.5), Y: y, W: imgW, H: imgH}, Image: img, Description: item.Title})
			}
			if len(paras) > 0 {
				shapes = append(shapes, TextBox{Frame: Rect{X: textX, Y: y, W: textW, H: got - itemGap}, Paragraphs: paras, Shrink: got < h})
			}
			return shapes
		})
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}

// projectImageSize fits the image to the column width, keeping the aspect
// ratio and capping the height.
func projectImageSize(img *media.Image) (w, h int64) {
	if img == nil {
		return 0, 0
	}
	w, h = projectImageW, img.HeightFor(projectImageW)
	if h <= 0 {
		return w, projectImageH
	}
	if h > projectImageH {
		w = w * projectImageH / h
		h = projectImageH
	}
	return w, h
}

// firstLineHeight is the height the first line of text takes when flowed
// at size in width: the whole block when it fits a page, else one line.
func firstLineHeight(text string, size float64, width int64) int64 {
	if h := textHeight(text, size, width, lineAdvance); h <= pageSpan {
		return h
	}
	return textHeight("", size, width, lineAdvance)
}

// itemHeading joins the main text, org and dates into one line, skipping empty parts.
func itemHeading(main, org, dates string) string {
	var parts []string
	if main != "" {
		parts = append(parts, main)
	}
	if org != "" {
		parts = append(parts, org)
	}
	line := strings.Join(parts, " — ")
	if dates != "" {
		if line == "" {
			return dates
		}
		line += " (" + dates + ")"
	}
	return line
}
