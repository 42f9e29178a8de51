package layout

import "context"

const bullet = "• "

// Summary renders a bullet list under a heading. With the accent strip
// hint the heading sits on a full-width accent band.
func (r *Renderer) Summary(ctx context.Context, s ListSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindSummary, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Summary"
	}

	if st.SummaryHint == HintAccentStrip {
		onStrip := darkText
		if IsDark(st.Accent) {
			onStrip = white
		}
		p.add(Rectangle{Frame: Rect{Y: Inches(0.3), W: PageWidth, H: Inches(0.6)}, Fill: st.Accent, Opacity: 1})
		p.add(TextBox{
			Frame:      Rect{X: Inches(0.5), Y: Inches(0.3), W: PageWidth - Inches(1), H: Inches(0.6)},
			Anchor:     AnchorMiddle,
			Paragraphs: []Paragraph{run(heading, st.titleFont(), st.HeadingSize, true, onStrip, AlignLeft)},
		})
	} else {
		p.add(headingBox(heading, st, Inches(0.3)))
	}

	body := TextBox{
		Frame:  Rect{X: Inches(0.7), Y: Inches(1.2), W: PageWidth - Inches(1.4), H: PageHeight - Inches(2.2)},
		Shrink: true,
	}
	for _, b := range s.Bullets {
		body.Paragraphs = append(body.Paragraphs, run(bullet+b, st.FontBody, st.BodySize, false, st.BodyColor(), AlignLeft))
	}
	if len(body.Paragraphs) > 0 {
		p.add(body)
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}

// headingBox is the slide heading used by list and item slides.
func headingBox(text string, st Style, y int64) TextBox {
	return TextBox{
		Frame:      Rect{X: Inches(0.5), Y: y, W: PageWidth - Inches(1), H: Inches(0.6)},
		Paragraphs: []Paragraph{run(text, st.titleFont(), st.HeadingSize, true, st.TitleColor(), AlignLeft)},
	}
}
