package layout

import "context"

// Contact renders a heading and one plain line per entry.
func (r *Renderer) Contact(ctx context.Context, s ListSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindContact, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Contact"
	}
	p.add(headingBox(heading, st, Inches(0.4)))

	if len(s.Bullets) > 0 {
		box := TextBox{Frame: Rect{X: Inches(0.6), Y: Inches(1.2), W: PageWidth - Inches(1.2), H: Inches(4)}, Shrink: true}
		for _, line := range s.Bullets {
			box.Paragraphs = append(box.Paragraphs, run(line, st.FontBody, st.BodySize, false, st.BodyColor(), AlignLeft))
		}
		p.add(box)
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}
