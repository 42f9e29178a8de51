package layout

import "context"

// Skills splits the list into two columns; the left one takes the extra
// entry when the count is odd.
func (r *Renderer) Skills(ctx context.Context, s ListSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindSkills, st, c)

	heading := s.Title
	if heading == "" {
		heading = "Skills"
	}
	p.add(headingBox(heading, st, Inches(0.4)))

	mid := (len(s.Bullets) + 1) / 2
	columns := []struct {
		items []string
		frame Rect
	}{
		{s.Bullets[:mid], Rect{X: Inches(0.6), Y: Inches(1.2), W: Inches(4.5), H: Inches(4)}},
		{s.Bullets[mid:], Rect{X: Inches(5.2), Y: Inches(1.2), W: Inches(4), H: Inches(4)}},
	}
	for _, col := range columns {
		if len(col.items) == 0 {
			continue
		}
		box := TextBox{Frame: col.frame, Shrink: true}
		for _, item := range col.items {
			box.Paragraphs = append(box.Paragraphs, run(bullet+item, st.FontBody, st.BodySize, false, st.BodyColor(), AlignLeft))
		}
		p.add(box)
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}
