package layout

import "context"

// Title renders the opening slide according to st.TitleHint. Hints that
// need a picture fall back to the default layout when none resolves.
func (r *Renderer) Title(ctx context.Context, s TitleSlide, st Style, c Cursor) ([]Page, Cursor, error) {
	p := r.newPager(ctx, KindTitle, st, c)

	switch st.TitleHint {
	case HintLeftPhotoRightText:
		img := r.firstImage(ctx, s.Images, "title photo")
		switch {
		case img != nil:
			p.add(Picture{Frame: photoFrame(), Image: img, Description: "photo"})
			p.add(r.titleText(s, st, Rect{X: Inches(3), Y: Inches(1), W: PageWidth - Inches(3.5), H: Inches(3.5)}, AlignLeft))
		case st.ProfilePhotoPlaceholder:
			p.add(Rectangle{Frame: photoFrame(), Fill: placeholderBG, Opacity: 1})
			p.add(r.titleText(s, st, Rect{X: Inches(3), Y: Inches(1), W: PageWidth - Inches(3.5), H: Inches(3.5)}, AlignLeft))
		default:
			p.add(r.titleText(s, st, defaultTitleFrame(), AlignLeft))
		}

	case HintCenteredBig:
		box := r.titleText(s, st, Rect{X: Inches(1), Y: Inches(1.5), W: PageWidth - Inches(2), H: Inches(4)}, AlignCenter)
		box.Anchor = AnchorMiddle
		p.add(box)

	case HintFullBleedImage:
		img := r.firstImage(ctx, s.Images, "title image")
		if img == nil {
			p.add(r.titleText(s, st, defaultTitleFrame(), AlignLeft))
			break
		}
		p.add(Picture{Frame: FullPage(), Image: img, Description: "cover"})
		caption := TextBox{
			Frame:       Rect{X: Inches(0.5), Y: PageHeight - Inches(2.2), W: PageWidth - Inches(1), H: Inches(1.8)},
			Fill:        Darken(st.Accent, captionDarken),
			FillOpacity: captionOpacity,
			Anchor:      AnchorMiddle,
			Paragraphs:  []Paragraph{run(s.Title, st.titleFont(), st.TitleSize, true, white, AlignLeft)},
		}
		if s.Subtitle != "" {
			caption.Paragraphs = append(caption.Paragraphs, run(s.Subtitle, st.FontBody, st.SubtitleSize, false, white, AlignLeft))
		}
		p.add(caption)

	default:
		p.add(r.titleText(s, st, defaultTitleFrame(), AlignLeft))
	}

	pages, next := p.finish(s.Notes)
	return pages, next, nil
}

func photoFrame() Rect {
	return Rect{X: Inches(0.5), Y: Inches(1), W: Inches(2.2), H: Inches(2.8)}
}

func defaultTitleFrame() Rect {
	return Rect{X: Inches(1), Y: Inches(1.5), W: PageWidth - Inches(2), H: Inches(3)}
}

// titleText is the title paragraph plus an optional subtitle.
func (r *Renderer) titleText(s TitleSlide, st Style, frame Rect, align Align) TextBox {
	box := TextBox{
		Frame:      frame,
		Shrink:     true,
		Paragraphs: []Paragraph{run(s.Title, st.titleFont(), st.TitleSize, true, st.TitleColor(), align)},
	}
	if s.Subtitle != "" {
		box.Paragraphs = append(box.Paragraphs, run(s.Subtitle, st.FontBody, st.SubtitleSize, false, st.BodyColor(), align))
	}
	return box
}
