package normalize

// plainStage wraps prose as heading plus list (slide) or paragraphs (report).
// Zero sentences fall back to the whole cleaned text as one item.
func plainStage(in input) string {
	if in.cleaned == "" {
		return ""
	}

	sentences := splitSentences(in.cleaned)

	var b builder
	b.element("h2", in.heading())

	if in.kind == Slide {
		items := slideItems(sentences, maxSlideItems)
		if len(items) == 0 {
			items = []string{in.cleaned}
		}
		b.list(items)
		return b.String()
	}

	paras := groupParagraphs(sentences, sentencesPerPara, maxReportParagraphs)
	if len(paras) == 0 {
		paras = []string{in.cleaned}
	}
	for _, p := range paras {
		b.element("p", p)
	}
	return b.String()
}
