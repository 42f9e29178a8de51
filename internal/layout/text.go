package layout

import (
	"strings"
	"unicode/utf8"
)

// Text measurement is an estimate: glyphs average half the font size in
// width and lines are 1.2 times the font size tall.
const (
	glyphWidthFactor = 0.5
	lineHeightFactor = 1.2
)

// estimateLines counts wrapped lines for text set at size points in width EMU.
func estimateLines(text string, size float64, width int64) int {
	if size <= 0 || width <= 0 {
		return 1
	}
	perLine := charsPerLine(size, width)

	lines := 0
	for _, para := range strings.Split(text, "\n") {
		lines += wrapCount(para, perLine)
	}
	return max(lines, 1)
}

// wrapCount greedily wraps words; words longer than a line are broken.
func wrapCount(text string, perLine int) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}
	lines, used := 1, 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		for n > perLine {
			if used > 0 {
				lines++
			}
			n -= perLine
			used = perLine
		}
		switch {
		case used == 0:
			used = n
		case used+1+n <= perLine:
			used += 1 + n
		default:
			lines++
			used = n
		}
	}
	return lines
}

// textHeight is the estimated height of text, never below minHeight.
func textHeight(text string, size float64, width, minHeight int64) int64 {
	lines := estimateLines(text, size, width)
	h := int64(float64(lines) * size * lineHeightFactor * float64(EMUPerPoint))
	return max(h, minHeight)
}

// charsPerLine is the estimated glyph capacity of one line, at least one.
func charsPerLine(size float64, width int64) int {
	return max(int(float64(width)/(size*glyphWidthFactor*float64(EMUPerPoint))), 1)
}

// linesIn is how many lines at size fit in span.
func linesIn(span int64, size float64) int {
	if size <= 0 || span <= 0 {
		return 0
	}
	return int(float64(span) / (size * lineHeightFactor * float64(EMUPerPoint)))
}

// wrappedLine is one estimated display line; last marks a paragraph end.
type wrappedLine struct {
	text string
	last bool
}

// wrapLines greedily wraps text into estimated display lines, breaking
// words longer than a line.
func wrapLines(text string, perLine int) []wrappedLine {
	var out []wrappedLine
	for _, para := range strings.Split(text, "\n") {
		var cur []rune
		flush := func() {
			out = append(out, wrappedLine{text: string(cur)})
			cur = cur[:0:0]
		}
		for _, w := range strings.Fields(para) {
			word := []rune(w)
			for len(word) > perLine {
				if len(cur) > 0 {
					flush()
				}
				cur = append(cur, word[:perLine]...)
				flush()
				word = word[perLine:]
			}
			switch {
			case len(word) == 0:
			case len(cur) == 0:
				cur = append(cur, word...)
			case len(cur)+1+len(word) <= perLine:
				cur = append(append(cur, ' '), word...)
			default:
				flush()
				cur = append(cur, word...)
			}
		}
		if len(cur) > 0 || len(out) == 0 || out[len(out)-1].last {
			flush()
		}
		out[len(out)-1].last = true
	}
	return out
}

// splitText cuts text into chunks of estimated lines: the first holds at
// most first lines, the others at most rest. A first below one uses rest.
func splitText(text string, size float64, width int64, first, rest int) []string {
	rest = max(rest, 1)
	if first < 1 {
		first = rest
	}
	if size <= 0 || width <= 0 {
		return []string{text}
	}
	lines := wrapLines(text, charsPerLine(size, width))
	if len(lines) <= first {
		return []string{text}
	}

	var chunks []string
	for start, n := 0, first; start < len(lines); start, n = start+n, rest {
		end := min(start+n, len(lines))
		var b strings.Builder
		for i := start; i < end; i++ {
			b.WriteString(lines[i].text)
			if i == end-1 {
				break
			}
			if lines[i].last {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		chunks = append(chunks, b.String())
	}
	return chunks
}
