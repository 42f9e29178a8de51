package normalize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parts is the slide-relevant content of a canonical markup fragment.
type Parts struct {
	Title      string   // first non-empty h1-h4
	Bullets    []string // li texts, in document order
	Paragraphs []string // p texts excluding notes
	Notes      []string // p.notes texts
	Text       string   // all visible text, whitespace collapsed
}

// ExtractParts walks a markup fragment and collects its headings, list
// items, paragraphs and speaker notes. Malformed markup is parsed leniently.
func ExtractParts(markup string) Parts {
	var parts Parts

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		parts.Text = collapse(markup)
		return parts
	}

	var all []string
	for _, n := range nodes {
		collect(n, &parts)
		all = append(all, textOf(n))
	}
	parts.Text = collapse(strings.Join(all, " "))
	return parts
}

func collect(n *html.Node, parts *Parts) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4:
			if parts.Title == "" {
				parts.Title = collapse(textOf(n))
			}
			return
		case atom.Li:
			if t := collapse(textOf(n)); t != "" {
				parts.Bullets = append(parts.Bullets, t)
			}
			return
		case atom.P:
			t := collapse(textOf(n))
			if t == "" {
				return
			}
			if hasClass(n, "notes") {
				parts.Notes = append(parts.Notes, t)
			} else {
				parts.Paragraphs = append(parts.Paragraphs, t)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, parts)
	}
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textOf(c))
		if c.Type == html.ElementNode && isBlock(c.DataAtom) {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.P, atom.Li, atom.Ul, atom.Ol, atom.Div, atom.Br:
		return true
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
