package report

import (
	"fmt"
	"strings"
)

const fallbackFont = "sans-serif"

// printScale maps slide point sizes to Letter paper.
const printScale = 0.75

// ThemeCSS appends rules for the theme to a base stylesheet.
func ThemeCSS(base string, th Theme) string {
	var b strings.Builder
	b.WriteString(base)

	body := fontStack(th.FontBody)
	title := fontStack(th.FontTitle)
	if th.FontTitle == "" {
		title = body
	}

	fmt.Fprintf(&b, "\n/* Theme */\nhtml {\n  font-family: %s;\n", body)
	if th.BodySize > 0 {
		fmt.Fprintf(&b, "  font-size: %.1fpt;\n", th.BodySize*printScale)
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, "h1, h2, h3, h4, .cover-title {\n  font-family: %s;\n", title)
	if th.Accent != "" {
		fmt.Fprintf(&b, "  color: %s;\n", th.Accent)
	}
	b.WriteString("}\n")

	if th.HeadingSize > 0 {
		fmt.Fprintf(&b, "h2 {\n  font-size: %.1fpt;\n}\n", th.HeadingSize*printScale)
	}
	if th.Accent != "" {
		fmt.Fprintf(&b, "h1 {\n  border-bottom: 2px solid %s;\n}\n", th.Accent)
	}
	return b.String()
}

// fontStack quotes a family name and appends a generic fallback.
func fontStack(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackFont
	}
	return `"` + escapeCSSString(name) + `", ` + fallbackFont
}

// escapeCSSString escapes a value for use inside a quoted CSS string.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// sanitizeCSS keeps the stylesheet from closing its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
