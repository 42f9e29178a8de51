// Package normalize converts loosely structured generator output into
// canonical markup: headings, paragraphs and lists only.
//
// # Fallback Chain
//
// Normalize runs an ordered chain of stages; the first stage whose output
// still carries visible text after sanitizing wins:
//
//	structured  - JSON object or array (html field, title/bullets, paragraphs)
//	markup      - fence-stripped text that already looks like HTML
//	plain       - sentence split, wrapped as heading + list or paragraphs
//
// Every result passes the allow-list sanitizer (h1-h4, p, ul, ol, li and the
// "notes" class on p). A stage that panics sends the chain straight to the
// plain stage, and a chain that yields nothing produces a placeholder, so
// Normalize never fails and never returns empty markup.
package normalize
