// internal/extract/normalize.go
package extract

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// CleanText reduces raw HTML to a single plain-text blob: script and style
// blocks removed, all remaining tags stripped, entities decoded, unicode
// compatibility-normalized, and runs of whitespace collapsed to one space.
// All text-pattern extractors consume this form. Always returns a string,
// possibly empty.
func CleanText(rawHTML string) string {
	text := scriptBlockRe.ReplaceAllString(rawHTML, " ")
	text = styleBlockRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = norm.NFKC.String(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Paragraphs splits raw HTML into plain-text paragraphs. Block-level tag
// boundaries and blank lines both act as separators, so the paragraph scorer
// sees roughly the same units a reader would.
func Paragraphs(rawHTML string) []string {
	text := scriptBlockRe.ReplaceAllString(rawHTML, "\n\n")
	text = styleBlockRe.ReplaceAllString(text, "\n\n")
	text = blockTagRe.ReplaceAllString(text, "\n\n")
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = norm.NFKC.String(text)

	var paragraphs []string
	for _, chunk := range paragraphSplitRe.Split(text, -1) {
		p := strings.TrimSpace(whitespaceRe.ReplaceAllString(chunk, " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

var (
	blockTagRe       = regexp.MustCompile(`(?i)</?(?:p|div|br|li|ul|ol|h[1-6]|section|article|tr|table)\b[^>]*>`)
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
)
