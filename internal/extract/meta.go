// internal/extract/meta.go
package extract

import "strings"

// ExtractTitle looks for a page title in priority order: Open Graph title,
// the <title> element, then a meta title tag. Returns "" when none is set.
func ExtractTitle(page *Page) string {
	if t := page.Meta("og:title"); t != "" {
		return t
	}
	if t := page.TitleTag(); t != "" {
		return t
	}
	return page.Meta("title")
}

// ExtractDescription looks for a page description in meta tags only; the
// paragraph scorer is the assembler's fallback when this returns "".
func ExtractDescription(page *Page) string {
	if d := page.Meta("og:description"); d != "" {
		return d
	}
	return strings.TrimSpace(page.Meta("description"))
}
