// internal/extract/assets.go
package extract

import "strings"

// Image sources containing any of these substrings are treated as site
// chrome, not competition artwork.
var chromeImageHints = []string{"icon", "logo", "favicon"}

// ExtractThumbnail resolves the page image in priority order: Open Graph
// image, Twitter card image, then the first <img> that does not look like
// site chrome. Relative URLs are resolved against the source page URL.
func ExtractThumbnail(page *Page) string {
	if src := page.Meta("og:image"); src != "" {
		return page.ResolveURL(src)
	}
	if src := page.Meta("twitter:image"); src != "" {
		return page.ResolveURL(src)
	}
	for _, src := range page.Images() {
		lower := strings.ToLower(src)
		if containsAny(lower, chromeImageHints) {
			continue
		}
		return page.ResolveURL(src)
	}
	return ""
}

// Href substrings identifying a terms-and-conditions style page.
var termsHrefHints = []string{"terms", "conditions", "rules", "legal", "privacy"}

// ExtractTermsURL returns the absolute URL of the first anchor that links to
// a terms/conditions/rules page, or "".
func ExtractTermsURL(page *Page) string {
	for _, a := range page.Anchors() {
		lower := strings.ToLower(a.Href)
		if containsAny(lower, termsHrefHints) {
			return page.ResolveURL(a.Href)
		}
	}
	return ""
}
