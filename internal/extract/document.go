// internal/extract/document.go
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page wraps a parsed HTML document together with the URL it was fetched
// from, so relative references can be resolved against the source page.
type Page struct {
	doc     *goquery.Document
	baseURL *url.URL
	rawHTML string
}

// NewPage parses raw HTML into a Page. The source URL must be absolute.
func NewPage(rawHTML, sourceURL string) (*Page, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("source URL must be absolute: %s", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Page{
		doc:     doc,
		baseURL: base,
		rawHTML: rawHTML,
	}, nil
}

// SourceURL returns the absolute URL the page was fetched from.
func (p *Page) SourceURL() string {
	return p.baseURL.String()
}

// SourceHost returns the scheme and host of the source URL, used as the
// default organizer website.
func (p *Page) SourceHost() string {
	return p.baseURL.Scheme + "://" + p.baseURL.Host
}

// RawHTML returns the unmodified fetched markup.
func (p *Page) RawHTML() string {
	return p.rawHTML
}

// Meta returns the content of the first meta tag whose name or property
// attribute matches key, e.g. "og:title" or "description".
func (p *Page) Meta(key string) string {
	var content string
	p.doc.Find("meta").EachWithBreak(func(i int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		property, _ := s.Attr("property")
		if !strings.EqualFold(name, key) && !strings.EqualFold(property, key) {
			return true
		}
		if c, ok := s.Attr("content"); ok && strings.TrimSpace(c) != "" {
			content = strings.TrimSpace(c)
			return false
		}
		return true
	})
	return content
}

// TitleTag returns the trimmed text of the document <title> element.
func (p *Page) TitleTag() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// Images returns the src attribute of every <img> in document order.
func (p *Page) Images() []string {
	var srcs []string
	p.doc.Find("img[src]").Each(func(i int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && strings.TrimSpace(src) != "" {
			srcs = append(srcs, strings.TrimSpace(src))
		}
	})
	return srcs
}

// Anchor holds one hyperlink from the page.
type Anchor struct {
	Href string
	Text string
}

// Anchors returns every <a href> on the page in document order.
func (p *Page) Anchors() []Anchor {
	var anchors []Anchor
	p.doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		anchors = append(anchors, Anchor{
			Href: href,
			Text: strings.TrimSpace(s.Text()),
		})
	})
	return anchors
}

// ResolveURL resolves a possibly-relative reference against the source page
// URL. Returns the input unchanged when it cannot be parsed.
func (p *Page) ResolveURL(ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return p.baseURL.ResolveReference(u).String()
}
