// internal/extract/organizer.go
package extract

import (
	"regexp"
	"strings"
)

// OrganizerFindings holds whatever organizer details the page yields. The
// website always falls back to the scheme and host of the source URL.
type OrganizerFindings struct {
	Name    string
	Website string
	Email   string
}

var (
	organizerNameRe = regexp.MustCompile(`(?i)\b(?:organi[sz]ed|presented|hosted|run|brought\s+to\s+you)\s+by\s+([A-Z][\w&.,'’ -]{2,60})`)
	emailRe         = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractOrganizer recovers organizer name and email from the clean text and
// derives the website from the source page.
func ExtractOrganizer(text string, page *Page) OrganizerFindings {
	f := OrganizerFindings{Website: page.SourceHost()}

	if m := organizerNameRe.FindStringSubmatch(text); m != nil {
		// Trim trailing sentence fragments the greedy class may swallow.
		name := strings.TrimRight(strings.TrimSpace(m[1]), ".,")
		f.Name = name
	}

	if m := emailRe.FindString(text); m != "" {
		f.Email = m
	}

	return f
}
