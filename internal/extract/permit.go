// internal/extract/permit.go
package extract

import (
	"regexp"
	"strings"
)

// Australian trade-promotion permit references, e.g. "NSW Permit No.
// TP/01234", "ACT TP 23/01234", "Authorised under SA Licence T23/456".
var permitRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:permit|licence|license|authority)\s+(?:no\.?|number|#)\s*:?\s*([A-Z]{0,4}[\s/]?[\dA-Z][\w/.-]{2,24})`),
	regexp.MustCompile(`(?i)\b(NSW|ACT|SA|VIC)\s+(?:TP|permit)\s*[./]?\s*(\d[\d/.-]{2,14})`),
	regexp.MustCompile(`(?i)\bauthoris[e]?d\s+under\s+([^.!?]{5,80}(?:permit|licence|license)[^.!?]{0,40})`),
}

// ExtractPermit returns the first permit or licence reference found in the
// clean text, or "".
func ExtractPermit(text string) string {
	for _, re := range permitRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// State-prefixed form captures the state and number separately.
		if len(m) == 3 && m[2] != "" {
			return strings.TrimSpace(strings.ToUpper(m[1]) + " " + m[2])
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return ""
}
