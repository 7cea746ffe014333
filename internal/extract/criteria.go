// internal/extract/criteria.go
package extract

import (
	"regexp"
	"strings"
)

// Entry-criteria phrases are collected from every matching pattern, not
// first-match-wins: the reviewer sees the raw, unfiltered list, duplicates
// and noise included.
var entryCriteriaRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:entrants?|participants?|you)\s+must\s+be\s+[^.!?]{3,120}`),
	regexp.MustCompile(`(?i)\bopen\s+(?:only\s+)?to\s+[^.!?]{3,120}`),
	regexp.MustCompile(`(?i)\b(?:aged?\s+)?18\s+years?\s+(?:of\s+age\s+)?(?:or|and)\s+(?:over|older)\b[^.!?]{0,80}`),
	regexp.MustCompile(`(?i)\bresidents?\s+of\s+[^.!?]{3,100}`),
	regexp.MustCompile(`(?i)\bto\s+enter[,\s]+[^.!?]{5,140}`),
	regexp.MustCompile(`(?i)\blimit\s+(?:of\s+)?(?:one|\d+)\s+entr(?:y|ies)\s+[^.!?]{0,100}`),
}

// ExtractEntryCriteria returns every matched entry-condition phrase in
// pattern order.
func ExtractEntryCriteria(text string) []string {
	var criteria []string
	for _, re := range entryCriteriaRes {
		for _, m := range re.FindAllString(text, -1) {
			criteria = append(criteria, strings.TrimSpace(m))
		}
	}
	return criteria
}

var participationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bto\s+(?:enter|participate|be\s+eligible)[,\s]+(?:you\s+(?:must|need\s+to)\s+)?([^.!?]{10,200})`),
	regexp.MustCompile(`(?i)\bentry\s+requirements?\s*:?\s*([^.!?]{10,200})`),
	regexp.MustCompile(`(?i)\b(?:simply|just)\s+((?:follow|like|share|tag|upload|submit|complete|answer)[^.!?]{5,180})`),
}

// ExtractParticipation returns the first participation-requirement sentence
// found, or "" for the assembler to default.
func ExtractParticipation(text string) string {
	rules := make([]rule[string], 0, len(participationRes))
	for _, re := range participationRes {
		rules = append(rules, rule[string]{re, trimmedCapture})
	}
	v, _ := firstMatch(rules, text)
	return v
}

var rulesRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwinners?\s+will\s+be\s+((?:selected|chosen|drawn|judged|picked|determined)[^.!?]{0,200})`),
	regexp.MustCompile(`(?i)\b(?:judged|winners?\s+chosen)\s+(?:on|based\s+on)\s+([^.!?]{5,200})`),
	regexp.MustCompile(`(?i)\bthe\s+(?:most|best)\s+([^.!?]{5,160}\bwins?\b[^.!?]{0,60})`),
}

// ExtractRules returns a winning-method sentence when one is recognisable.
func ExtractRules(text string) string {
	rules := make([]rule[string], 0, len(rulesRes))
	for _, re := range rulesRes {
		rules = append(rules, rule[string]{re, trimmedCapture})
	}
	v, _ := firstMatch(rules, text)
	return v
}

func trimmedCapture(match []string) (string, bool) {
	text := strings.TrimSpace(match[1])
	if text == "" {
		return "", false
	}
	return text, true
}
