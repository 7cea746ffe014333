// internal/extract/prize.go
package extract

import (
	"regexp"
	"strings"
)

// PrizeFindings holds the two independent prize extraction outputs: the
// monetary token exactly as written on the page (never parsed to a number)
// and a free-text description.
type PrizeFindings struct {
	TotalPrize       string
	PrizeDescription string
}

const moneyToken = `\$[\d,]+(?:\.\d{2})?`

var (
	anchoredMoneyRe = regexp.MustCompile(`(?i)\b(?:prizes?|rewards?|valued?|worth)\b[^$]{0,40}?(` + moneyToken + `)`)
	tripWorthRe     = regexp.MustCompile(`(?i)\btrip\s+worth\b[^$]{0,20}?(` + moneyToken + `)`)
	voucherMoneyRe  = regexp.MustCompile(`(?i)\b(?:gift\s*cards?|vouchers?)\b[^$]{0,40}?(` + moneyToken + `)`)

	majorPrizeRe  = regexp.MustCompile(`(?i)\b(?:major|grand|first)\s+prize\s*:?\s*([^.!?]{1,200})`)
	willReceiveRe = regexp.MustCompile(`(?i)\bwinners?\s+will\s+receive\s+([^.!?]{1,200})`)
	tripToRe      = regexp.MustCompile(`(?i)\b(trip\s+to\s+[^.!?]{1,160})`)
	giftCardsRe   = regexp.MustCompile(`(?i)\b(gift\s*cards?\s+[^.!?]{1,160})`)
	minorPrizeRe  = regexp.MustCompile(`(?i)\b(?:minor|additional|runner[- ]up)\s+prizes?\s*:?\s*([^.!?]{1,200})`)
	valuedAtRe    = regexp.MustCompile(`(?i)\b(?:valued?\s+at|worth|includes)\s+([^.!?]{1,200})`)

	prizeContextRe = regexp.MustCompile(`(?i).{0,100}\b(?:prize|win)\b.{0,100}`)
)

// boilerplate phrases that disqualify a descriptive match.
var prizeNoise = []string{"click here", "read more"}

// ExtractPrize runs the monetary and descriptive cascades over the clean
// text. Either or both outputs may be empty.
func ExtractPrize(text string) PrizeFindings {
	var f PrizeFindings

	if v, ok := firstMatch(moneyRules(), text); ok {
		f.TotalPrize = v
	}
	if v, ok := firstMatch(descriptionRules(), text); ok {
		f.PrizeDescription = v
	} else if m := prizeContextRe.FindString(text); m != "" {
		// Loose fallback: a context window around any prize/win mention.
		window := strings.TrimSpace(m)
		if len(window) >= 30 && !containsNoise(window) {
			f.PrizeDescription = window
		}
	}

	return f
}

func moneyRules() []rule[string] {
	return []rule[string]{
		{anchoredMoneyRe, captured(1)},
		{tripWorthRe, captured(1)},
		{voucherMoneyRe, captured(1)},
	}
}

func descriptionRules() []rule[string] {
	res := []*regexp.Regexp{
		majorPrizeRe,
		willReceiveRe,
		tripToRe,
		giftCardsRe,
		minorPrizeRe,
		valuedAtRe,
	}
	rules := make([]rule[string], 0, len(res))
	for _, re := range res {
		rules = append(rules, rule[string]{re, describedPrize})
	}
	return rules
}

// describedPrize accepts a descriptive candidate only when it is long enough
// to be informative and free of navigation boilerplate.
func describedPrize(match []string) (string, bool) {
	text := strings.TrimSpace(match[1])
	if len(text) < 15 || containsNoise(text) {
		return "", false
	}
	return text, true
}

func containsNoise(s string) bool {
	lower := strings.ToLower(s)
	for _, phrase := range prizeNoise {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
