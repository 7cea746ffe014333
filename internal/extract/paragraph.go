// internal/extract/paragraph.go
package extract

import (
	"regexp"
	"strings"
)

// Scoring vocabularies for the fallback description picker. Competition
// vocabulary attracts, navigation boilerplate repels.
var (
	topicKeywords = []string{
		"competition", "contest", "win", "prize", "enter", "entry",
		"giveaway", "winner", "draw", "entrant",
	}
	boilerplateKeywords = []string{
		"menu", "footer", "login", "sign in", "cookie", "navigation",
		"copyright", "subscribe to our", "newsletter", "privacy policy",
	}
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)

// BestParagraph picks the paragraph most likely to describe the competition.
// Used only when no meta description is available. Paragraphs are scored
// first; when none reaches the acceptance threshold the same scorer runs over
// individual sentences, and the final fallback is the literal first paragraph
// truncated to 500 characters.
func BestParagraph(paragraphs []string) string {
	if len(paragraphs) == 0 {
		return ""
	}

	if best, score := highestScoring(paragraphs); score >= 2 {
		return best
	}

	var sentences []string
	for _, p := range paragraphs {
		for _, s := range sentenceSplitRe.Split(p, -1) {
			if s = strings.TrimSpace(s); s != "" {
				sentences = append(sentences, s)
			}
		}
	}
	if best, score := highestScoring(sentences); score >= 2 {
		return best
	}

	first := paragraphs[0]
	if len(first) > 500 {
		first = first[:500] + "..."
	}
	return first
}

// highestScoring returns the best-scoring candidate and its score.
func highestScoring(candidates []string) (string, int) {
	best := ""
	bestScore := -1 << 31
	for _, c := range candidates {
		if score := scoreCandidate(c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore
}

// scoreCandidate rates one paragraph or sentence: +2 per topic keyword
// occurrence, -3 per boilerplate keyword occurrence, +1 for each of the two
// length thresholds, +1 for terminal punctuation.
func scoreCandidate(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range topicKeywords {
		score += 2 * strings.Count(lower, kw)
	}
	for _, kw := range boilerplateKeywords {
		score -= 3 * strings.Count(lower, kw)
	}
	if len(text) > 100 {
		score++
	}
	if len(text) > 200 {
		score++
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		score++
	}
	return score
}
