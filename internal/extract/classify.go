// internal/extract/classify.go
package extract

import "strings"

// Keyword vocabularies for the barrier classifier, in tier priority order.
// The first tier with any keyword present wins; there is no numeric scoring
// and no unknown state.
var (
	purchaseKeywords = []string{
		"purchase", "buy", "spend", "receipt", "proof of purchase",
	}
	mediumBarrierKeywords = []string{
		"entry fee", "membership", "subscription", "premium",
	}
	lowBarrierKeywords = []string{
		"follow", "like", "subscribe", "share", "tag", "sign up",
		"facebook", "instagram", "twitter", "tiktok", "youtube",
	}

	luckKeywords = []string{
		"random", "draw", "lottery", "raffle", "sweepstake", "chance", "luck",
	}
)

// ClassifyCategory assigns the entry-barrier category by keyword presence
// over the lowercase clean text. Purchase signals outrank medium-barrier
// signals, which outrank social-action signals; anything else is open entry.
func ClassifyCategory(text string) Category {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, purchaseKeywords):
		return CategoryPurchaseRequired
	case containsAny(lower, mediumBarrierKeywords):
		return CategoryBarrierMedium
	case containsAny(lower, lowBarrierKeywords):
		return CategoryBarrierLow
	default:
		return CategoryOpenFree
	}
}

// ClassifyGameType defaults to skill and switches to luck when any
// chance-related keyword appears. Luck keywords strictly override skill
// phrasing.
func ClassifyGameType(text string) GameType {
	if containsAny(strings.ToLower(text), luckKeywords) {
		return GameOfLuck
	}
	return GameOfSkill
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
