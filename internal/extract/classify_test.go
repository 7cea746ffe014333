// internal/extract/classify_test.go
package extract

import "testing"

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"purchase keyword", "Spend $20 in store and keep your receipt to enter", CategoryPurchaseRequired},
		{"medium barrier", "An entry fee of $5 applies to all entrants", CategoryBarrierMedium},
		{"low barrier", "Follow us on Instagram and tag a friend", CategoryBarrierLow},
		{"open entry", "Answer the question below and you are in the running", CategoryOpenFree},
		{"purchase beats social", "Follow us and provide your proof of purchase required to claim", CategoryPurchaseRequired},
		{"social after purchase wording order", "purchase required and also follow us", CategoryPurchaseRequired},
		{"medium beats low", "Membership required; like and share to boost your chances", CategoryBarrierMedium},
		{"empty text", "", CategoryOpenFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCategory(tt.text); got != tt.want {
				t.Errorf("ClassifyCategory(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyGameType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want GameType
	}{
		{"default is skill", "Submit your best photo, judged on creativity", GameOfSkill},
		{"random draw", "Winners selected in a random draw", GameOfLuck},
		{"raffle", "Enter our raffle today", GameOfLuck},
		{"luck overrides skill wording", "A game of skill decided by lottery", GameOfLuck},
		{"empty text", "", GameOfSkill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyGameType(tt.text); got != tt.want {
				t.Errorf("ClassifyGameType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifierOutputsAreAlwaysValid(t *testing.T) {
	inputs := []string{"", "x", "free free free", "buy draw follow entry fee"}

	for _, input := range inputs {
		category := ClassifyCategory(input)
		valid := false
		for _, c := range ValidCategories() {
			if category == c {
				valid = true
			}
		}
		if !valid {
			t.Errorf("ClassifyCategory(%q) produced unknown value %q", input, category)
		}

		game := ClassifyGameType(input)
		if game != GameOfSkill && game != GameOfLuck {
			t.Errorf("ClassifyGameType(%q) produced unknown value %q", input, game)
		}
	}
}
