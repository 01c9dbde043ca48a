package poker

import (
	"testing"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		card1    string
		card2    string
		expected HoleCardCategory
	}{
		// Premium hands
		{"Pocket Aces", "As", "Ah", CategoryPremium},
		{"Pocket Kings", "Kh", "Kd", CategoryPremium},
		{"Pocket Queens", "Qc", "Qs", CategoryPremium},
		{"Pocket Jacks", "Jh", "Jd", CategoryPremium},
		{"Ace King suited", "As", "Ks", CategoryPremium},
		{"Ace King offsuit", "Ac", "Kh", CategoryPremium},

		// Strong hands
		{"Pocket Tens", "Tc", "Th", CategoryStrong},
		{"Ace Queen suited", "As", "Qs", CategoryStrong},
		{"Ace Queen offsuit", "Ac", "Qh", CategoryStrong},
		{"Ace Jack suited", "As", "Js", CategoryStrong},
		{"Ace Jack offsuit", "Ad", "Jc", CategoryStrong},

		// Medium hands
		{"Pocket Nines", "9c", "9h", CategoryMedium},
		{"Pocket Eights", "8d", "8s", CategoryMedium},
		{"Pocket Sevens", "7h", "7c", CategoryMedium},
		{"King Queen suited", "Ks", "Qs", CategoryMedium},
		{"King Jack suited", "Kh", "Jh", CategoryMedium},
		{"Queen Jack suited", "Qd", "Jd", CategoryMedium},

		// Weak hands
		{"Pocket Sixes", "6c", "6h", CategoryWeak},
		{"Pocket Fives", "5d", "5s", CategoryWeak},
		{"Pocket Fours", "4h", "4c", CategoryWeak},
		{"Pocket Threes", "3s", "3d", CategoryWeak},
		{"Pocket Twos", "2c", "2h", CategoryWeak},
		{"Suited connectors 76s", "7h", "6h", CategoryWeak},
		{"Suited connectors 54s", "5d", "4d", CategoryWeak},

		// Trash hands
		{"Seven Two offsuit", "7c", "2h", CategoryTrash},
		{"Nine Three offsuit", "9d", "3s", CategoryTrash},
		{"Jack Four offsuit", "Jh", "4c", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := ParseStartingHand(tt.card1 + tt.card2)
			if err != nil {
				t.Fatalf("Failed to parse hand: %v", err)
			}

			result := hand.Category()
			if result != tt.expected {
				t.Errorf("Category(%s%s) = %s, want %s",
					tt.card1, tt.card2, result, tt.expected)
			}
		})
	}
}

func TestCategoryFromShorthand(t *testing.T) {
	tests := map[string]HoleCardCategory{
		"AA":  CategoryPremium,
		"AKo": CategoryPremium,
		"ATs": CategoryMedium,
		"JTs": CategoryMedium,
		"T8s": CategoryWeak,
		"72o": CategoryTrash,
		"K2s": CategoryTrash,
	}

	for text, expected := range tests {
		hand := MustParseStartingHand(text)
		if got := hand.Category(); got != expected {
			t.Errorf("Category(%s) = %s, want %s", text, got, expected)
		}
	}
}
