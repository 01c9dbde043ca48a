package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// Category provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77+, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func (h StartingHand) Category() HoleCardCategory {
	// 2-14 scale
	big := int(h.High) + 2
	small := int(h.Low) + 2

	switch {
	case h.IsPair() && small >= 11:
		return CategoryPremium
	case big == 14 && small == 13:
		return CategoryPremium
	case h.IsPair() && small == 10:
		return CategoryStrong
	case big == 14 && (small == 12 || small == 11):
		return CategoryStrong
	case h.IsPair() && small >= 7:
		return CategoryMedium
	case h.Suited && small >= 10:
		return CategoryMedium
	case h.IsPair():
		return CategoryWeak
	case h.Suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
