// Package analysis expands compact range notation into sets of starting hands.
package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/preflop-advisor/poker"
)

// TotalCombos is the number of two-card combinations in a deck.
const TotalCombos = 1326

// Range is a set of canonical starting hands, indexed by their grid cell.
type Range struct {
	hands [poker.NumStartingHands]bool
	size  int
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{}
}

// ParseRange creates a range from standard poker notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "KTs+", "22-66", "AQ+".
// Parts may be separated by commas or whitespace. Any part that is not
// recognised fails the whole parse.
func ParseRange(notation string) (*Range, error) {
	r := NewRange()

	parts := strings.FieldsFunc(notation, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
	})
	for _, part := range parts {
		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return r, nil
}

// MustParseRange is like ParseRange but panics on error.
func MustParseRange(notation string) *Range {
	r, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// addRangePart adds a single range notation part to the range.
func (r *Range) addRangePart(part string) error {
	if strings.HasSuffix(part, "+") {
		return r.addPlusRange(strings.TrimSuffix(part, "+"))
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}
	return r.addSingleHand(part)
}

// handClass is a parsed "AK", "AKs", "AKo" or "TT" token.
type handClass struct {
	high, low       uint8
	suited, offsuit bool
}

func (c handClass) isPair() bool {
	return c.high == c.low
}

func parseHandClass(notation string) (handClass, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return handClass{}, fmt.Errorf("invalid notation length: %s", notation)
	}

	rank1, ok1 := poker.ParseRank(notation[0])
	rank2, ok2 := poker.ParseRank(notation[1])
	if !ok1 || !ok2 {
		return handClass{}, fmt.Errorf("invalid rank in: %s", notation)
	}
	if rank1 < rank2 {
		rank1, rank2 = rank2, rank1
	}
	c := handClass{high: rank1, low: rank2}

	if c.isPair() {
		if len(notation) == 3 {
			return handClass{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		return c, nil
	}

	if len(notation) == 2 {
		c.suited, c.offsuit = true, true
		return c, nil
	}
	switch notation[2] {
	case 's', 'S':
		c.suited = true
	case 'o', 'O':
		c.offsuit = true
	default:
		return handClass{}, fmt.Errorf("invalid modifier: %c", notation[2])
	}
	return c, nil
}

// add inserts every suitedness of high/low allowed by c.
func (r *Range) add(c handClass, low uint8) {
	if c.high == low {
		r.Add(poker.NewStartingHand(low, low, false))
		return
	}
	if c.suited {
		r.Add(poker.NewStartingHand(c.high, low, true))
	}
	if c.offsuit {
		r.Add(poker.NewStartingHand(c.high, low, false))
	}
}

// addSingleHand adds an exact hand such as "QJs", "KQo", "TT" or "AK".
func (r *Range) addSingleHand(notation string) error {
	c, err := parseHandClass(notation)
	if err != nil {
		return err
	}
	r.add(c, c.low)
	return nil
}

// addPlusRange handles "TT+" (TT through AA) and "A2s+" (A2s through AKs).
func (r *Range) addPlusRange(base string) error {
	c, err := parseHandClass(base)
	if err != nil {
		return err
	}

	if c.isPair() {
		for rank := c.low; rank <= poker.Ace; rank++ {
			r.add(handClass{high: rank, low: rank}, rank)
		}
		return nil
	}

	// The kicker climbs up to one below the fixed high card
	for rank := c.low; rank < c.high; rank++ {
		r.add(c, rank)
	}
	return nil
}

// addDashRange handles "22-66", "99-JJ" and "A5s-A2s".
func (r *Range) addDashRange(notation string) error {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid dash range format")
	}

	start, err := parseHandClass(parts[0])
	if err != nil {
		return err
	}
	end, err := parseHandClass(parts[1])
	if err != nil {
		return err
	}

	if start.isPair() && end.isPair() {
		lower := min(start.low, end.low)
		upper := max(start.low, end.low)
		for rank := lower; rank <= upper; rank++ {
			r.add(handClass{high: rank, low: rank}, rank)
		}
		return nil
	}

	if start.isPair() || end.isPair() || start.high != end.high {
		return fmt.Errorf("unsupported range format: %s", notation)
	}
	if start.suited != end.suited || start.offsuit != end.offsuit {
		return fmt.Errorf("mismatched suitedness in range: %s", notation)
	}

	lower := min(start.low, end.low)
	upper := max(start.low, end.low)
	for rank := lower; rank <= upper; rank++ {
		r.add(start, rank)
	}
	return nil
}

// Add inserts a hand into the range.
func (r *Range) Add(h poker.StartingHand) {
	i := h.Index()
	if !r.hands[i] {
		r.hands[i] = true
		r.size++
	}
}

// Contains reports whether the hand class is in the range.
func (r *Range) Contains(h poker.StartingHand) bool {
	if r == nil {
		return false
	}
	return r.hands[h.Index()]
}

// Size returns the number of hand classes in the range.
func (r *Range) Size() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Combos returns the number of two-card combinations in the range.
func (r *Range) Combos() int {
	total := 0
	for _, h := range r.Hands() {
		total += h.Combos()
	}
	return total
}

// Percent returns the share of all starting combinations covered, 0-100.
func (r *Range) Percent() float64 {
	return float64(r.Combos()) * 100 / TotalCombos
}

// Hands returns the hands in the range, strongest first.
func (r *Range) Hands() []poker.StartingHand {
	if r == nil {
		return nil
	}
	hands := make([]poker.StartingHand, 0, r.size)
	for i, in := range r.hands {
		if in {
			hands = append(hands, poker.StartingHandFromIndex(i))
		}
	}
	slices.SortFunc(hands, poker.StartingHand.Compare)
	return hands
}

// Union returns a new range holding the hands of r and every other range.
func (r *Range) Union(others ...*Range) *Range {
	out := NewRange()
	for _, src := range append([]*Range{r}, others...) {
		if src == nil {
			continue
		}
		for i, in := range src.hands {
			if in {
				out.Add(poker.StartingHandFromIndex(i))
			}
		}
	}
	return out
}

// Equal reports whether both ranges hold the same hands.
func (r *Range) Equal(other *Range) bool {
	if r.Size() != other.Size() {
		return false
	}
	if r == nil || other == nil {
		return true
	}
	return r.hands == other.hands
}

// String lists the hands as canonical, comma separated keys.
func (r *Range) String() string {
	hands := r.Hands()
	keys := make([]string, len(hands))
	for i, h := range hands {
		keys[i] = h.String()
	}
	return strings.Join(keys, ",")
}
