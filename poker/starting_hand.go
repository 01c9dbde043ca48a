package poker

import (
	"fmt"
	"strings"
)

// NumStartingHands is the number of distinct preflop hand classes.
const NumStartingHands = NumRanks * NumRanks

// StartingHand is a canonical preflop hand class such as "AKs", "AJo" or "TT".
// High is always >= Low; Suited is false for pairs.
type StartingHand struct {
	High   uint8
	Low    uint8
	Suited bool
}

// InvalidHandError reports hand text that matches neither the shorthand
// ("AKs", "AJo", "TT") nor the explicit card ("AhKh") grammar.
type InvalidHandError struct {
	Input  string
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand %q: %s (examples: AKs, AJo, 22, AhKh)", e.Input, e.Reason)
}

// NewStartingHand builds a canonical hand from two ranks in either order.
// The suited flag is ignored for pairs.
func NewStartingHand(r1, r2 uint8, suited bool) StartingHand {
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		suited = false
	}
	return StartingHand{High: r1, Low: r2, Suited: suited}
}

// ParseStartingHand normalizes shorthand ("AJo", "KA", "77") or explicit
// cards ("AhKh") into a StartingHand. Shorthand without a marker is offsuit.
func ParseStartingHand(text string) (StartingHand, error) {
	s := strings.TrimSpace(text)
	switch len(s) {
	case 2, 3:
		return parseShorthand(text, s)
	case 4:
		return parseExplicit(text, s)
	default:
		return StartingHand{}, &InvalidHandError{Input: text, Reason: "expected 2-3 rank characters or two cards"}
	}
}

// MustParseStartingHand is like ParseStartingHand but panics on error.
func MustParseStartingHand(text string) StartingHand {
	h, err := ParseStartingHand(text)
	if err != nil {
		panic(err)
	}
	return h
}

func parseShorthand(input, s string) (StartingHand, error) {
	r1, ok1 := ParseRank(s[0])
	r2, ok2 := ParseRank(s[1])
	if !ok1 || !ok2 {
		return StartingHand{}, &InvalidHandError{Input: input, Reason: "unknown rank"}
	}

	suited := false
	if len(s) == 3 {
		switch s[2] {
		case 's', 'S':
			suited = true
		case 'o', 'O':
		default:
			return StartingHand{}, &InvalidHandError{Input: input, Reason: fmt.Sprintf("unknown suitedness marker %q", s[2])}
		}
		if r1 == r2 {
			return StartingHand{}, &InvalidHandError{Input: input, Reason: "a pair cannot be suited or offsuit"}
		}
	}

	return NewStartingHand(r1, r2, suited), nil
}

func parseExplicit(input, s string) (StartingHand, error) {
	c1, err := ParseCard(s[:2])
	if err != nil {
		return StartingHand{}, &InvalidHandError{Input: input, Reason: err.Error()}
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return StartingHand{}, &InvalidHandError{Input: input, Reason: err.Error()}
	}
	if c1 == c2 {
		return StartingHand{}, &InvalidHandError{Input: input, Reason: "the same card appears twice"}
	}
	return NewStartingHand(c1.Rank(), c2.Rank(), c1.Suit() == c2.Suit()), nil
}

// IsPair reports whether both cards share a rank.
func (h StartingHand) IsPair() bool {
	return h.High == h.Low
}

// String returns the canonical key: "TT", "AKs" or "AJo".
func (h StartingHand) String() string {
	b := []byte{RankChar(h.High), RankChar(h.Low)}
	switch {
	case h.IsPair():
	case h.Suited:
		b = append(b, 's')
	default:
		b = append(b, 'o')
	}
	return string(b)
}

// Index returns the hand's cell in the 13x13 grid (row-major, aces
// top-left, suited hands above the diagonal) as a value in [0,169).
func (h StartingHand) Index() int {
	row, col := h.GridPosition()
	return row*NumRanks + col
}

// GridPosition returns the row and column of the hand in the 13x13 grid.
func (h StartingHand) GridPosition() (row, col int) {
	hi := int(Ace - h.High)
	lo := int(Ace - h.Low)
	if h.Suited {
		return hi, lo
	}
	return lo, hi
}

// StartingHandFromIndex is the inverse of StartingHand.Index.
func StartingHandFromIndex(i int) StartingHand {
	row, col := i/NumRanks, i%NumRanks
	r1 := Ace - uint8(row)
	r2 := Ace - uint8(col)
	return NewStartingHand(r1, r2, col > row)
}

// Combos returns the number of concrete two-card combinations of the hand.
func (h StartingHand) Combos() int {
	switch {
	case h.IsPair():
		return 6
	case h.Suited:
		return 4
	default:
		return 12
	}
}

// Compare orders hands strongest first: pairs by rank, then by high card,
// kicker, and suited before offsuit. It returns a negative number when h
// sorts before other.
func (h StartingHand) Compare(other StartingHand) int {
	if h.IsPair() != other.IsPair() {
		if h.IsPair() {
			return -1
		}
		return 1
	}
	if h.High != other.High {
		return int(other.High) - int(h.High)
	}
	if h.Low != other.Low {
		return int(other.Low) - int(h.Low)
	}
	if h.Suited != other.Suited {
		if h.Suited {
			return -1
		}
		return 1
	}
	return 0
}
