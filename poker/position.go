package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Position is a preflop seat label. The zero value is UTG; the set is closed.
type Position uint8

const (
	UTG Position = iota
	MP
	HJ
	CO
	BTN
	SB
	BB
)

// Positions lists every seat in preflop acting order.
var Positions = []Position{UTG, MP, HJ, CO, BTN, SB, BB}

// ErrUnknownPosition is wrapped by ParsePosition failures.
var ErrUnknownPosition = errors.New("unknown position")

var positionNames = [...]string{"UTG", "MP", "HJ", "CO", "BTN", "SB", "BB"}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", p)
}

// Valid reports whether p is one of the seven seats.
func (p Position) Valid() bool {
	return int(p) < len(positionNames)
}

// ParsePosition parses a seat label case-insensitively.
func ParsePosition(s string) (Position, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPosition, s)
}

// PositionNames returns the accepted seat labels.
func PositionNames(ps ...Position) []string {
	if len(ps) == 0 {
		ps = Positions
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return names
}

// CanOpen reports whether the seat can be first into an unopened pot.
func (p Position) CanOpen() bool {
	return p.Valid() && p != BB
}

// postflopOrder places the blinds first to act after the flop.
func (p Position) postflopOrder() int {
	switch p {
	case SB:
		return 0
	case BB:
		return 1
	default:
		return int(p) + 2
	}
}

// InPositionAgainst reports whether p acts after other on every post-flop street.
func (p Position) InPositionAgainst(other Position) bool {
	return p.postflopOrder() > other.postflopOrder()
}

// TableSeat folds seats that share a 3-bet table; HJ uses the MP tables.
func (p Position) TableSeat() Position {
	if p == HJ {
		return MP
	}
	return p
}

// OpenClass groups seats for open sizing.
type OpenClass uint8

const (
	OpenEarly OpenClass = iota
	OpenLate
	OpenBlind
)

func (c OpenClass) String() string {
	switch c {
	case OpenEarly:
		return "early"
	case OpenLate:
		return "late"
	default:
		return "blind"
	}
}

// OpenClass returns the sizing class of the seat.
func (p Position) OpenClass() OpenClass {
	switch p {
	case UTG, MP, HJ:
		return OpenEarly
	case CO, BTN:
		return OpenLate
	default:
		return OpenBlind
	}
}

// ShoveClass groups seats that share a jam/fold range.
type ShoveClass uint8

const (
	ShoveEP ShoveClass = iota
	ShoveMP
	ShoveLP
	ShoveSB
)

// ShoveClasses lists every shove class.
var ShoveClasses = []ShoveClass{ShoveEP, ShoveMP, ShoveLP, ShoveSB}

var shoveClassNames = [...]string{"EP", "MP", "LP", "SB"}

func (c ShoveClass) String() string {
	if int(c) < len(shoveClassNames) {
		return shoveClassNames[c]
	}
	return fmt.Sprintf("ShoveClass(%d)", c)
}

// ParseShoveClass parses "EP", "MP", "LP" or "SB".
func ParseShoveClass(s string) (ShoveClass, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range shoveClassNames {
		if n == name {
			return ShoveClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shove class %q (allowed: %s)", s, strings.Join(shoveClassNames[:], "/"))
}

// ShoveClass maps the seat to its jam/fold class. BB has none since it
// never acts first.
func (p Position) ShoveClass() (ShoveClass, bool) {
	switch p {
	case UTG:
		return ShoveEP, true
	case MP, HJ:
		return ShoveMP, true
	case CO, BTN:
		return ShoveLP, true
	case SB:
		return ShoveSB, true
	default:
		return 0, false
	}
}
