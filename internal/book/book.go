// Package book holds the preflop rule book: stack-bucketed range tables for
// opening, jam/fold, 3-betting and BB-versus-SB defense. A Book is built
// once from a Config and is read-only afterwards, so it can be shared freely
// between goroutines.
package book

import (
	"fmt"
	"slices"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/poker"
)

// Book is the expanded, immutable rule book.
type Book struct {
	autoShoveMaxStack    float64
	blindDefenseMaxStack float64

	open     []*OpenTier     // deepest first
	shove    []*ShoveTier    // shallowest first, unbounded last
	threeBet []*ThreeBetTier // deepest first
	defense  []*DefenseTier  // shallowest first
}

// OpenTier is the unopened-pot table for one stack bucket.
type OpenTier struct {
	Name     string
	MinStack float64
	ranges   map[poker.Position]*analysis.Range
	sizing   map[poker.OpenClass]float64
}

// ShoveTier is the jam/fold table for one stack bucket.
type ShoveTier struct {
	Name     string
	MaxStack float64 // zero when unbounded
	ranges   map[poker.ShoveClass]*analysis.Range
}

// ThreeBetTier is the facing-an-open table for one stack bucket.
type ThreeBetTier struct {
	Name        string
	MinStack    float64
	MostlyShove bool
	Shove       *analysis.Range
	LightShove  *analysis.Range
	SizingIP    Sizing
	SizingOOP   Sizing
	cells       map[matchupKey]*Matchup
}

// Sizing is a 3-bet size as a multiple of the opener's raise.
type Sizing struct {
	Low, High float64
}

func (s Sizing) String() string {
	if s.Low == s.High {
		return fmt.Sprintf("%.1fx the open", s.Low)
	}
	return fmt.Sprintf("%.1fx-%.1fx the open", s.Low, s.High)
}

// Matchup holds the 3-bet ranges of one hero seat against one opener seat.
type Matchup struct {
	Hero   poker.Position
	Opener poker.Position
	Value  *analysis.Range
	Bluff  *analysis.Range
}

type matchupKey struct {
	hero, opener poker.Position
}

// DefenseTier is the BB call range against an SB open for one stack bucket.
type DefenseTier struct {
	Name     string
	MaxStack float64
	Call     *analysis.Range
}

// Default builds the built-in rule book.
func Default() (*Book, error) {
	return New(DefaultConfig())
}

// MustDefault is like Default but panics if the built-in book is malformed.
func MustDefault() *Book {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads an HCL rule book (see LoadConfig) and builds it.
func Load(filename string) (*Book, error) {
	cfg, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New validates cfg and expands every range notation in it. Any malformed
// token fails the whole build.
func New(cfg *Config) (*Book, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule book: %w", err)
	}

	b := &Book{
		autoShoveMaxStack:    cfg.Thresholds.AutoShoveMaxStack,
		blindDefenseMaxStack: cfg.Thresholds.BlindDefenseMaxStack,
	}

	if err := b.buildOpen(cfg.Open); err != nil {
		return nil, err
	}
	if err := b.buildShove(cfg.Shove); err != nil {
		return nil, err
	}
	if err := b.buildThreeBet(cfg.ThreeBet); err != nil {
		return nil, err
	}
	if err := b.buildDefense(cfg.BlindDefense); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Book) buildOpen(tiers []OpenConfig) error {
	byName := make(map[string]OpenConfig, len(tiers))
	for _, t := range tiers {
		byName[t.Name] = t
	}

	for _, t := range tiers {
		// Walk the same_as chain deepest reference first so nearer tiers override.
		chain := []OpenConfig{t}
		for ref := t.SameAs; ref != ""; ref = byName[ref].SameAs {
			chain = append(chain, byName[ref])
		}
		notation := make(map[string]string)
		for _, link := range slices.Backward(chain) {
			for seat, n := range link.Ranges {
				notation[seat] = n
			}
		}

		tier := &OpenTier{
			Name:     t.Name,
			MinStack: t.MinStack,
			ranges:   make(map[poker.Position]*analysis.Range, len(notation)),
			sizing: map[poker.OpenClass]float64{
				poker.OpenEarly: t.EarlyRaise,
				poker.OpenLate:  t.LateRaise,
				poker.OpenBlind: t.BlindRaise,
			},
		}
		for seat, n := range notation {
			p, err := poker.ParsePosition(seat)
			if err != nil {
				return fmt.Errorf("open tier %q: %w", t.Name, err)
			}
			r, err := analysis.ParseRange(n)
			if err != nil {
				return fmt.Errorf("open tier %q seat %s: %w", t.Name, p, err)
			}
			tier.ranges[p] = r
		}
		b.open = append(b.open, tier)
	}

	slices.SortFunc(b.open, func(x, y *OpenTier) int { return compareFloat(y.MinStack, x.MinStack) })
	return nil
}

func (b *Book) buildShove(tiers []ShoveConfig) error {
	for _, t := range tiers {
		tier := &ShoveTier{
			Name:     t.Name,
			MaxStack: t.MaxStack,
			ranges:   make(map[poker.ShoveClass]*analysis.Range, len(t.Ranges)),
		}
		for name, n := range t.Ranges {
			class, err := poker.ParseShoveClass(name)
			if err != nil {
				return fmt.Errorf("shove tier %q: %w", t.Name, err)
			}
			r, err := analysis.ParseRange(n)
			if err != nil {
				return fmt.Errorf("shove tier %q class %s: %w", t.Name, class, err)
			}
			tier.ranges[class] = r
		}
		b.shove = append(b.shove, tier)
	}

	slices.SortFunc(b.shove, func(x, y *ShoveTier) int {
		switch {
		case x.MaxStack == 0:
			return 1
		case y.MaxStack == 0:
			return -1
		}
		return compareFloat(x.MaxStack, y.MaxStack)
	})
	return nil
}

func (b *Book) buildThreeBet(tiers []ThreeBetConfig) error {
	byName := make(map[string]ThreeBetConfig, len(tiers))
	for _, t := range tiers {
		byName[t.Name] = t
	}

	for _, t := range tiers {
		tier := &ThreeBetTier{
			Name:        t.Name,
			MinStack:    t.MinStack,
			MostlyShove: t.MostlyShove,
			SizingIP:    Sizing{Low: t.SizingIP[0], High: t.SizingIP[1]},
			SizingOOP:   Sizing{Low: t.SizingOOP[0], High: t.SizingOOP[1]},
			cells:       make(map[matchupKey]*Matchup),
		}

		var err error
		if tier.Shove, err = analysis.ParseRange(t.Shove); err != nil {
			return fmt.Errorf("three_bet tier %q shove: %w", t.Name, err)
		}
		if tier.LightShove, err = analysis.ParseRange(t.LightShove); err != nil {
			return fmt.Errorf("three_bet tier %q light_shove: %w", t.Name, err)
		}

		cells := t.Matchups
		if t.SameAs != "" {
			cells = append(slices.Clone(byName[t.SameAs].Matchups), cells...)
		}
		for _, m := range cells {
			cell, err := buildMatchup(m)
			if err != nil {
				return fmt.Errorf("three_bet tier %q: %w", t.Name, err)
			}
			tier.cells[matchupKey{cell.Hero, cell.Opener}] = cell
		}
		b.threeBet = append(b.threeBet, tier)
	}

	slices.SortFunc(b.threeBet, func(x, y *ThreeBetTier) int { return compareFloat(y.MinStack, x.MinStack) })
	return nil
}

func buildMatchup(m MatchupConfig) (*Matchup, error) {
	hero, err := poker.ParsePosition(m.Hero)
	if err != nil {
		return nil, err
	}
	opener, err := poker.ParsePosition(m.Opener)
	if err != nil {
		return nil, err
	}
	value, err := analysis.ParseRange(m.Value)
	if err != nil {
		return nil, fmt.Errorf("%s vs %s value: %w", hero, opener, err)
	}
	bluff, err := analysis.ParseRange(m.Bluff)
	if err != nil {
		return nil, fmt.Errorf("%s vs %s bluff: %w", hero, opener, err)
	}
	return &Matchup{Hero: hero, Opener: opener, Value: value, Bluff: bluff}, nil
}

func (b *Book) buildDefense(tiers []DefenseConfig) error {
	for _, t := range tiers {
		r, err := analysis.ParseRange(t.Call)
		if err != nil {
			return fmt.Errorf("blind_defense tier %q: %w", t.Name, err)
		}
		b.defense = append(b.defense, &DefenseTier{Name: t.Name, MaxStack: t.MaxStack, Call: r})
	}
	slices.SortFunc(b.defense, func(x, y *DefenseTier) int { return compareFloat(x.MaxStack, y.MaxStack) })
	return nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// AutoShoveMaxStack is the deepest stack at which "auto" picks jam/fold.
func (b *Book) AutoShoveMaxStack() float64 {
	return b.autoShoveMaxStack
}

// BlindDefenseMaxStack is the deepest stack covered by the BB-vs-SB tables.
func (b *Book) BlindDefenseMaxStack() float64 {
	return b.blindDefenseMaxStack
}

// OpenTier returns the deepest tier whose MinStack the stack reaches.
func (b *Book) OpenTier(stack float64) *OpenTier {
	for _, t := range b.open {
		if stack >= t.MinStack {
			return t
		}
	}
	return b.open[len(b.open)-1]
}

// ShoveTier returns the shallowest tier whose MaxStack covers the stack.
func (b *Book) ShoveTier(stack float64) *ShoveTier {
	for _, t := range b.shove {
		if t.MaxStack == 0 || stack <= t.MaxStack {
			return t
		}
	}
	return b.shove[len(b.shove)-1]
}

// ThreeBetTier returns the deepest tier whose MinStack the stack reaches.
func (b *Book) ThreeBetTier(stack float64) *ThreeBetTier {
	for _, t := range b.threeBet {
		if stack >= t.MinStack {
			return t
		}
	}
	return b.threeBet[len(b.threeBet)-1]
}

// DefenseTier returns the shallowest BB-vs-SB tier covering the stack, or
// false when the stack is deeper than every tier.
func (b *Book) DefenseTier(stack float64) (*DefenseTier, bool) {
	for _, t := range b.defense {
		if stack <= t.MaxStack {
			return t, true
		}
	}
	return nil, false
}

// Range returns the opening range of a seat; seats without one get an
// empty range.
func (t *OpenTier) Range(p poker.Position) *analysis.Range {
	if r, ok := t.ranges[p]; ok {
		return r
	}
	return analysis.NewRange()
}

// RaiseSize returns the open size in big blinds for a seat class.
func (t *OpenTier) RaiseSize(c poker.OpenClass) float64 {
	return t.sizing[c]
}

// Range returns the jam range of a shove class.
func (t *ShoveTier) Range(c poker.ShoveClass) *analysis.Range {
	if r, ok := t.ranges[c]; ok {
		return r
	}
	return analysis.NewRange()
}

// Matchup returns the 3-bet cell for hero against opener. Seats that share
// a table (HJ with MP) fall back to the shared cell when they have none of
// their own.
func (t *ThreeBetTier) Matchup(hero, opener poker.Position) (*Matchup, bool) {
	candidates := []matchupKey{
		{hero, opener},
		{hero.TableSeat(), opener},
		{hero, opener.TableSeat()},
		{hero.TableSeat(), opener.TableSeat()},
	}
	for _, k := range candidates {
		if m, ok := t.cells[k]; ok {
			return m, true
		}
	}
	return nil, false
}

// Sizing returns the in-position or out-of-position 3-bet size.
func (t *ThreeBetTier) Sizing(inPosition bool) Sizing {
	if inPosition {
		return t.SizingIP
	}
	return t.SizingOOP
}
