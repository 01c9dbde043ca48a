// Package advisor turns a hand, seat(s) and stack depth into a preflop
// recommendation by looking them up in a rule book.
package advisor

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/internal/book"
	"github.com/lox/preflop-advisor/poker"
)

// openers are the seats that can be first into the pot.
var openers = []poker.Position{poker.UTG, poker.MP, poker.HJ, poker.CO, poker.BTN, poker.SB}

// Advisor answers preflop questions against one immutable rule book. It holds
// no mutable state and is safe for concurrent use.
type Advisor struct {
	book   *book.Book
	logger *log.Logger
}

// New returns an Advisor backed by b. A nil logger uses the default logger.
func New(b *book.Book, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{book: b, logger: logger.WithPrefix("advisor")}
}

// Book returns the rule book the advisor consults.
func (a *Advisor) Book() *book.Book {
	return a.book
}

// RecommendOpenOrShove answers an unopened pot. context is "auto", "open" or
// "shove"; auto jams at or below the book's auto-shove depth and opens above
// it.
func (a *Advisor) RecommendOpenOrShove(hand, position string, stack float64, context string) (Decision, error) {
	h, err := parseHand(hand)
	if err != nil {
		return Decision{}, err
	}
	pos, err := parsePosition("position", position)
	if err != nil {
		return Decision{}, err
	}
	if err := validateStack(stack); err != nil {
		return Decision{}, err
	}
	ctx, err := ParseContext(context)
	if err != nil {
		return Decision{}, err
	}

	mode := ctx
	if mode == ContextAuto {
		mode = ContextOpen
		if stack <= a.book.AutoShoveMaxStack() && pos.CanOpen() {
			mode = ContextShove
		}
	}

	var d Decision
	if mode == ContextShove {
		d = a.shove(h, pos, stack)
	} else {
		d = a.open(h, pos, stack)
	}

	a.logger.Debug("Unopened pot",
		"hand", h,
		"position", pos,
		"stack", stack,
		"context", ctx,
		"mode", mode,
		"tier", d.Tier,
		"action", d.Action)
	return d, nil
}

func (a *Advisor) open(h poker.StartingHand, pos poker.Position, stack float64) Decision {
	tier := a.book.OpenTier(stack)
	if pos == poker.BB {
		return Decision{
			Action:    ActionDefend,
			Rationale: "BB never opens a pot: check if it folds around, or defend against a raise.",
			Hand:      h,
			Tier:      tier.Name,
		}
	}

	r := tier.Range(pos)
	d := Decision{Hand: h, Tier: tier.Name, Range: r}
	if r.Contains(h) {
		d.Action = ActionOpenRaise
		d.Sizing = openSizing(tier.RaiseSize(pos.OpenClass()))
	} else {
		d.Action = ActionFold
	}
	d.Rationale = fmt.Sprintf("Unopened pot, %sBB tier, %s: %s is %s the %s opening range.",
		tier.Name, pos, describe(h), membership(r, h), percent(r))
	return d
}

func (a *Advisor) shove(h poker.StartingHand, pos poker.Position, stack float64) Decision {
	tier := a.book.ShoveTier(stack)
	class, ok := pos.ShoveClass()
	if !ok {
		return Decision{
			Action:    ActionCheck,
			Rationale: "BB does not jam without action in front: check your option.",
			Hand:      h,
			Tier:      tier.Name,
		}
	}

	r := tier.Range(class)
	d := Decision{Hand: h, Tier: tier.Name, Range: r}
	if r.Contains(h) {
		d.Action = ActionShove
		d.Sizing = "All-in (" + formatBB(stack) + ")"
	} else {
		d.Action = ActionFold
	}
	d.Rationale = fmt.Sprintf("Jam/fold spot, ~%sBB tier, %s (%s group): %s is %s the %s shove range.",
		tier.Name, pos, class, describe(h), membership(r, h), percent(r))
	return d
}

// RecommendVsOpen answers hero facing a single raise from opener.
func (a *Advisor) RecommendVsOpen(hand, hero, opener string, stack float64) (Decision, error) {
	h, err := parseHand(hand)
	if err != nil {
		return Decision{}, err
	}
	heroPos, err := parsePosition("hero position", hero)
	if err != nil {
		return Decision{}, err
	}
	openerPos, err := parsePosition("opener position", opener, openers...)
	if err != nil {
		return Decision{}, err
	}
	if !openerPos.CanOpen() {
		return Decision{}, &ValidationError{
			Field:   "opener position",
			Value:   opener,
			Reason:  "BB cannot open the pot",
			Allowed: poker.PositionNames(openers...),
		}
	}
	if heroPos == openerPos {
		return Decision{}, &ValidationError{
			Field:  "hero position",
			Value:  hero,
			Reason: "hero and opener must be different seats",
		}
	}
	if err := validateStack(stack); err != nil {
		return Decision{}, err
	}

	var d Decision
	if heroPos == poker.BB && openerPos == poker.SB {
		d = a.blindDefense(h, stack)
	} else {
		d = a.threeBet(h, heroPos, openerPos, stack)
	}

	a.logger.Debug("Facing an open",
		"hand", h,
		"hero", heroPos,
		"opener", openerPos,
		"stack", stack,
		"tier", d.Tier,
		"action", d.Action)
	return d, nil
}

func (a *Advisor) blindDefense(h poker.StartingHand, stack float64) Decision {
	tier, ok := a.book.DefenseTier(stack)
	if !ok || stack > a.book.BlindDefenseMaxStack() {
		return Decision{
			Action: ActionNoModel,
			Rationale: fmt.Sprintf("BB vs SB at %s: the rule book only covers this spot up to %sBB.",
				formatBB(stack), formatBB(a.book.BlindDefenseMaxStack())),
			Hand: h,
		}
	}

	d := Decision{Hand: h, Tier: tier.Name, Range: tier.Call}
	if tier.Call.Contains(h) {
		d.Action = ActionCall
	} else {
		d.Action = ActionFold
	}
	d.Rationale = fmt.Sprintf("BB vs SB open, %sBB defense tier: %s is %s the %s calling range.",
		tier.Name, describe(h), membership(tier.Call, h), percent(tier.Call))
	return d
}

func (a *Advisor) threeBet(h poker.StartingHand, hero, opener poker.Position, stack float64) Decision {
	tier := a.book.ThreeBetTier(stack)
	d := Decision{Hand: h, Tier: tier.Name}

	cell, ok := tier.Matchup(hero, opener)
	if !ok {
		d.Action = ActionNoThreeBet
		d.Rationale = fmt.Sprintf("No rule available for %s vs %s at %sBB: %s has no 3-bet table entry.",
			hero, opener, tier.Name, describe(h))
		return d
	}

	ip := hero.InPositionAgainst(opener)
	where := "out of position"
	if ip {
		where = "in position"
	}
	spot := fmt.Sprintf("%s vs %s open, %sBB tier", cell.Hero, cell.Opener, tier.Name)

	if tier.MostlyShove {
		d.Range = tier.Shove
	} else {
		d.Range = cell.Value.Union(cell.Bluff, tier.LightShove)
	}

	switch {
	case tier.MostlyShove:
		if tier.Shove.Contains(h) {
			d.Action = ActionThreeBetShove
			d.Sizing = "All-in (" + formatBB(stack) + ")"
		} else {
			d.Action = ActionNoThreeBet
		}
		d.Rationale = fmt.Sprintf("%s: mostly shove or fold at this depth; %s is %s the %s shove range (%s).",
			spot, describe(h), membership(tier.Shove, h), percent(tier.Shove), tier.Shove)
	case cell.Value.Contains(h):
		d.Action = ActionThreeBetValue
		d.Sizing = tier.Sizing(ip).String()
		d.Rationale = fmt.Sprintf("%s: %s is in the value range (%s); size up %s.",
			spot, describe(h), cell.Value, where)
	case cell.Bluff.Contains(h):
		d.Action = ActionThreeBetBluff
		d.Sizing = tier.Sizing(ip).String()
		d.Rationale = fmt.Sprintf("%s: %s is in the light 3-bet range (%s); size up %s.",
			spot, describe(h), cell.Bluff, where)
	case tier.LightShove.Contains(h):
		d.Action = ActionThreeBetLightShove
		d.Sizing = "All-in (" + formatBB(stack) + ")"
		d.Rationale = fmt.Sprintf("%s: %s is in the light 3-bet shove range (%s).",
			spot, describe(h), tier.LightShove)
	default:
		d.Action = ActionNoThreeBet
		d.Rationale = fmt.Sprintf("%s: %s is outside the value and bluff ranges.", spot, describe(h))
	}
	return d
}

func describe(h poker.StartingHand) string {
	return fmt.Sprintf("%s (%s)", h, h.Category())
}

func membership(r *analysis.Range, h poker.StartingHand) string {
	if r.Contains(h) {
		return "inside"
	}
	return "outside"
}

func percent(r *analysis.Range) string {
	return strconv.FormatFloat(r.Percent(), 'f', 1, 64) + "%"
}

func openSizing(bb float64) string {
	if bb <= 0 {
		return "standard raise"
	}
	return "Raise to " + formatBB(bb)
}

func formatBB(bb float64) string {
	return strconv.FormatFloat(bb, 'f', -1, 64) + "BB"
}
