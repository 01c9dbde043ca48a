package main

import (
	"errors"
	"fmt"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/internal/book"
	"github.com/lox/preflop-advisor/internal/tui"
	"github.com/lox/preflop-advisor/poker"
)

// RangeCmd prints a range, either parsed from notation or read from the
// rule book for a seat and stack.
type RangeCmd struct {
	Notation string  `arg:"" optional:"" help:"Range notation such as 22+,A2s+,KQo"`
	Position string  `short:"p" help:"Seat whose rule book range to show"`
	Stack    float64 `short:"s" default:"100" help:"Stack depth in big blinds"`
	Kind     string  `short:"k" default:"open" enum:"open,shove" help:"Rule book table to read (${enum})"`
	List     bool    `help:"Print a comma separated list instead of a grid"`
}

func (cmd *RangeCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	r, title, err := cmd.resolve(a.Book())
	if err != nil {
		return err
	}

	if cmd.List {
		fmt.Println(r)
		return nil
	}
	fmt.Println(tui.HeaderStyle.Render(title))
	fmt.Println(tui.RenderGrid(r, nil))
	return nil
}

func (cmd *RangeCmd) resolve(b *book.Book) (*analysis.Range, string, error) {
	if cmd.Notation != "" {
		if cmd.Position != "" {
			return nil, "", errors.New("give either range notation or --position, not both")
		}
		r, err := analysis.ParseRange(cmd.Notation)
		if err != nil {
			return nil, "", err
		}
		return r, cmd.Notation, nil
	}

	if cmd.Position == "" {
		return nil, "", errors.New("give range notation or --position")
	}
	if cmd.Stack <= 0 {
		return nil, "", fmt.Errorf("stack must be positive, got %g", cmd.Stack)
	}
	pos, err := poker.ParsePosition(cmd.Position)
	if err != nil {
		return nil, "", err
	}

	switch cmd.Kind {
	case "shove":
		class, ok := pos.ShoveClass()
		if !ok {
			return nil, "", fmt.Errorf("%s has no shove range", pos)
		}
		tier := b.ShoveTier(cmd.Stack)
		return tier.Range(class), fmt.Sprintf("%s (%s) shove, %sBB tier", pos, class, tier.Name), nil
	default:
		if !pos.CanOpen() {
			return nil, "", fmt.Errorf("%s has no opening range", pos)
		}
		tier := b.OpenTier(cmd.Stack)
		return tier.Range(pos), fmt.Sprintf("%s open, %sBB tier", pos, tier.Name), nil
	}
}
