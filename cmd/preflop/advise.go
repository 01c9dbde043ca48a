package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/internal/tui"
)

// OpenCmd answers an unopened pot.
type OpenCmd struct {
	Hand     string  `arg:"" help:"Hole cards: AKs, AJo, 22 or AhKh"`
	Position string  `arg:"" help:"Seat: UTG, MP, HJ, CO, BTN, SB or BB"`
	Stack    float64 `arg:"" help:"Effective stack in big blinds"`
	Context  string  `short:"c" default:"auto" help:"auto, open or shove"`
	Grid     bool    `short:"g" help:"Also print the range the hand was checked against"`
}

func (cmd *OpenCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	req := advisor.Request{Hand: cmd.Hand, Position: cmd.Position, Stack: cmd.Stack, Context: cmd.Context}
	return advise(os.Stdout, a, req, cmd.Grid)
}

// VsOpenCmd answers hero facing a single open raise.
type VsOpenCmd struct {
	Hand   string  `arg:"" help:"Hole cards: AKs, AJo, 22 or AhKh"`
	Hero   string  `arg:"" help:"Your seat"`
	Opener string  `arg:"" help:"The raiser's seat"`
	Stack  float64 `arg:"" help:"Effective stack in big blinds"`
	Grid   bool    `short:"g" help:"Also print the range the hand was checked against"`
}

func (cmd *VsOpenCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}
	req := advisor.Request{Hand: cmd.Hand, Position: cmd.Hero, Opener: cmd.Opener, Stack: cmd.Stack}
	return advise(os.Stdout, a, req, cmd.Grid)
}

func advise(w io.Writer, a *advisor.Advisor, req advisor.Request, grid bool) error {
	d, err := a.Evaluate(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tui.RenderDecision(req, d))
	if grid && d.Range != nil {
		fmt.Fprintln(w, tui.RenderGrid(d.Range, &d.Hand))
	}
	return nil
}
