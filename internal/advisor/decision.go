package advisor

import (
	"fmt"
	"strings"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/poker"
)

// Action is the recommended preflop action.
type Action string

const (
	ActionOpenRaise          Action = "Open-Raise"
	ActionFold               Action = "Fold"
	ActionShove              Action = "Shove (All-in)"
	ActionDefend             Action = "Check/Defend vs raise"
	ActionCheck              Action = "Check"
	ActionThreeBetValue      Action = "3-Bet for Value"
	ActionThreeBetBluff      Action = "3-Bet Bluff (Light)"
	ActionThreeBetShove      Action = "3-Bet Shove (All-in)"
	ActionThreeBetLightShove Action = "3-Bet Shove (Light)"
	ActionNoThreeBet         Action = "No 3-bet (consider call/fold)"
	ActionCall               Action = "Call"
	ActionNoModel            Action = "No dedicated model"
)

// Aggressive reports whether the action puts chips in as a raise or jam.
func (a Action) Aggressive() bool {
	switch a {
	case ActionOpenRaise, ActionShove, ActionThreeBetValue, ActionThreeBetBluff,
		ActionThreeBetShove, ActionThreeBetLightShove:
		return true
	}
	return false
}

// Decision is the answer to a single request.
type Decision struct {
	Action    Action
	Sizing    string // empty when the action puts no chips in
	Rationale string

	Hand  poker.StartingHand
	Tier  string          // rule book tier consulted, empty when none was
	Range *analysis.Range // range the hand was checked against, nil when none was
}

func (d Decision) String() string {
	if d.Sizing == "" {
		return fmt.Sprintf("%s: %s", d.Action, d.Rationale)
	}
	return fmt.Sprintf("%s (%s): %s", d.Action, d.Sizing, d.Rationale)
}

// Context selects the unopened-pot policy.
type Context uint8

const (
	ContextAuto Context = iota
	ContextOpen
	ContextShove
)

var contextNames = [...]string{"auto", "open", "shove"}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("Context(%d)", c)
}

// ParseContext parses "auto", "open" or "shove", case-insensitively. An
// empty string is auto.
func ParseContext(s string) (Context, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ContextAuto, nil
	}
	for i, n := range contextNames {
		if n == name {
			return Context(i), nil
		}
	}
	return 0, &ValidationError{Field: "context", Value: s, Allowed: contextNames[:]}
}
