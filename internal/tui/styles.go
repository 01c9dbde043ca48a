package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/preflop-advisor/internal/advisor"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// Range grid cells
	InRangeCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#96CEB4"))

	OutOfRangeCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))

	HighlightCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#FFD700")).
				Bold(true)
)

// ActionStyle colours an action: raises and jams gold, calls and checks
// green, folds red, everything else yellow.
func ActionStyle(a advisor.Action) lipgloss.Style {
	switch {
	case a.Aggressive():
		return ActionsStyle
	case a == advisor.ActionCall, a == advisor.ActionCheck, a == advisor.ActionDefend:
		return SuccessStyle
	case a == advisor.ActionFold:
		return ErrorStyle
	default:
		return WarningStyle
	}
}
