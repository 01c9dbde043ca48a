package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/poker"
)

// RenderDecision renders a decision as a bordered card.
func RenderDecision(req advisor.Request, d advisor.Decision) string {
	var content strings.Builder

	content.WriteString(HandInfoStyle.Render(req.String()))
	content.WriteString("\n")
	content.WriteString(ActionStyle(d.Action).Render(string(d.Action)))
	if d.Sizing != "" {
		content.WriteString("  ")
		content.WriteString(WarningStyle.Render(d.Sizing))
	}
	content.WriteString("\n")
	content.WriteString(d.Rationale)

	return CardStyle.Render(content.String())
}

// RenderError renders a failed request on one line.
func RenderError(line string, err error) string {
	return ErrorStyle.Render("✗ "+line) + " " + InfoStyle.Render(err.Error())
}

// RenderEntry renders a decision as a single log line.
func RenderEntry(req advisor.Request, d advisor.Decision) string {
	line := HandInfoStyle.Render(req.String()) + " → " + ActionStyle(d.Action).Render(string(d.Action))
	if d.Sizing != "" {
		line += " " + WarningStyle.Render(d.Sizing)
	}
	return line
}

// RenderGrid renders the range as the 13x13 starting hand chart: pairs on
// the diagonal, suited hands above it. The highlighted hand, when set, is
// drawn on top of the range colouring.
func RenderGrid(r *analysis.Range, highlight *poker.StartingHand) string {
	var rows []string
	for row := range poker.NumRanks {
		cells := make([]string, poker.NumRanks)
		for col := range poker.NumRanks {
			h := poker.StartingHandFromIndex(row*poker.NumRanks + col)
			label := fmt.Sprintf("%-3s", h)
			switch {
			case highlight != nil && *highlight == h:
				cells[col] = HighlightCellStyle.Render(label)
			case r.Contains(h):
				cells[col] = InRangeCellStyle.Render(label)
			default:
				cells[col] = OutOfRangeCellStyle.Render(label)
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	summary := InfoStyle.Render(fmt.Sprintf("%d hands, %d combos, %.1f%%", r.Size(), r.Combos(), r.Percent()))
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n"), summary)
}
