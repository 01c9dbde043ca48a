package tui

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-advisor/analysis"
	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/internal/book"
	"github.com/lox/preflop-advisor/poker"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	return NewModel(advisor.New(book.MustDefault(), logger), logger)
}

func typeLine(m *Model, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel(t *testing.T) {
	t.Run("starts with help", func(t *testing.T) {
		m := newTestModel(t)
		entries := m.Entries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "QQ BB vs UTG 100")
		_, _, ok := m.Last()
		assert.False(t, ok)
	})

	t.Run("enter evaluates the request", func(t *testing.T) {
		m := newTestModel(t)
		typeLine(m, "AKs BTN 10")

		req, d, ok := m.Last()
		require.True(t, ok)
		assert.Equal(t, "BTN", req.Position)
		assert.Equal(t, advisor.ActionShove, d.Action)
		assert.Empty(t, m.input.Value())

		entries := m.Entries()
		require.Len(t, entries, 3)
		assert.Contains(t, entries[1], "Shove (All-in)")
		assert.Contains(t, entries[2], d.Rationale)
	})

	t.Run("facing an open", func(t *testing.T) {
		m := newTestModel(t)
		typeLine(m, "QQ BB vs UTG 100")

		_, d, ok := m.Last()
		require.True(t, ok)
		assert.Equal(t, advisor.ActionThreeBetValue, d.Action)
	})

	t.Run("invalid request is logged, not fatal", func(t *testing.T) {
		m := newTestModel(t)
		typeLine(m, "AA UTG1 100")

		_, _, ok := m.Last()
		assert.False(t, ok)
		entries := m.Entries()
		require.Len(t, entries, 2)
		assert.Contains(t, entries[1], `invalid position "UTG1"`)
	})

	t.Run("clear and help", func(t *testing.T) {
		m := newTestModel(t)
		typeLine(m, "AA UTG 100")
		typeLine(m, "clear")
		assert.Empty(t, m.Entries())
		_, _, ok := m.Last()
		assert.False(t, ok)

		typeLine(m, "help")
		assert.Len(t, m.Entries(), 1)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		m := newTestModel(t)
		typeLine(m, "   ")
		typeLine(m, "# comment")
		assert.Len(t, m.Entries(), 1)
	})

	t.Run("quit", func(t *testing.T) {
		m := newTestModel(t)
		cmd := typeLine(m, "quit")
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("tab moves focus to the log", func(t *testing.T) {
		m := newTestModel(t)
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, 0, m.focusedPane)

		// Enter is ignored while the log has focus
		m.input.SetValue("AA UTG 100")
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		_, _, ok := m.Last()
		assert.False(t, ok)
	})

	t.Run("view renders after sizing", func(t *testing.T) {
		m := newTestModel(t)
		assert.Equal(t, "Loading...", m.View())

		m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
		typeLine(m, "AA UTG 100")
		view := m.View()
		assert.Contains(t, view, "AA UTG 100")
		assert.Contains(t, view, "100BB tier")
	})
}

func TestScrollKeysFollowFocus(t *testing.T) {
	m := newTestModel(t)
	for i := range 30 {
		m.addEntry(fmt.Sprintf("line %d", i))
	}
	m.logViewport.GotoTop()
	require.Equal(t, 0, m.logViewport.YOffset)

	// typing into the input must not scroll the log
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.Equal(t, 0, m.logViewport.YOffset)
	assert.Equal(t, " jf", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.logViewport.YOffset, "one key press scrolls one line")
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.logViewport.YOffset)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.logViewport.YOffset)
	assert.Equal(t, " jf", m.input.Value())
}

func TestRenderGrid(t *testing.T) {
	r := analysis.MustParseRange("AA,AKs")
	aa := poker.MustParseStartingHand("AA")
	grid := RenderGrid(r, &aa)

	lines := strings.Split(grid, "\n")
	require.Len(t, lines, poker.NumRanks+1)
	assert.Contains(t, lines[0], "AA")
	assert.Contains(t, lines[0], "AKs")
	assert.Contains(t, lines[1], "AKo")
	assert.Contains(t, lines[12], "22")
	assert.Contains(t, lines[13], "2 hands, 10 combos")
}

func TestRenderDecision(t *testing.T) {
	req := advisor.Request{Hand: "AA", Position: "UTG", Stack: 100}
	d := advisor.Decision{Action: advisor.ActionOpenRaise, Sizing: "Raise to 2.2BB", Rationale: "inside"}

	card := RenderDecision(req, d)
	assert.Contains(t, card, "AA UTG 100")
	assert.Contains(t, card, "Open-Raise")
	assert.Contains(t, card, "Raise to 2.2BB")
	assert.Contains(t, card, "inside")
}

func TestActionStyle(t *testing.T) {
	assert.Equal(t, ActionsStyle.Render("x"), ActionStyle(advisor.ActionShove).Render("x"))
	assert.Equal(t, ErrorStyle.Render("x"), ActionStyle(advisor.ActionFold).Render("x"))
	assert.Equal(t, SuccessStyle.Render("x"), ActionStyle(advisor.ActionCall).Render("x"))
	assert.Equal(t, WarningStyle.Render("x"), ActionStyle(advisor.ActionNoModel).Render("x"))
}
