package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/preflop-advisor/internal/advisor"
)

const helpText = `Enter a request and press Enter:
  <hand> <position> <stack> [auto|open|shove]   e.g. AKs BTN 10
  <hand> <hero> vs <opener> <stack>             e.g. QQ BB vs UTG 100
Commands: help, clear, quit`

// Model is the Bubble Tea model for the interactive advisor
type Model struct {
	advisor *advisor.Advisor
	logger  *log.Logger

	// UI components
	logViewport viewport.Model
	input       textinput.Model

	// State
	entries     []string
	last        *lastDecision
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool
}

type lastDecision struct {
	request  advisor.Request
	decision advisor.Decision
}

// NewModel creates the interactive model
func NewModel(a *advisor.Advisor, logger *log.Logger) *Model {
	// Sized properly when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "AKs BTN 10, QQ BB vs UTG 100, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		advisor:     a,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
	m.addEntry(InfoStyle.Render(helpText))
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if cmd := m.submit(line); cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	// keys were handled above; the viewport's own key map would scroll the
	// log while typing
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit handles one line of input. It returns a command only when the
// program should exit.
func (m *Model) submit(line string) tea.Cmd {
	switch strings.ToLower(line) {
	case "":
		return nil
	case "quit", "exit", "q":
		m.quitting = true
		return tea.Quit
	case "help", "?":
		m.addEntry(InfoStyle.Render(helpText))
		return nil
	case "clear":
		m.entries = nil
		m.last = nil
		m.logViewport.SetContent("")
		return nil
	}

	req, err := advisor.ParseRequest(line)
	if errors.Is(err, advisor.ErrEmptyRequest) {
		return nil
	}
	if err != nil {
		m.addEntry(RenderError(line, err))
		return nil
	}

	d, err := m.advisor.Evaluate(req)
	if err != nil {
		m.logger.Debug("Rejected request", "request", line, "error", err)
		m.addEntry(RenderError(line, err))
		return nil
	}

	m.last = &lastDecision{request: req, decision: d}
	m.addEntry(RenderEntry(req, d))
	m.addEntry(InfoStyle.Render("  " + d.Rationale))
	return nil
}

func (m *Model) addEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.logViewport.SetContent(strings.Join(m.entries, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Entries returns the log lines shown so far.
func (m *Model) Entries() []string {
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Last returns the most recent successful decision.
func (m *Model) Last() (advisor.Request, advisor.Decision, bool) {
	if m.last == nil {
		return advisor.Request{}, advisor.Decision{}, false
	}
	return m.last.request, m.last.decision, true
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderInputPane()
	actionHeight := lipgloss.Height(actionContent)
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	topHeight := max(m.height-actionHeight-4, 1)

	sidebarContent := m.renderSidebar()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 25)
	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(topHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = topHeight
	if !m.initialized && logWidth > 1 && topHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(topHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebar shows the range behind the latest decision
func (m *Model) renderSidebar() string {
	if m.last == nil || m.last.decision.Range == nil {
		return InfoStyle.Render("The range behind each\ndecision appears here.")
	}
	d := m.last.decision
	title := HeaderStyle.Render(m.last.request.String())
	if d.Tier != "" {
		title += " " + InfoStyle.Render(d.Tier+"BB tier")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", RenderGrid(d.Range, &d.Hand))
}

func (m *Model) renderInputPane() string {
	var content strings.Builder
	content.WriteString(m.input.View())
	content.WriteString("\n")
	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return content.String()
}
