package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/preflop-advisor/internal/tui"
)

// InteractiveCmd runs the full-screen advisor.
type InteractiveCmd struct {
	LogFile string `help:"Write logs to this file; the screen is owned by the UI"`
}

func (cmd *InteractiveCmd) Run(g *Globals) error {
	out := io.Discard
	if cmd.LogFile != "" {
		f, err := os.OpenFile(filepath.Clean(cmd.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger, err := g.newLogger(out)
	if err != nil {
		return err
	}
	a, err := g.newAdvisor(logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(a, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}
