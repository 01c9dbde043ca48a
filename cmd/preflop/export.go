package main

import (
	"fmt"
	"os"

	"github.com/lox/preflop-advisor/internal/book"
	"github.com/lox/preflop-advisor/internal/fileutil"
)

// ExportCmd writes the rule book in effect, built-in or loaded from --book,
// as an HCL file that can be edited and passed back with --book.
type ExportCmd struct {
	Out string `short:"o" default:"-" placeholder:"FILE" help:"Destination file ('-' for stdout)"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	// expand every range so a malformed book is rejected, not exported
	if _, err := book.New(cfg); err != nil {
		return fmt.Errorf("loading rule book: %w", err)
	}
	data := cfg.Encode()
	if cmd.Out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return fileutil.WriteFileAtomic(cmd.Out, data, 0o644)
}
