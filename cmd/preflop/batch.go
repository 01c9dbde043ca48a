package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/internal/fileutil"
	"github.com/lox/preflop-advisor/internal/tui"
)

// BatchCmd evaluates one request per line.
type BatchCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"Request file, one request per line ('-' for stdin)"`
	Workers int    `short:"w" default:"0" help:"Concurrent evaluations (0 = GOMAXPROCS)"`
	Out     string `short:"o" default:"-" placeholder:"FILE" help:"Write results to a file instead of stdout"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	a, err := g.setup()
	if err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if cmd.File != "-" {
		f, err := os.Open(filepath.Clean(cmd.File))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var failed, total int
	if cmd.Out == "-" {
		failed, total, err = runBatch(ctx, a, in, os.Stdout, cmd.Workers)
	} else {
		// the file only appears once every result has been written
		err = fileutil.WriteAtomic(cmd.Out, 0o644, func(w io.Writer) error {
			var runErr error
			failed, total, runErr = runBatch(ctx, a, in, w, cmd.Workers)
			return runErr
		})
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, total)
	}
	return nil
}

type batchLine struct {
	text string
	slot int // index into the request slice, -1 when the line did not parse
	err  error
}

// runBatch reads request lines from r, evaluates them concurrently and
// writes one line per request to w in input order. Blank lines and comments
// are skipped.
func runBatch(ctx context.Context, a *advisor.Advisor, r io.Reader, w io.Writer, workers int) (failed, total int, err error) {
	var (
		lines    []batchLine
		requests []advisor.Request
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		req, err := advisor.ParseRequest(text)
		switch {
		case errors.Is(err, advisor.ErrEmptyRequest):
			continue
		case err != nil:
			lines = append(lines, batchLine{text: text, slot: -1, err: err})
		default:
			lines = append(lines, batchLine{text: text, slot: len(requests)})
			requests = append(requests, req)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("reading requests: %w", err)
	}

	results, err := a.Batch(ctx, requests, workers)
	if err != nil {
		return 0, len(lines), err
	}

	for _, line := range lines {
		if line.slot < 0 {
			failed++
			fmt.Fprintln(w, tui.RenderError(line.text, line.err))
			continue
		}
		res := results[line.slot]
		if res.Err != nil {
			failed++
			fmt.Fprintln(w, tui.RenderError(line.text, res.Err))
			continue
		}
		fmt.Fprintln(w, tui.RenderEntry(res.Request, res.Decision))
	}
	return failed, len(lines), nil
}
