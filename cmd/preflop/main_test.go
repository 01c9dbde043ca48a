package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/internal/book"
	"github.com/lox/preflop-advisor/poker"
)

func testAdvisor() *advisor.Advisor {
	return advisor.New(book.MustDefault(), log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
}

func TestRunBatch(t *testing.T) {
	input := strings.Join([]string{
		"# hand position stack [context]",
		"AA UTG 100",
		"",
		"AKs BTN 10",
		"AA UTG",
		"QQ BB vs UTG 100",
		"72o BB vs SB 8",
		"AA UTG1 100",
	}, "\n")

	var out bytes.Buffer
	failed, total, err := runBatch(context.Background(), testAdvisor(), strings.NewReader(input), &out, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, 2, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Open-Raise")
	assert.Contains(t, lines[1], "Shove (All-in)")
	assert.Contains(t, lines[2], "malformed request")
	assert.Contains(t, lines[3], "3-Bet for Value")
	assert.Contains(t, lines[4], "Fold")
	assert.Contains(t, lines[5], `invalid position "UTG1"`)
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, _, err := runBatch(ctx, testAdvisor(), strings.NewReader("AA UTG 100\n"), &out, 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRangeResolve(t *testing.T) {
	b := book.MustDefault()

	tests := []struct {
		name      string
		cmd       RangeCmd
		wantSize  int
		wantTitle string
		wantErr   string
	}{
		{
			name:      "notation",
			cmd:       RangeCmd{Notation: "22+,AKs", Stack: 100, Kind: "open"},
			wantSize:  14,
			wantTitle: "22+,AKs",
		},
		{
			name:      "open range from the book",
			cmd:       RangeCmd{Position: "btn", Stack: 100, Kind: "open"},
			wantSize:  b.OpenTier(100).Range(poker.BTN).Size(),
			wantTitle: "BTN open, 100BB tier",
		},
		{
			name:      "shove range from the book",
			cmd:       RangeCmd{Position: "HJ", Stack: 15, Kind: "shove"},
			wantTitle: "HJ (MP) shove, 15BB tier",
		},
		{
			name:    "bad notation",
			cmd:     RangeCmd{Notation: "AA,ZZ", Stack: 100, Kind: "open"},
			wantErr: `"ZZ"`,
		},
		{
			name:    "both notation and position",
			cmd:     RangeCmd{Notation: "AA", Position: "UTG", Stack: 100, Kind: "open"},
			wantErr: "not both",
		},
		{
			name:    "nothing given",
			cmd:     RangeCmd{Stack: 100, Kind: "open"},
			wantErr: "give range notation or --position",
		},
		{
			name:    "BB has no opening range",
			cmd:     RangeCmd{Position: "BB", Stack: 100, Kind: "open"},
			wantErr: "BB has no opening range",
		},
		{
			name:    "BB has no shove range",
			cmd:     RangeCmd{Position: "BB", Stack: 10, Kind: "shove"},
			wantErr: "BB has no shove range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, title, err := tt.cmd.resolve(b)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, title)
			if tt.wantSize > 0 {
				assert.Equal(t, tt.wantSize, r.Size())
			}
			assert.Positive(t, r.Size())
		})
	}
}

func TestAdvise(t *testing.T) {
	var out bytes.Buffer
	req := advisor.Request{Hand: "AKs", Position: "BTN", Stack: 10, Context: "auto"}
	require.NoError(t, advise(&out, testAdvisor(), req, true))
	assert.Contains(t, out.String(), "Shove (All-in)")
	assert.Contains(t, out.String(), "combos")

	err := advise(&out, testAdvisor(), advisor.Request{Hand: "AA", Position: "SB", Opener: "BB", Stack: 10}, false)
	assert.True(t, advisor.IsValidationError(err))
}

func TestGlobals(t *testing.T) {
	g := &Globals{LogLevel: "debug"}
	logger, err := g.newLogger(io.Discard)
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	_, err = (&Globals{LogLevel: "loud"}).newLogger(io.Discard)
	assert.Error(t, err)

	a, err := g.newAdvisor(logger)
	require.NoError(t, err)
	assert.Equal(t, float64(book.DefaultAutoShoveMaxStack), a.Book().AutoShoveMaxStack())

	_, err = (&Globals{Book: filepath.Join(t.TempDir(), "missing.hcl")}).newAdvisor(logger)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "book.hcl")
	require.NoError(t, os.WriteFile(path, []byte("thresholds {\n  auto_shove_max_stack = 12\n}\n"), 0o644))
	a, err = (&Globals{Book: path}).newAdvisor(logger)
	require.NoError(t, err)
	assert.Equal(t, 12.0, a.Book().AutoShoveMaxStack())
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.hcl")
	require.NoError(t, (&ExportCmd{Out: path}).Run(&Globals{LogLevel: "warn"}))

	a, err := (&Globals{Book: path, LogLevel: "warn"}).newAdvisor(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
	require.NoError(t, err)

	d, err := a.RecommendOpenOrShove("AA", "UTG", 100, "auto")
	require.NoError(t, err)
	assert.Equal(t, advisor.ActionOpenRaise, d.Action)
	assert.Contains(t, d.Rationale, "14.0%")
}

func TestMalformedBookIsRejected(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("open \"all\" {\n  min_stack = 0\n  ranges    = { CO = \"AA,KX\" }\n}\n"), 0o644))
	g := &Globals{Book: bad, LogLevel: "warn"}

	out := filepath.Join(dir, "out.hcl")
	err := (&ExportCmd{Out: out}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"KX"`)
	assert.NoFileExists(t, out)

	_, err = g.newAdvisor(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"KX"`)
}
