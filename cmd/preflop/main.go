package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/preflop-advisor/internal/advisor"
	"github.com/lox/preflop-advisor/internal/book"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Book     string `short:"b" env:"PREFLOP_BOOK" placeholder:"FILE" help:"HCL rule book overriding the built-in ranges"`
	LogLevel string `short:"l" env:"PREFLOP_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
}

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Open        OpenCmd          `cmd:"" help:"Recommend an action in an unopened pot"`
	VsOpen      VsOpenCmd        `cmd:"vs-open" help:"Recommend an action facing an open raise"`
	Range       RangeCmd         `cmd:"" help:"Show a range from notation or from the rule book"`
	Batch       BatchCmd         `cmd:"" help:"Evaluate request lines from a file or stdin"`
	Interactive InteractiveCmd   `cmd:"" help:"Start the interactive advisor"`
	Export      ExportCmd        `cmd:"" help:"Write the effective rule book as HCL"`
	Ver         VersionCmd       `cmd:"version" help:"Print the version"`
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop"),
		kong.Description("Preflop range advisor for tournament play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// newLogger builds the stderr logger at the configured level.
func (g *Globals) newLogger(w io.Writer) (*log.Logger, error) {
	logger := log.New(w)
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// checkBook fails when --book names a file that cannot be read. The book
// loader itself treats a missing file as "use the defaults".
func (g *Globals) checkBook() error {
	if _, err := os.Stat(g.Book); err != nil {
		return fmt.Errorf("rule book: %w", err)
	}
	return nil
}

// loadConfig returns the built-in rule book, or the one named by --book.
func (g *Globals) loadConfig() (*book.Config, error) {
	if g.Book == "" {
		return book.DefaultConfig(), nil
	}
	if err := g.checkBook(); err != nil {
		return nil, err
	}
	cfg, err := book.LoadConfig(g.Book)
	if err != nil {
		return nil, fmt.Errorf("loading rule book: %w", err)
	}
	return cfg, nil
}

// loadBook builds the built-in rule book, or the one named by --book.
func (g *Globals) loadBook() (*book.Book, error) {
	if g.Book == "" {
		return book.Default()
	}
	if err := g.checkBook(); err != nil {
		return nil, err
	}
	b, err := book.Load(g.Book)
	if err != nil {
		return nil, fmt.Errorf("loading rule book: %w", err)
	}
	return b, nil
}

// newAdvisor loads the rule book and wires it to an advisor.
func (g *Globals) newAdvisor(logger *log.Logger) (*advisor.Advisor, error) {
	b, err := g.loadBook()
	if err != nil {
		return nil, err
	}
	logger.Debug("Rule book ready", "file", g.Book, "auto_shove_max_stack", b.AutoShoveMaxStack())
	return advisor.New(b, logger), nil
}

func (g *Globals) setup() (*advisor.Advisor, error) {
	logger, err := g.newLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	return g.newAdvisor(logger)
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Println("preflop", version)
	return nil
}
