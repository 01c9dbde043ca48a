package book

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflop-advisor/poker"
)

// Config is the authored rule book: range notation per stack tier and seat.
// It is decoded from HCL and expanded into a Book exactly once.
type Config struct {
	Thresholds   *Thresholds      `hcl:"thresholds,block"`
	Open         []OpenConfig     `hcl:"open,block"`
	Shove        []ShoveConfig    `hcl:"shove,block"`
	ThreeBet     []ThreeBetConfig `hcl:"three_bet,block"`
	BlindDefense []DefenseConfig  `hcl:"blind_defense,block"`
}

// Thresholds are the stack depths, in big blinds, that switch between policies.
type Thresholds struct {
	// AutoShoveMaxStack is the deepest stack at which "auto" resolves to jam/fold.
	AutoShoveMaxStack float64 `hcl:"auto_shove_max_stack,optional"`
	// BlindDefenseMaxStack is the deepest stack covered by the BB-vs-SB call tables.
	BlindDefenseMaxStack float64 `hcl:"blind_defense_max_stack,optional"`
}

// OpenConfig is one unopened-pot tier covering stacks >= MinStack up to the
// next deeper tier. SameAs inherits every seat range of another tier; Ranges
// then overrides individual seats.
type OpenConfig struct {
	Name       string            `hcl:"name,label"`
	MinStack   float64           `hcl:"min_stack"`
	SameAs     string            `hcl:"same_as,optional"`
	Ranges     map[string]string `hcl:"ranges,optional"`
	EarlyRaise float64           `hcl:"early_raise,optional"`
	LateRaise  float64           `hcl:"late_raise,optional"`
	BlindRaise float64           `hcl:"blind_raise,optional"`
}

// ShoveConfig is one jam/fold tier covering stacks <= MaxStack. A MaxStack
// of zero marks the unbounded deepest tier. Ranges are keyed by shove class.
type ShoveConfig struct {
	Name     string            `hcl:"name,label"`
	MaxStack float64           `hcl:"max_stack,optional"`
	Ranges   map[string]string `hcl:"ranges"`
}

// ThreeBetConfig is one facing-an-open tier covering stacks >= MinStack.
type ThreeBetConfig struct {
	Name        string          `hcl:"name,label"`
	MinStack    float64         `hcl:"min_stack"`
	SameAs      string          `hcl:"same_as,optional"`
	MostlyShove bool            `hcl:"mostly_shove,optional"`
	Shove       string          `hcl:"shove,optional"`
	LightShove  string          `hcl:"light_shove,optional"`
	SizingIP    []float64       `hcl:"sizing_ip"`
	SizingOOP   []float64       `hcl:"sizing_oop"`
	Matchups    []MatchupConfig `hcl:"matchup,block"`
}

// MatchupConfig holds the value and bluff 3-bet ranges of Hero against Opener.
type MatchupConfig struct {
	Hero   string `hcl:"hero,label"`
	Opener string `hcl:"opener,label"`
	Value  string `hcl:"value,optional"`
	Bluff  string `hcl:"bluff,optional"`
}

// DefenseConfig is one BB-versus-SB tier covering stacks <= MaxStack.
type DefenseConfig struct {
	Name     string  `hcl:"name,label"`
	MaxStack float64 `hcl:"max_stack"`
	Call     string  `hcl:"call"`
}

// LoadConfig loads a rule book from an HCL file. A missing file yields the
// default book; sections omitted from the file are taken from the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Thresholds == nil {
		config.Thresholds = defaults.Thresholds
	}
	if config.Thresholds.AutoShoveMaxStack == 0 {
		config.Thresholds.AutoShoveMaxStack = defaults.Thresholds.AutoShoveMaxStack
	}
	if config.Thresholds.BlindDefenseMaxStack == 0 {
		config.Thresholds.BlindDefenseMaxStack = defaults.Thresholds.BlindDefenseMaxStack
	}
	if len(config.Open) == 0 {
		config.Open = defaults.Open
	}
	if len(config.Shove) == 0 {
		config.Shove = defaults.Shove
	}
	if len(config.ThreeBet) == 0 {
		config.ThreeBet = defaults.ThreeBet
	}
	if len(config.BlindDefense) == 0 {
		config.BlindDefense = defaults.BlindDefense
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the structure of the book: names, bucket boundaries and
// references. Range notation itself is checked when the Book is built.
func (c *Config) Validate() error {
	var errs []error

	if c.Thresholds == nil {
		errs = append(errs, errors.New("thresholds block is required"))
	} else {
		if c.Thresholds.AutoShoveMaxStack <= 0 {
			errs = append(errs, errors.New("auto_shove_max_stack must be positive"))
		}
		if c.Thresholds.BlindDefenseMaxStack <= 0 {
			errs = append(errs, errors.New("blind_defense_max_stack must be positive"))
		}
	}

	errs = append(errs, c.validateOpen()...)
	errs = append(errs, c.validateShove()...)
	errs = append(errs, c.validateThreeBet()...)
	errs = append(errs, c.validateDefense()...)

	return errors.Join(errs...)
}

func (c *Config) validateOpen() []error {
	var errs []error
	if len(c.Open) == 0 {
		return []error{errors.New("at least one open tier is required")}
	}

	names := make(map[string]OpenConfig)
	var mins []float64
	for _, t := range c.Open {
		if _, dup := names[t.Name]; dup {
			errs = append(errs, fmt.Errorf("open tier %q is defined twice", t.Name))
		}
		names[t.Name] = t
		if slices.Contains(mins, t.MinStack) {
			errs = append(errs, fmt.Errorf("open tier %q: min_stack %g overlaps another tier", t.Name, t.MinStack))
		}
		mins = append(mins, t.MinStack)
		if t.MinStack < 0 {
			errs = append(errs, fmt.Errorf("open tier %q: min_stack must not be negative", t.Name))
		}
		for seat := range t.Ranges {
			p, err := poker.ParsePosition(seat)
			if err != nil {
				errs = append(errs, fmt.Errorf("open tier %q: %w", t.Name, err))
				continue
			}
			if !p.CanOpen() {
				errs = append(errs, fmt.Errorf("open tier %q: %s never opens a pot", t.Name, p))
			}
		}
	}
	if !slices.Contains(mins, 0) {
		errs = append(errs, errors.New("one open tier must have min_stack = 0"))
	}

	// same_as chains must resolve without cycles
	for _, t := range c.Open {
		seen := map[string]bool{t.Name: true}
		for ref := t.SameAs; ref != ""; ref = names[ref].SameAs {
			if _, ok := names[ref]; !ok {
				errs = append(errs, fmt.Errorf("open tier %q: same_as refers to unknown tier %q", t.Name, ref))
				break
			}
			if seen[ref] {
				errs = append(errs, fmt.Errorf("open tier %q: same_as cycle through %q", t.Name, ref))
				break
			}
			seen[ref] = true
		}
	}
	return errs
}

func (c *Config) validateShove() []error {
	var errs []error
	if len(c.Shove) == 0 {
		return []error{errors.New("at least one shove tier is required")}
	}

	unbounded := 0
	var maxes []float64
	for _, t := range c.Shove {
		if t.MaxStack == 0 {
			unbounded++
		} else if slices.Contains(maxes, t.MaxStack) {
			errs = append(errs, fmt.Errorf("shove tier %q: max_stack %g overlaps another tier", t.Name, t.MaxStack))
		}
		if t.MaxStack < 0 {
			errs = append(errs, fmt.Errorf("shove tier %q: max_stack must not be negative", t.Name))
		}
		maxes = append(maxes, t.MaxStack)
		for class := range t.Ranges {
			if _, err := poker.ParseShoveClass(class); err != nil {
				errs = append(errs, fmt.Errorf("shove tier %q: %w", t.Name, err))
			}
		}
	}
	if unbounded != 1 {
		errs = append(errs, fmt.Errorf("exactly one shove tier must omit max_stack, found %d", unbounded))
	}
	return errs
}

func (c *Config) validateThreeBet() []error {
	var errs []error
	if len(c.ThreeBet) == 0 {
		return []error{errors.New("at least one three_bet tier is required")}
	}

	names := make(map[string]ThreeBetConfig)
	var mins []float64
	for _, t := range c.ThreeBet {
		if _, dup := names[t.Name]; dup {
			errs = append(errs, fmt.Errorf("three_bet tier %q is defined twice", t.Name))
		}
		names[t.Name] = t
		if slices.Contains(mins, t.MinStack) {
			errs = append(errs, fmt.Errorf("three_bet tier %q: min_stack %g overlaps another tier", t.Name, t.MinStack))
		}
		mins = append(mins, t.MinStack)
		for label, sizing := range map[string][]float64{"sizing_ip": t.SizingIP, "sizing_oop": t.SizingOOP} {
			if len(sizing) != 2 || sizing[0] <= 0 || sizing[0] > sizing[1] {
				errs = append(errs, fmt.Errorf("three_bet tier %q: %s must be [low, high] with 0 < low <= high", t.Name, label))
			}
		}
		if t.MostlyShove && t.Shove == "" {
			errs = append(errs, fmt.Errorf("three_bet tier %q: mostly_shove requires a shove range", t.Name))
		}
		for _, m := range t.Matchups {
			hero, herr := poker.ParsePosition(m.Hero)
			opener, oerr := poker.ParsePosition(m.Opener)
			switch {
			case herr != nil:
				errs = append(errs, fmt.Errorf("three_bet tier %q: hero: %w", t.Name, herr))
			case oerr != nil:
				errs = append(errs, fmt.Errorf("three_bet tier %q: opener: %w", t.Name, oerr))
			case !opener.CanOpen():
				errs = append(errs, fmt.Errorf("three_bet tier %q: %s cannot be the opener", t.Name, opener))
			case hero == opener:
				errs = append(errs, fmt.Errorf("three_bet tier %q: hero and opener are both %s", t.Name, hero))
			}
		}
	}
	if !slices.Contains(mins, 0) {
		errs = append(errs, errors.New("one three_bet tier must have min_stack = 0"))
	}
	for _, t := range c.ThreeBet {
		if t.SameAs == "" {
			continue
		}
		ref, ok := names[t.SameAs]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("three_bet tier %q: same_as refers to unknown tier %q", t.Name, t.SameAs))
		case ref.SameAs != "":
			errs = append(errs, fmt.Errorf("three_bet tier %q: same_as must name a tier without its own same_as", t.Name))
		}
	}
	return errs
}

func (c *Config) validateDefense() []error {
	var errs []error
	var maxes []float64
	for _, t := range c.BlindDefense {
		if t.MaxStack <= 0 {
			errs = append(errs, fmt.Errorf("blind_defense tier %q: max_stack must be positive", t.Name))
		}
		if slices.Contains(maxes, t.MaxStack) {
			errs = append(errs, fmt.Errorf("blind_defense tier %q: max_stack %g overlaps another tier", t.Name, t.MaxStack))
		}
		maxes = append(maxes, t.MaxStack)
	}
	return errs
}
