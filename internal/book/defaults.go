package book

// Stack thresholds of the default book, in big blinds.
const (
	DefaultAutoShoveMaxStack    = 20
	DefaultBlindDefenseMaxStack = 20
)

// btnOpen is every pair, every ace, every suited king, queen and jack, the
// suited connectors from 54s and the one-gappers from 64s.
const btnOpen = "22+,A2s+,A2o+,K2s+,Q2s+,J2s+,T9s,98s,87s,76s,65s,54s,T8s,97s,86s,75s,64s"

// DefaultConfig returns the built-in rule book.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: &Thresholds{
			AutoShoveMaxStack:    DefaultAutoShoveMaxStack,
			BlindDefenseMaxStack: DefaultBlindDefenseMaxStack,
		},
		Open:         defaultOpen(),
		Shove:        defaultShove(),
		ThreeBet:     defaultThreeBet(),
		BlindDefense: defaultBlindDefense(),
	}
}

func defaultOpen() []OpenConfig {
	return []OpenConfig{
		{
			Name:     "100",
			MinStack: 75,
			Ranges: map[string]string{
				"UTG": "22+,A2s+,AJo+,KQo,KJs+,QJs",
				"MP":  "22+,A2s+,ATs+,ATo+,KTs+,QTs+,JTs",
				"HJ":  "22+,A2s+,A9o+,K9s+,Q9s+,J9s+,T9s",
				"CO":  "22+,A2s+,A8o+,K8s+,Q8s+,J8s+,98s,54s+",
				"BTN": btnOpen,
				"SB":  "22+,A2s+,A5o+,K7s+,KTo+,Q8s+,QTo+,J8s+,JTo,T8s+,98s,87s,76s",
			},
			EarlyRaise: 2.2,
			LateRaise:  2.5,
			BlindRaise: 3.0,
		},
		{
			// Identical to the deep tier apart from the CO connectors and a tighter SB.
			Name:     "50",
			MinStack: 40,
			SameAs:   "100",
			Ranges: map[string]string{
				"CO": "22+,A2s+,A8o+,K8s+,Q8s+,J8s+,98s,65s+",
				"SB": "22+,A2s+,A7o+,K8s+,KTo+,Q9s+,QJo,J9s+,T9s,98s",
			},
			EarlyRaise: 2.2,
			LateRaise:  2.3,
			BlindRaise: 3.0,
		},
		{
			Name:     "30",
			MinStack: 22,
			SameAs:   "50",
			Ranges: map[string]string{
				"UTG": "22+,A2s+,ATs+,AQo,KQs",
			},
			EarlyRaise: 2.1,
			LateRaise:  2.2,
			BlindRaise: 2.5,
		},
		{
			Name:     "15",
			MinStack: 0,
			SameAs:   "100",
			Ranges: map[string]string{
				"UTG": "66+,ATs+,AJ+,KQs",
				"MP":  "55+,ATs+,AJ+,KQo",
				"HJ":  "44+,ATs+,AJ+,KTs+",
				"CO":  "22+,A2s+,A9o+,K9s+,Q9s+",
				"SB":  "22+,A2s+,A8o+,K9s+,KJo+,QTs+,JTs",
			},
			EarlyRaise: 2.0,
			LateRaise:  2.0,
			BlindRaise: 2.0,
		},
	}
}

func defaultShove() []ShoveConfig {
	return []ShoveConfig{
		{
			Name:     "10",
			MaxStack: 12,
			Ranges: map[string]string{
				"EP": "44+,A5s+,ATo+,KQs",
				"MP": "22+,A7s+,ATo+,KJs+,QJs,87s",
				"LP": "22+,A2s+,A7o+,K3s+,KTo+,Q6s+,QJo,J8s+,T8s+,98s,87s,76s,65s",
				"SB": "22+,A2s+,A2o+,K5s+,Q8s+,J9s+",
			},
		},
		{
			Name:     "15",
			MaxStack: 17,
			Ranges: map[string]string{
				"EP": "33+,A3s+,A9o+,KQs",
				"MP": "33+,A3s+,A9o+,KTs+,QTs+,JTs",
				"LP": "22+,A2s+,A8o+,K5s+,K9o+,Q8s+,J8s+,T8s+,98s,87s,76s",
				"SB": "22+,A2s+,A2o+,K7s+,Q9s+,JTs",
			},
		},
		{
			Name: "20",
			Ranges: map[string]string{
				"EP": "22+,A2s+,A8o+,KJs+",
				"MP": "22+,A2s+,A8o+,KTs+,QTs+",
				"LP": "22+,A2s+,A5o+,K8s+,KJo+,Q9s+,J9s+,T9s,98s,87s",
				"SB": "22+,A2s+,A5o+,K9s+,QTs+",
			},
		},
	}
}

// valueCells are the value 3-bet ranges shared by the 100, 50 and 30 tiers.
var valueCells = []MatchupConfig{
	{Hero: "BB", Opener: "UTG", Value: "QQ+,AK"},
	{Hero: "BB", Opener: "MP", Value: "QQ+,AK"},
	{Hero: "BB", Opener: "CO", Value: "JJ+,AK"},
	{Hero: "BB", Opener: "BTN", Value: "TT+,AQ+"},
	{Hero: "SB", Opener: "UTG", Value: "QQ+,AK"},
	{Hero: "SB", Opener: "MP", Value: "JJ+,AK"},
	{Hero: "SB", Opener: "CO", Value: "TT+,AQ+"},
	{Hero: "SB", Opener: "BTN", Value: "99+,AQ+"},
	{Hero: "BTN", Opener: "UTG", Value: "JJ+,AK"},
	{Hero: "BTN", Opener: "MP", Value: "TT+,AQ+"},
	{Hero: "BTN", Opener: "CO", Value: "99+,AQ+"},
	{Hero: "CO", Opener: "UTG", Value: "JJ+,AK"},
	{Hero: "CO", Opener: "MP", Value: "TT+,AQ+"},
	{Hero: "MP", Opener: "UTG", Value: "JJ+,AK"},
	{Hero: "MP", Opener: "CO", Value: "TT+,AQ+"},
	{Hero: "MP", Opener: "BTN", Value: "99+,AQ+"},
}

// deepBluffs are the 100BB bluff 3-bet ranges, in valueCells order.
var deepBluffs = []string{
	"A5s-A2s,KJs",
	"A5s-A2s,KTs,QJs",
	"A5s-A2s,K9s,QTs",
	"A5s-A2s,K9s,Q9s",
	"A5s-A2s,KJs",
	"A5s-A2s,KTs,QJs",
	"A5s-A2s,K9s,QTs",
	"A5s-A2s,K9s,Q9s",
	"A5s-A2s,KTs",
	"A5s-A2s,K9s,QJs",
	"A5s-A2s,K9s,Q9s",
	"A5s-A2s,KTs",
	"A5s-A2s,K9s,QJs",
	"A5s-A2s,KTs",
	"A5s-A2s,K9s,QJs",
	"A5s-A2s,K9s,Q9s",
}

func matchups(bluff func(i int) string) []MatchupConfig {
	out := make([]MatchupConfig, len(valueCells))
	for i, cell := range valueCells {
		cell.Bluff = bluff(i)
		out[i] = cell
	}
	return out
}

func defaultThreeBet() []ThreeBetConfig {
	return []ThreeBetConfig{
		{
			Name:      "100",
			MinStack:  75,
			SizingIP:  []float64{3.0, 3.0},
			SizingOOP: []float64{3.5, 4.0},
			Matchups:  matchups(func(i int) string { return deepBluffs[i] }),
		},
		{
			Name:      "50",
			MinStack:  40,
			SizingIP:  []float64{2.7, 3.0},
			SizingOOP: []float64{3.5, 3.5},
			Matchups:  matchups(func(int) string { return "A5s-A4s,KTs" }),
		},
		{
			Name:       "30",
			MinStack:   22,
			LightShove: "99-JJ,AQ",
			SizingIP:   []float64{2.3, 2.7},
			SizingOOP:  []float64{3.0, 3.5},
			Matchups:   matchups(func(int) string { return "" }),
		},
		{
			Name:        "15",
			MinStack:    0,
			SameAs:      "100",
			MostlyShove: true,
			Shove:       "TT+,AQ+",
			SizingIP:    []float64{2.2, 2.5},
			SizingOOP:   []float64{3.0, 3.0},
		},
	}
}

func defaultBlindDefense() []DefenseConfig {
	return []DefenseConfig{
		{
			Name:     "10",
			MaxStack: 10,
			Call:     "22+,A2s+,A2o+,K2s+,K7o+,Q5s+,Q9o+,J7s+,J9o+,T7s+,T9o,96s+,86s+,75s+,65s,54s",
		},
		{
			Name:     "15",
			MaxStack: 15,
			Call:     "22+,A2s+,A4o+,K5s+,K9o+,Q8s+,QTo+,J8s+,JTo,T8s+,98s,87s",
		},
		{
			Name:     "20",
			MaxStack: 20,
			Call:     "22+,A2s+,A7o+,K8s+,KTo+,Q9s+,QJo,J9s+,T9s",
		},
	}
}
