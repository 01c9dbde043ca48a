package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-advisor/poker"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name       string
		notation   string
		wantSize   int
		wantCombos int
		wantErr    bool
	}{
		{
			name:       "pocket aces",
			notation:   "AA",
			wantSize:   1,
			wantCombos: 6,
		},
		{
			name:       "ace king suited",
			notation:   "AKs",
			wantSize:   1,
			wantCombos: 4,
		},
		{
			name:       "ace king offsuit",
			notation:   "AKo",
			wantSize:   1,
			wantCombos: 12,
		},
		{
			name:       "ace king any",
			notation:   "AK",
			wantSize:   2,
			wantCombos: 16,
		},
		{
			name:       "reversed ranks",
			notation:   "KAs",
			wantSize:   1,
			wantCombos: 4,
		},
		{
			name:       "multiple hands",
			notation:   "AA,KK,AKs",
			wantSize:   3,
			wantCombos: 16,
		},
		{
			name:       "whitespace separated",
			notation:   "AA KK\tAKs",
			wantSize:   3,
			wantCombos: 16,
		},
		{
			name:       "pocket pairs range",
			notation:   "TT+",
			wantSize:   5,
			wantCombos: 30,
		},
		{
			name:       "all pairs",
			notation:   "22+",
			wantSize:   13,
			wantCombos: 78,
		},
		{
			name:       "suited range plus",
			notation:   "ATs+",
			wantSize:   4,
			wantCombos: 16,
		},
		{
			name:       "offsuit range plus",
			notation:   "KJo+",
			wantSize:   2,
			wantCombos: 24,
		},
		{
			name:       "any suitedness plus",
			notation:   "AQ+",
			wantSize:   4,
			wantCombos: 32,
		},
		{
			name:       "dash range pairs",
			notation:   "22-55",
			wantSize:   4,
			wantCombos: 24,
		},
		{
			name:       "dash range pairs descending",
			notation:   "JJ-99",
			wantSize:   3,
			wantCombos: 18,
		},
		{
			name:       "dash range suited",
			notation:   "A5s-A2s",
			wantSize:   4,
			wantCombos: 16,
		},
		{
			name:       "complex range",
			notation:   "TT+,AJs+,KQs",
			wantSize:   9,
			wantCombos: 46,
		},
		{
			name:       "overlapping parts collapse",
			notation:   "22+,TT+,AA",
			wantSize:   13,
			wantCombos: 78,
		},
		{
			name:     "empty notation",
			notation: "",
		},
		{
			name:     "lowercase",
			notation: "aks,tt+",
			wantSize: 6,
			// AKs + TT..AA
			wantCombos: 34,
		},
		{
			name:     "invalid notation",
			notation: "XX",
			wantErr:  true,
		},
		{
			name:     "invalid modifier",
			notation: "AKx",
			wantErr:  true,
		},
		{
			name:     "pocket pair with modifier",
			notation: "AAs",
			wantErr:  true,
		},
		{
			name:     "pair plus with modifier",
			notation: "TTs+",
			wantErr:  true,
		},
		{
			name:     "mismatched dash suitedness",
			notation: "A5s-A2o",
			wantErr:  true,
		},
		{
			name:     "dash across high cards",
			notation: "A5s-K2s",
			wantErr:  true,
		},
		{
			name:     "dash pair to non-pair",
			notation: "22-A5s",
			wantErr:  true,
		},
		{
			name:     "valid parts do not hide a bad one",
			notation: "AA,KK,QX",
			wantErr:  true,
		},
		{
			name:     "too long",
			notation: "AKss",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.notation)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, r.Size())
			assert.Equal(t, tt.wantCombos, r.Combos())
		})
	}
}

func TestParseRangeErrorNamesToken(t *testing.T) {
	_, err := ParseRange("22+, A2s+, K1o")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"K1o"`)
}

func TestPairPlusYieldsEveryPair(t *testing.T) {
	r := MustParseRange("22+")
	assert.Equal(t, "AA,KK,QQ,JJ,TT,99,88,77,66,55,44,33,22", r.String())
	for _, h := range r.Hands() {
		assert.True(t, h.IsPair())
	}
}

func TestAceXSuitedPlusYieldsTwelveSuitedHands(t *testing.T) {
	r := MustParseRange("A2s+")
	require.Equal(t, 12, r.Size())
	for _, h := range r.Hands() {
		assert.True(t, h.Suited, h.String())
		assert.Equal(t, poker.Ace, h.High)
		assert.False(t, h.IsPair())
	}
	assert.True(t, r.Contains(poker.MustParseStartingHand("AKs")))
	assert.True(t, r.Contains(poker.MustParseStartingHand("A2s")))
	assert.False(t, r.Contains(poker.MustParseStartingHand("A2o")))
	assert.False(t, r.Contains(poker.MustParseStartingHand("AA")))
}

func TestPlusRangeThreshold(t *testing.T) {
	// Membership of a weaker kicker depends only on the threshold.
	for low := poker.Two; low < poker.King; low++ {
		threshold := poker.NewStartingHand(poker.King, low, true)
		r := MustParseRange(threshold.String() + "+")
		for kicker := poker.Two; kicker < poker.King; kicker++ {
			h := poker.NewStartingHand(poker.King, kicker, true)
			assert.Equal(t, kicker >= low, r.Contains(h), "%s in %s+", h, threshold)
		}
	}
}

func TestRangeUnionAndEqual(t *testing.T) {
	a := MustParseRange("AA,KK")
	b := MustParseRange("KK,QQ")
	u := a.Union(b, nil)

	assert.Equal(t, 3, u.Size())
	assert.True(t, u.Equal(MustParseRange("QQ+")))
	assert.False(t, u.Equal(a))
	// Inputs are untouched
	assert.Equal(t, 2, a.Size())

	var empty *Range
	assert.True(t, empty.Equal(NewRange()))
	assert.False(t, empty.Contains(poker.MustParseStartingHand("AA")))
}

func TestRangePercent(t *testing.T) {
	all := NewRange()
	for i := range poker.NumStartingHands {
		all.Add(poker.StartingHandFromIndex(i))
	}
	assert.Equal(t, TotalCombos, all.Combos())
	assert.InDelta(t, 100.0, all.Percent(), 1e-9)
	assert.InDelta(t, 6.0*100/TotalCombos, MustParseRange("AA").Percent(), 1e-9)
}

func TestRangeStringIsCanonical(t *testing.T) {
	r := MustParseRange("KQo, AKs, 22, QQ+")
	assert.Equal(t, "AA,KK,QQ,22,AKs,KQo", r.String())

	again := MustParseRange(r.String())
	assert.True(t, r.Equal(again))
}
