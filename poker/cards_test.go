package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "??", Card(0).String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Card
		wantErr string
	}{
		{input: "As", want: NewCard(Ace, Spades)},
		{input: "2h", want: NewCard(Two, Hearts)},
		{input: "Kd", want: NewCard(King, Diamonds)},
		{input: "tc", want: NewCard(Ten, Clubs)},
		{input: "9S", want: NewCard(Nine, Spades)},
		{input: "Xs", wantErr: "invalid rank"},
		{input: "Ax", wantErr: "invalid suit"},
		{input: "", wantErr: "invalid card string"},
		{input: "A", wantErr: "invalid card string"},
		{input: "Asd", wantErr: "invalid card string"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestEveryCardRoundTrips(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for suit := range uint8(4) {
		for rank := range uint8(NumRanks) {
			card := NewCard(rank, suit)
			text := card.String()
			assert.False(t, seen[text], "duplicate card %s", text)
			seen[text] = true

			parsed, err := ParseCard(text)
			require.NoError(t, err)
			assert.Equal(t, card, parsed)
		}
	}
	assert.Len(t, seen, 52)
}

func TestParseRankAndSuitCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("tTjJqQkKaA") {
		_, ok := ParseRank(c)
		assert.True(t, ok, "rank %q", c)
	}
	for _, c := range []byte("cCdDhHsS") {
		_, ok := ParseSuit(c)
		assert.True(t, ok, "suit %q", c)
	}
	_, ok := ParseRank('1')
	assert.False(t, ok)
	assert.Equal(t, byte('A'), RankChar(Ace))
	assert.Equal(t, byte('2'), RankChar(Two))
	assert.Equal(t, byte('?'), RankChar(13))
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
