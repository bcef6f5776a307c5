package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
)

func handOf(ranks ...deck.Rank) *Hand {
	h := NewHand()
	for i, rank := range ranks {
		// Cycle suits so duplicate ranks stay legal cards
		h.AddCard(deck.NewCard(deck.Suit(i%4), rank))
	}
	return h
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []deck.Rank
		expected int
	}{
		{name: "simple total", ranks: []deck.Rank{deck.Four, deck.Five, deck.King}, expected: 19},
		{name: "face cards are ten", ranks: []deck.Rank{deck.Jack, deck.Queen}, expected: 20},
		{name: "soft ace stays eleven", ranks: []deck.Rank{deck.Ace, deck.Six}, expected: 17},
		{name: "ace demotes to avoid bust", ranks: []deck.Rank{deck.Ace, deck.Six, deck.Nine}, expected: 16},
		{name: "two aces and a nine", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Nine}, expected: 21},
		{name: "four bare aces", ranks: []deck.Rank{deck.Ace, deck.Ace, deck.Ace, deck.Ace}, expected: 14},
		{name: "bust is returned not clamped", ranks: []deck.Rank{deck.King, deck.Queen, deck.Five}, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handOf(tt.ranks...).Value())
		})
	}
}

func TestValuePermutationInvariance(t *testing.T) {
	ranks := []deck.Rank{deck.Ace, deck.Five, deck.Ace, deck.King, deck.Three}
	want := handOf(ranks...).Value()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(ranks), func(a, b int) {
			ranks[a], ranks[b] = ranks[b], ranks[a]
		})
		assert.Equal(t, want, handOf(ranks...).Value(), "order %v", ranks)
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, handOf(deck.Ace, deck.King).IsBlackjack())
	assert.True(t, handOf(deck.Ten, deck.Ace).IsBlackjack(), "order-independent")

	// Same ranks in a three-card hand are 21 but not blackjack
	assert.False(t, handOf(deck.Ace, deck.King, deck.Queen).IsBlackjack())
	// 21 from three cards is never blackjack
	assert.False(t, handOf(deck.Seven, deck.Seven, deck.Seven).IsBlackjack())
	// A split hand can never be blackjack
	split := newSplitHand(deck.NewCard(deck.Spades, deck.Ace))
	split.AddCard(deck.NewCard(deck.Hearts, deck.King))
	assert.False(t, split.IsBlackjack())
	assert.Equal(t, 21, split.Value())
}

func TestScore(t *testing.T) {
	assert.Equal(t, 22, handOf(deck.Ace, deck.Queen).Score(), "blackjack outranks every made hand")
	assert.Equal(t, 0, handOf(deck.King, deck.Queen, deck.Five).Score(), "busts rank below everything")
	assert.Equal(t, 18, handOf(deck.Ten, deck.Eight).Score())
	assert.Equal(t, 21, handOf(deck.Seven, deck.Seven, deck.Seven).Score(), "three-card 21 is just 21")
}

func TestCanSplit(t *testing.T) {
	assert.True(t, handOf(deck.Eight, deck.Eight).CanSplit())
	assert.True(t, handOf(deck.Ten, deck.King).CanSplit(), "any two ten-valued cards pair up")
	assert.False(t, handOf(deck.Nine, deck.Ten).CanSplit())
	assert.False(t, handOf(deck.Eight, deck.Eight, deck.Eight).CanSplit(), "only two-card hands split")
}

func TestSplit(t *testing.T) {
	h := handOf(deck.Eight, deck.Eight)
	children := h.Split()
	require.Len(t, children, 2)
	for i, child := range children {
		assert.True(t, child.IsSplitHand())
		assert.Equal(t, 1, child.Size())
		assert.Equal(t, deck.Eight, child.Cards()[0].Rank, "child %d", i)
		assert.False(t, child.IsInitialHand())
	}

	// Unsplittable hands come back unchanged
	h = handOf(deck.Nine, deck.Ten)
	children = h.Split()
	require.Len(t, children, 1)
	assert.Same(t, h, children[0])
}

func TestCanHit(t *testing.T) {
	assert.True(t, handOf(deck.Ten, deck.Six).CanHit())
	assert.False(t, handOf(deck.Ace, deck.King).CanHit(), "21 cannot hit")
	assert.False(t, handOf(deck.King, deck.Queen, deck.Five).CanHit(), "busted cannot hit")

	doubled := handOf(deck.Five, deck.Six)
	doubled.DoubleDown()
	assert.False(t, doubled.CanHit(), "doubling ends the hand's drawing")
	assert.True(t, doubled.IsDoubled())
}

func TestIsInitialHand(t *testing.T) {
	assert.True(t, handOf(deck.Two, deck.Three).IsInitialHand())
	assert.False(t, handOf(deck.Two, deck.Three, deck.Four).IsInitialHand())

	split := newSplitHand(deck.NewCard(deck.Spades, deck.Eight))
	split.AddCard(deck.NewCard(deck.Hearts, deck.Eight))
	assert.False(t, split.IsInitialHand())
}

func TestFlipHoleCard(t *testing.T) {
	h := NewHand()
	h.AddCard(deck.NewCard(deck.Spades, deck.King))
	hole := deck.NewCard(deck.Hearts, deck.Nine)
	hole.Visible = false
	h.AddCard(hole)

	assert.Equal(t, "K♠ [hidden]", h.String())
	h.FlipHoleCard()
	assert.Equal(t, "K♠ 9♥", h.String())

	// Flipping a one-card hand is a no-op
	single := NewHand()
	single.AddCard(deck.NewCard(deck.Spades, deck.Two))
	single.FlipHoleCard()
	assert.Equal(t, 1, single.Size())
}

func TestHandViewHidesHoleCard(t *testing.T) {
	h := NewHand()
	h.AddCard(deck.NewCard(deck.Spades, deck.Ace))
	hole := deck.NewCard(deck.Hearts, deck.King)
	hole.Visible = false
	h.AddCard(hole)

	v := h.view()
	assert.Equal(t, 11, v.Value, "only the upcard counts while the hole card is down")
	assert.False(t, v.Blackjack, "a hidden natural gives nothing away")

	h.FlipHoleCard()
	v = h.view()
	assert.Equal(t, 21, v.Value)
	assert.True(t, v.Blackjack)
}
