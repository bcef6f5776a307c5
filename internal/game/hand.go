package game

import (
	"strings"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
)

// Hand is an ordered run of cards plus the split/doubled flags that gate
// what may still be done with it. A hand produced by a split starts with a
// single card and is completed by the engine before any action is offered.
type Hand struct {
	cards     []deck.Card
	splitHand bool
	doubled   bool
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{}
}

func newSplitHand(seed deck.Card) *Hand {
	return &Hand{cards: []deck.Card{seed}, splitHand: true}
}

// AddCard appends a dealt card to the hand
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards held
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Size returns the number of cards held
func (h *Hand) Size() int {
	return len(h.cards)
}

// IsSplitHand returns true if the hand was produced by a split
func (h *Hand) IsSplitHand() bool {
	return h.splitHand
}

// IsDoubled returns true once the hand has doubled down
func (h *Hand) IsDoubled() bool {
	return h.doubled
}

// FlipHoleCard turns the second card face-up if present. The dealer calls
// this exactly once, at the start of the dealer turn.
func (h *Hand) FlipHoleCard() {
	if len(h.cards) > 1 {
		h.cards[1].Visible = true
	}
}

// Value computes the best total achievable with the cards held. Every ace
// starts at eleven and is demoted to one, one at a time, while the total
// exceeds 21. The result may still exceed 21; that is a bust, not an error.
func (h *Hand) Value() int {
	value := 0
	aceCount := 0
	for _, card := range h.cards {
		if card.IsAce() {
			aceCount++
		} else {
			value += card.Points()
		}
	}

	value += 11 * aceCount
	for demoted := 0; value > 21 && demoted < aceCount; demoted++ {
		value -= 10
	}

	return value
}

// Score is the showdown ordering of the hand: 22 for blackjack so it beats
// every made total, 0 for a bust so it loses to every live hand, the
// plain value otherwise.
func (h *Hand) Score() int {
	switch {
	case h.IsBlackjack():
		return 22
	case h.IsBusted():
		return 0
	default:
		return h.Value()
	}
}

// IsInitialHand returns true for an untouched two-card starting hand.
// Split hands never qualify, whatever their size.
func (h *Hand) IsInitialHand() bool {
	return !h.splitHand && len(h.cards) == 2
}

// IsBlackjack returns true for an initial hand of an ace and a ten-valued
// card, in either order
func (h *Hand) IsBlackjack() bool {
	if !h.IsInitialHand() {
		return false
	}
	a, b := h.cards[0], h.cards[1]
	return (a.IsAce() && b.IsTenValued()) || (b.IsAce() && a.IsTenValued())
}

// IsBusted returns true once the value exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Value() > 21
}

// CanHit returns true while the hand may take another card
func (h *Hand) CanHit() bool {
	return !h.doubled && h.Value() < 21
}

// CanSplit returns true for a two-card hand of matching ranks. Any pair of
// ten-valued cards counts as matching, so 10♠ K♦ splits.
func (h *Hand) CanSplit() bool {
	if len(h.cards) != 2 {
		return false
	}
	a, b := h.cards[0], h.cards[1]
	return a.Rank == b.Rank || (a.IsTenValued() && b.IsTenValued())
}

// Split divides the hand into two one-card split hands, one seeded with
// each original card. If the hand cannot split, it is returned unchanged
// as the sole element. The caller deals each child its second card and
// re-derives the per-hand stakes.
func (h *Hand) Split() []*Hand {
	if !h.CanSplit() {
		return []*Hand{h}
	}
	return []*Hand{newSplitHand(h.cards[0]), newSplitHand(h.cards[1])}
}

// DoubleDown marks the hand as doubled; CanHit is permanently false after
func (h *Hand) DoubleDown() {
	h.doubled = true
}

// String renders the hand's cards, honouring visibility
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
