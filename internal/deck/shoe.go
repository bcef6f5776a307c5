package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned when a deal is requested with no cards remaining.
// Running a shoe dry is a table-sizing mistake the caller must surface, not
// paper over with a phantom card.
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe holds the shuffled cards of one or more standard decks. Cards are
// dealt from the top and returned between rounds. The shoe is not safe for
// concurrent use; it is owned by a single round at a time.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe builds a shoe from deckCount standard 52-card decks and shuffles
// it. The RNG is required so tests can make dealing deterministic.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}

	s := &Shoe{
		cards: make([]Card, 0, deckCount*52),
		rng:   rng,
	}
	for d := 0; d < deckCount; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.Shuffle()

	return s
}

// NewStackedShoe builds a shoe holding exactly the given cards in order,
// top card first. No shuffle is performed; deterministic tests depend on
// the order surviving construction.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{cards: stacked, rng: rng}
}

// Shuffle randomizes the order of the remaining cards
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Deal removes and returns the top card. Returns ErrEmptyShoe when no
// cards remain.
func (s *Shoe) Deal() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// ReturnCards appends cards back into the shoe face-up. The shoe is not
// reshuffled here; callers shuffle explicitly once the cleanup contract
// requires it.
func (s *Shoe) ReturnCards(cards []Card) {
	for _, card := range cards {
		card.Visible = true
		s.cards = append(s.cards, card)
	}
}

// CardsRemaining returns the number of cards left in the shoe
func (s *Shoe) CardsRemaining() int {
	return len(s.cards)
}
