package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Visible controls how the card renders;
// the dealer's hole card is the only card dealt face-down.
type Card struct {
	Suit    Suit
	Rank    Rank
	Visible bool
}

// NewCard creates a new face-up card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, Visible: true}
}

// String returns the string representation of a card (e.g., "A♠"),
// or a placeholder while the card is face-down
func (c Card) String() string {
	if !c.Visible {
		return "[hidden]"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsTenValued returns true for the ranks worth ten points (10, J, Q, K)
func (c Card) IsTenValued() bool {
	return c.Rank >= Ten && c.Rank <= King
}

// Points returns the blackjack point value of the card. Aces count as one
// here; promoting an ace to eleven is the hand's job, since it depends on
// the rest of the cards held.
func (c Card) Points() int {
	switch {
	case c.IsAce():
		return 1
	case c.IsTenValued():
		return 10
	default:
		return int(c.Rank)
	}
}
