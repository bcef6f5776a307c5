package game

import "github.com/paulnsorensen/RBlackjack/internal/deck"

// PlayerView is the read-only snapshot of a player handed to agents and
// observers. Mutating it changes nothing in the game.
type PlayerView struct {
	ID       int
	Name     string
	Bankroll int
}

// ParticipantView identifies who an event is about: a seated player or
// the dealer
type ParticipantView struct {
	Name   string
	Dealer bool
}

// HandView is the read-only snapshot of a hand. Value and the flags are
// computed over the visible cards only, so a view of the dealer's hand
// before the hole card is flipped gives nothing away.
type HandView struct {
	Cards     []deck.Card
	Value     int
	Blackjack bool
	Busted    bool
	Doubled   bool
	SplitHand bool
}

// Agent supplies the decisions the engine cannot make for itself: how much
// each player stakes and which legal action they take. Implementations must
// return a bet in [1, player bankroll] and an action from the offered set;
// the engine fails the round on a violation rather than guessing.
type Agent interface {
	GetBet(player PlayerView) int
	GetDecision(player PlayerView, hand HandView, actions []Action) Action
}

func (p *Player) view() PlayerView {
	return PlayerView{ID: p.ID, Name: p.Name, Bankroll: p.bankroll}
}

func (p *Player) participantView() ParticipantView {
	return ParticipantView{Name: p.Name}
}

func dealerView() ParticipantView {
	return ParticipantView{Name: "Dealer", Dealer: true}
}

func (h *Hand) view() HandView {
	visible := NewHand()
	allVisible := true
	for _, card := range h.cards {
		if card.Visible {
			visible.AddCard(card)
		} else {
			allVisible = false
		}
	}

	v := HandView{
		Cards:     h.Cards(),
		Value:     visible.Value(),
		Doubled:   h.doubled,
		SplitHand: h.splitHand,
	}
	if allVisible {
		v.Value = h.Value()
		v.Blackjack = h.IsBlackjack()
		v.Busted = h.IsBusted()
	}
	return v
}
