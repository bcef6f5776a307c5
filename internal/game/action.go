package game

// Action represents a player action on a single hand
type Action int

// Actions are declared in lexical order of their names so that a sorted
// presentation is just the declaration order.
const (
	Double Action = iota
	Hit
	Split
	Stay
	Surrender
)

func (a Action) String() string {
	return [...]string{"double", "hit", "split", "stay", "surrender"}[a]
}

// legalActions computes the actions available on a hand given the player's
// spare bankroll, in lexical order. Busted and blackjack hands get no
// actions; they resolve themselves.
func legalActions(hand *Hand, bankroll, currentBet int) []Action {
	if hand.IsBusted() || hand.IsBlackjack() {
		return nil
	}

	var actions []Action
	if hand.IsInitialHand() {
		if bankroll >= currentBet {
			actions = append(actions, Double)
		}
	}
	if hand.CanHit() {
		actions = append(actions, Hit)
	}
	if hand.CanSplit() {
		actions = append(actions, Split)
	}
	actions = append(actions, Stay)
	if hand.IsInitialHand() {
		actions = append(actions, Surrender)
	}

	return actions
}
