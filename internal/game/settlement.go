package game

// Outcome is how a single hand settled at the end of a round
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomePush
	OutcomeSurrender
)

func (o Outcome) String() string {
	return [...]string{"win", "lose", "push", "surrender"}[o]
}

// blackjackPayout is the 3:2 premium for a natural, in integer currency.
// bet*3 happens before the halving so $5 pays $7, not $6.
func blackjackPayout(bet int) int {
	return bet * 3 / 2
}

// surrenderRefund splits a surrendered stake: the player recovers half,
// truncated, and the dealer collects the remainder so no unit is lost.
func surrenderRefund(bet int) (refund, forfeit int) {
	refund = bet / 2
	return refund, bet - refund
}
