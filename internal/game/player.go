package game

import "fmt"

// DefaultBankroll is the stake every player sits down with
const DefaultBankroll = 1000

// Player is a seated participant with a bankroll. All money moves through
// Debit/Credit so a round never leaves a partial bet observable.
type Player struct {
	ID       int
	Name     string
	bankroll int
}

// NewPlayer creates a player with the given bankroll
func NewPlayer(id int, name string, bankroll int) *Player {
	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}
	return &Player{ID: id, Name: name, bankroll: bankroll}
}

// Bankroll returns the player's available money
func (p *Player) Bankroll() int {
	return p.bankroll
}

// Debit removes a stake from the player's bankroll
func (p *Player) Debit(amount int) {
	p.bankroll -= amount
}

// Credit returns winnings or refunded stakes to the player
func (p *Player) Credit(amount int) {
	p.bankroll += amount
}

func (p *Player) String() string {
	return p.Name
}

// Dealer tracks the house side of settlement as a single signed
// accumulator: collections increase it, payouts decrease it.
type Dealer struct {
	collected int
}

// NewDealer creates a dealer with nothing collected
func NewDealer() *Dealer {
	return &Dealer{}
}

// Collect adds a losing or forfeited stake to the dealer's total
func (d *Dealer) Collect(amount int) {
	d.collected += amount
}

// Pay deducts a payout from the dealer's total
func (d *Dealer) Pay(amount int) {
	d.collected -= amount
}

// CollectedMoney returns the dealer's signed running total
func (d *Dealer) CollectedMoney() int {
	return d.collected
}

func (d *Dealer) String() string {
	return "Dealer"
}
