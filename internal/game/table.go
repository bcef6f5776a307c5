package game

import (
	"github.com/charmbracelet/log"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
)

// Table owns the long-lived pieces of a game: the seated players, the
// dealer, the shoe and the round engine. It repeatedly runs rounds until
// the continuation policy says stop or the table empties out.
type Table struct {
	players      []*Player
	dealer       *Dealer
	engine       *RoundEngine
	bus          EventBus
	logger       *log.Logger
	roundsPlayed int
}

// Summary reports the running totals of a game
type Summary struct {
	RoundsPlayed    int
	DealerCollected int
}

// NewTable seats the players against a fresh dealer
func NewTable(shoe *deck.Shoe, players []*Player, provider Agent, logger *log.Logger, observers ...Observer) *Table {
	dealer := NewDealer()
	bus := NewEventBus(logger)
	for _, observer := range observers {
		bus.Subscribe(observer)
	}

	return &Table{
		players: players,
		dealer:  dealer,
		engine: NewRoundEngine(shoe, dealer, provider,
			WithLogger(logger),
			WithEventBus(bus)),
		bus:    bus,
		logger: logger,
	}
}

// EventBus returns the bus table and engine events are published to
func (t *Table) EventBus() EventBus {
	return t.bus
}

// Players returns the players still seated
func (t *Table) Players() []*Player {
	return t.players
}

// Summary returns the rounds played so far and the dealer's signed total
func (t *Table) Summary() Summary {
	return Summary{RoundsPlayed: t.roundsPlayed, DealerCollected: t.dealer.CollectedMoney()}
}

// Run plays rounds until keepPlaying declines, every player goes broke, or
// a round fails. Broke players are booted between rounds, never mid-hand.
// A nil policy plays a single round.
func (t *Table) Run(keepPlaying func() bool) error {
	for {
		if err := t.engine.PlayRound(t.players); err != nil {
			return err
		}
		t.roundsPlayed++
		t.bus.Publish(NewRoundEndEvent(t.roundsPlayed, t.dealer.CollectedMoney()))

		t.bootBrokePlayers()
		if len(t.players) == 0 {
			t.logger.Info("table is empty, ending game", "rounds", t.roundsPlayed)
			return nil
		}
		if keepPlaying == nil || !keepPlaying() {
			return nil
		}
	}
}

func (t *Table) bootBrokePlayers() {
	remaining := t.players[:0]
	for _, p := range t.players {
		if p.Bankroll() == 0 {
			t.logger.Info("booting broke player", "player", p.Name)
			t.bus.Publish(NewPlayerBootedEvent(p.view()))
			continue
		}
		remaining = append(remaining, p)
	}
	t.players = remaining
}
