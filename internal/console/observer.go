package console

import (
	"fmt"
	"io"
	"time"

	"github.com/coder/quartz"

	"github.com/paulnsorensen/RBlackjack/internal/game"
)

// DefaultDealDelay paces deal announcements so multi-player deals read
// like cards hitting felt rather than a wall of text
const DefaultDealDelay = 300 * time.Millisecond

// Observer renders game events to the terminal. It is write-only: it never
// feeds anything back into the engine.
type Observer struct {
	out       io.Writer
	styles    *Styles
	clock     quartz.Clock
	dealDelay time.Duration
}

// ObserverOption configures an Observer
type ObserverOption func(*Observer)

// WithClock sets the clock used for deal pacing
func WithClock(clock quartz.Clock) ObserverOption {
	return func(o *Observer) { o.clock = clock }
}

// WithDealDelay sets the pause before each deal announcement; zero or
// negative disables pacing
func WithDealDelay(delay time.Duration) ObserverOption {
	return func(o *Observer) { o.dealDelay = delay }
}

// NewObserver creates a terminal observer writing to out
func NewObserver(out io.Writer, opts ...ObserverOption) *Observer {
	o := &Observer{
		out:       out,
		styles:    DefaultStyles(),
		clock:     quartz.NewReal(),
		dealDelay: DefaultDealDelay,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OnEvent renders a single game event
func (o *Observer) OnEvent(event game.Event) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Fprintf(o.out, "%s\n\n", o.styles.Info.Render("Dealing cards..."))

	case game.BetPlacedEvent:
		fmt.Fprintf(o.out, "\t%s bets %s\n", e.Player.Name, o.styles.Money.Render(fmt.Sprintf("$%d", e.Amount)))

	case game.DealEvent:
		o.pause()
		fmt.Fprintf(o.out, "\t%s has been dealt %s\n", e.Participant.Name, o.styles.FormatCards(e.Hand.Cards))

	case game.TurnStartEvent:
		fmt.Fprintf(o.out, "\n%s\n\n", o.styles.Turn.Render(fmt.Sprintf("%s's turn:", e.Participant.Name)))

	case game.ActionEvent:
		fmt.Fprintf(o.out, "\t%s %ss.\n", e.Participant.Name, e.Action)

	case game.HandValueEvent:
		o.renderHandValue(e)

	case game.SettlementEvent:
		o.renderSettlement(e)

	case game.PlayerBootedEvent:
		fmt.Fprintf(o.out, "%s\n", o.styles.Warning.Render(
			fmt.Sprintf("%s has run out of money! %s must leave.", e.Player.Name, e.Player.Name)))

	case game.RoundEndEvent:
		fmt.Fprintf(o.out, "\n%s\n", o.styles.Info.Render(
			fmt.Sprintf("Round %d finished. Dealer has collected $%d so far.", e.RoundsPlayed, e.DealerCollected)))
	}
}

func (o *Observer) renderHandValue(e game.HandValueEvent) {
	cards := o.styles.FormatCards(e.Hand.Cards)
	switch {
	case e.Hand.Blackjack:
		fmt.Fprintf(o.out, "\t%s has %s %s!\n\n", e.Participant.Name, o.styles.Win.Render("Blackjack!"), cards)
	case e.Hand.Busted:
		fmt.Fprintf(o.out, "\t%s's hand of %s %s (value: %d)\n\n", e.Participant.Name, cards,
			o.styles.Lose.Render("busts!"), e.Hand.Value)
	default:
		fmt.Fprintf(o.out, "\t%s has %s (value: %d)\n\n", e.Participant.Name, cards, e.Hand.Value)
	}
}

func (o *Observer) renderSettlement(e game.SettlementEvent) {
	cards := o.styles.FormatCards(e.Hand.Cards)
	switch e.Outcome {
	case game.OutcomeWin:
		fmt.Fprintf(o.out, "\t%s %s %s on %s.\n\n", e.Player.Name, o.styles.Win.Render("wins"),
			o.styles.Money.Render(fmt.Sprintf("$%d", e.Amount)), cards)
	case game.OutcomeLose:
		fmt.Fprintf(o.out, "\t%s %s $%d on %s.\n\n", e.Player.Name, o.styles.Lose.Render("loses"), e.Amount, cards)
	case game.OutcomePush:
		fmt.Fprintf(o.out, "\t%s %s on %s.\n\n", e.Player.Name, o.styles.Push.Render("pushes"), cards)
	case game.OutcomeSurrender:
		fmt.Fprintf(o.out, "\t%s surrenders %s and forfeits $%d.\n\n", e.Player.Name, cards, e.Amount)
	}
}

// pause blocks for the deal delay. Driven by a quartz clock so tests can
// run against a mock instead of sleeping.
func (o *Observer) pause() {
	if o.dealDelay <= 0 {
		return
	}

	done := make(chan struct{})
	timer := o.clock.AfterFunc(o.dealDelay, func() {
		close(done)
	})
	defer timer.Stop()
	<-done
}
