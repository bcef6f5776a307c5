package console

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
	"github.com/paulnsorensen/RBlackjack/internal/game"
)

func testObserver() (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewObserver(&buf, WithDealDelay(0)), &buf
}

func player() game.PlayerView {
	return game.PlayerView{ID: 1, Name: "Player 1", Bankroll: 1000}
}

func seat() game.ParticipantView {
	return game.ParticipantView{Name: "Player 1"}
}

func handView(value int, cards ...deck.Card) game.HandView {
	return game.HandView{Cards: cards, Value: value}
}

func TestObserverRendersRound(t *testing.T) {
	o, buf := testObserver()
	hand := handView(19, deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine))

	o.OnEvent(game.NewRoundStartEvent("r", []game.PlayerView{player()}))
	o.OnEvent(game.NewBetPlacedEvent(player(), 100))
	o.OnEvent(game.NewDealEvent(seat(), hand))
	o.OnEvent(game.NewTurnStartEvent(seat()))
	o.OnEvent(game.NewActionEvent(seat(), game.Stay))
	o.OnEvent(game.NewHandValueEvent(seat(), hand))

	out := buf.String()
	assert.Contains(t, out, "Dealing cards...")
	assert.Contains(t, out, "Player 1 bets")
	assert.Contains(t, out, "Player 1 has been dealt")
	assert.Contains(t, out, "Player 1's turn:")
	assert.Contains(t, out, "Player 1 stays.")
	assert.Contains(t, out, "(value: 19)")
}

func TestObserverRendersBlackjackAndBust(t *testing.T) {
	o, buf := testObserver()

	natural := handView(21, deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King))
	natural.Blackjack = true
	o.OnEvent(game.NewHandValueEvent(seat(), natural))

	busted := handView(25, deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen), deck.NewCard(deck.Clubs, deck.Five))
	busted.Busted = true
	o.OnEvent(game.NewHandValueEvent(seat(), busted))

	out := buf.String()
	assert.Contains(t, out, "Blackjack!")
	assert.Contains(t, out, "busts!")
	assert.Contains(t, out, "(value: 25)")
}

func TestObserverRendersSettlements(t *testing.T) {
	o, buf := testObserver()
	hand := handView(20, deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Clubs, deck.Ten))

	o.OnEvent(game.NewSettlementEvent(player(), hand, game.OutcomeWin, 250))
	o.OnEvent(game.NewSettlementEvent(player(), hand, game.OutcomeLose, 100))
	o.OnEvent(game.NewSettlementEvent(player(), hand, game.OutcomePush, 100))
	o.OnEvent(game.NewSettlementEvent(player(), hand, game.OutcomeSurrender, 50))

	out := buf.String()
	assert.Contains(t, out, "wins")
	assert.Contains(t, out, "$250")
	assert.Contains(t, out, "loses")
	assert.Contains(t, out, "pushes")
	assert.Contains(t, out, "forfeits $50")
}

func TestObserverRendersGameLifecycle(t *testing.T) {
	o, buf := testObserver()

	o.OnEvent(game.NewPlayerBootedEvent(player()))
	o.OnEvent(game.NewRoundEndEvent(3, 120))

	out := buf.String()
	assert.Contains(t, out, "Player 1 has run out of money!")
	assert.Contains(t, out, "Round 3 finished. Dealer has collected $120 so far.")
}

func TestDealPacingDrivenByClock(t *testing.T) {
	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	var buf bytes.Buffer
	o := NewObserver(&buf, WithClock(mock), WithDealDelay(DefaultDealDelay))

	done := make(chan struct{})
	go func() {
		defer close(done)
		o.OnEvent(game.NewDealEvent(seat(), handView(10, deck.NewCard(deck.Spades, deck.Ten))))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	call := trap.MustWait(ctx)
	call.Release(ctx)
	mock.Advance(DefaultDealDelay).MustWait(ctx)
	<-done

	assert.Contains(t, buf.String(), "Player 1 has been dealt")
}

func TestZeroDelaySkipsClock(t *testing.T) {
	// A nil-safe check: with pacing disabled the mock clock is never touched,
	// so no trap is needed and the event renders synchronously.
	mock := quartz.NewMock(t)
	var buf bytes.Buffer
	o := NewObserver(&buf, WithClock(mock), WithDealDelay(0))

	o.OnEvent(game.NewDealEvent(seat(), handView(10, deck.NewCard(deck.Spades, deck.Ten))))
	assert.Contains(t, buf.String(), "has been dealt")
}

func TestFormatCardsHidesHoleCard(t *testing.T) {
	styles := DefaultStyles()
	hole := deck.NewCard(deck.Hearts, deck.Nine)
	hole.Visible = false

	out := styles.FormatCards([]deck.Card{deck.NewCard(deck.Spades, deck.King), hole})
	assert.Contains(t, out, "K♠")
	assert.Contains(t, out, "[hidden]")
	assert.NotContains(t, out, "9♥")
}
