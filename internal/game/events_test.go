package game

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickingObserver struct{}

func (panickingObserver) OnEvent(Event) {
	panic("presentation bug")
}

func TestPublishIsolatesObserverPanics(t *testing.T) {
	var buf bytes.Buffer
	bus := NewEventBus(log.New(&buf))

	before := &eventRecorder{}
	after := &eventRecorder{}
	bus.Subscribe(before)
	bus.Subscribe(panickingObserver{})
	bus.Subscribe(after)

	assert.NotPanics(t, func() {
		bus.Publish(NewTurnStartEvent(dealerView()))
	})

	assert.Len(t, before.events, 1)
	assert.Len(t, after.events, 1, "observers after the panicking one still hear the event")
	assert.Contains(t, buf.String(), "observer panicked")
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus(log.Default())

	var order []string
	bus.Subscribe(observerFunc(func(Event) { order = append(order, "first") }))
	bus.Subscribe(observerFunc(func(Event) { order = append(order, "second") }))

	bus.Publish(NewTurnStartEvent(dealerView()))
	assert.Equal(t, []string{"first", "second"}, order)
}

type observerFunc func(Event)

func (f observerFunc) OnEvent(e Event) { f(e) }

func TestEventTypes(t *testing.T) {
	player := PlayerView{ID: 1, Name: "Player 1", Bankroll: 1000}
	hand := HandView{Value: 18}

	tests := []struct {
		event    Event
		expected EventType
	}{
		{NewRoundStartEvent("r", []PlayerView{player}), EventTypeRoundStart},
		{NewBetPlacedEvent(player, 100), EventTypeBetPlaced},
		{NewDealEvent(dealerView(), hand), EventTypeDeal},
		{NewTurnStartEvent(dealerView()), EventTypeTurnStart},
		{NewActionEvent(dealerView(), Hit), EventTypeAction},
		{NewHandValueEvent(dealerView(), hand), EventTypeHandValue},
		{NewSettlementEvent(player, hand, OutcomeWin, 200), EventTypeSettlement},
		{NewPlayerBootedEvent(player), EventTypePlayerBooted},
		{NewRoundEndEvent(3, 150), EventTypeRoundEnd},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.EventType())
			require.False(t, tt.event.Timestamp().IsZero())
		})
	}
}
