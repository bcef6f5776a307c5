package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for the events the engine publishes while a round
// runs. Observers are purely presentational; the engine never reads back.
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeBetPlaced    EventType = "bet_placed"
	EventTypeDeal         EventType = "deal"
	EventTypeTurnStart    EventType = "turn_start"
	EventTypeAction       EventType = "action"
	EventTypeHandValue    EventType = "hand_value"
	EventTypeSettlement   EventType = "settlement"
	EventTypePlayerBooted EventType = "player_booted"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents anything that happens during a round that the
// presentation layer may want to announce
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a round begins
type RoundStartEvent struct {
	RoundID   string
	Players   []PlayerView
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string, players []PlayerView) RoundStartEvent {
	return RoundStartEvent{RoundID: roundID, Players: players, timestamp: time.Now()}
}

// BetPlacedEvent is published when a player's opening bet is recorded
type BetPlacedEvent struct {
	Player    PlayerView
	Amount    int
	timestamp time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewBetPlacedEvent creates a new bet placed event
func NewBetPlacedEvent(player PlayerView, amount int) BetPlacedEvent {
	return BetPlacedEvent{Player: player, Amount: amount, timestamp: time.Now()}
}

// DealEvent is published once per participant after the initial deal. The
// dealer's hand view still hides the hole card at this point.
type DealEvent struct {
	Participant ParticipantView
	Hand        HandView
	timestamp   time.Time
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }
func (e DealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealEvent creates a new deal event
func NewDealEvent(participant ParticipantView, hand HandView) DealEvent {
	return DealEvent{Participant: participant, Hand: hand, timestamp: time.Now()}
}

// TurnStartEvent is published when a participant's turn begins
type TurnStartEvent struct {
	Participant ParticipantView
	timestamp   time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(participant ParticipantView) TurnStartEvent {
	return TurnStartEvent{Participant: participant, timestamp: time.Now()}
}

// ActionEvent is published when a participant takes an action
type ActionEvent struct {
	Participant ParticipantView
	Action      Action
	timestamp   time.Time
}

func (e ActionEvent) EventType() EventType { return EventTypeAction }
func (e ActionEvent) Timestamp() time.Time { return e.timestamp }

// NewActionEvent creates a new action event
func NewActionEvent(participant ParticipantView, action Action) ActionEvent {
	return ActionEvent{Participant: participant, Action: action, timestamp: time.Now()}
}

// HandValueEvent is published whenever a hand's value is worth announcing:
// at the start of a hand's resolution and after every card it takes
type HandValueEvent struct {
	Participant ParticipantView
	Hand        HandView
	timestamp   time.Time
}

func (e HandValueEvent) EventType() EventType { return EventTypeHandValue }
func (e HandValueEvent) Timestamp() time.Time { return e.timestamp }

// NewHandValueEvent creates a new hand value event
func NewHandValueEvent(participant ParticipantView, hand HandView) HandValueEvent {
	return HandValueEvent{Participant: participant, Hand: hand, timestamp: time.Now()}
}

// SettlementEvent is published once per settled hand with the amount that
// changed hands: the total returned to the player for wins and pushes, the
// stake collected by the dealer for losses and surrenders
type SettlementEvent struct {
	Player    PlayerView
	Hand      HandView
	Outcome   Outcome
	Amount    int
	timestamp time.Time
}

func (e SettlementEvent) EventType() EventType { return EventTypeSettlement }
func (e SettlementEvent) Timestamp() time.Time { return e.timestamp }

// NewSettlementEvent creates a new settlement event
func NewSettlementEvent(player PlayerView, hand HandView, outcome Outcome, amount int) SettlementEvent {
	return SettlementEvent{Player: player, Hand: hand, Outcome: outcome, Amount: amount, timestamp: time.Now()}
}

// PlayerBootedEvent is published when a broke player is removed between rounds
type PlayerBootedEvent struct {
	Player    PlayerView
	timestamp time.Time
}

func (e PlayerBootedEvent) EventType() EventType { return EventTypePlayerBooted }
func (e PlayerBootedEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerBootedEvent creates a new player booted event
func NewPlayerBootedEvent(player PlayerView) PlayerBootedEvent {
	return PlayerBootedEvent{Player: player, timestamp: time.Now()}
}

// RoundEndEvent is published after cleanup with the running game totals
type RoundEndEvent struct {
	RoundsPlayed    int
	DealerCollected int
	timestamp       time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(roundsPlayed, dealerCollected int) RoundEndEvent {
	return RoundEndEvent{RoundsPlayed: roundsPlayed, DealerCollected: dealerCollected, timestamp: time.Now()}
}

// Observer receives events for presentation. Observers must not mutate
// game state and cannot abort a round: a panicking observer is logged and
// the round continues.
type Observer interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(observer Observer)
	Publish(event Event)
}

// SimpleEventBus is a synchronous in-memory event bus. Delivery isolates
// the engine from observer failures.
type SimpleEventBus struct {
	observers []Observer
	logger    *log.Logger
}

// NewEventBus creates a new event bus
func NewEventBus(logger *log.Logger) *SimpleEventBus {
	return &SimpleEventBus{logger: logger}
}

// Subscribe adds an observer to receive events
func (bus *SimpleEventBus) Subscribe(observer Observer) {
	bus.observers = append(bus.observers, observer)
}

// Publish sends an event to all observers in subscription order
func (bus *SimpleEventBus) Publish(event Event) {
	for _, observer := range bus.observers {
		bus.deliver(observer, event)
	}
}

func (bus *SimpleEventBus) deliver(observer Observer, event Event) {
	defer func() {
		if r := recover(); r != nil {
			bus.logger.Error("observer panicked; continuing round", "event", event.EventType(), "panic", r)
		}
	}()
	observer.OnEvent(event)
}
