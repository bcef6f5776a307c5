package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
	"github.com/paulnsorensen/RBlackjack/internal/roundid"
)

// Contract violations by the decision provider. The engine fails the round
// fast on these rather than silently correcting an external component.
var (
	ErrInvalidBet    = errors.New("bet outside allowed range")
	ErrInvalidAction = errors.New("action not in offered set")
)

// dealerStandsAt is the total at which the dealer stops hitting
const dealerStandsAt = 17

// RoundEngine runs complete rounds of blackjack against a shoe, a dealer
// and a decision provider. All round-scoped state (bets, hands) lives in a
// local roundState value, so the engine itself carries nothing between
// rounds except the shoe's card pool.
type RoundEngine struct {
	shoe     *deck.Shoe
	dealer   *Dealer
	provider Agent
	bus      EventBus
	logger   *log.Logger
	idgen    *roundid.Generator
}

// Option configures a RoundEngine
type Option func(*RoundEngine)

// WithLogger sets the engine's logger
func WithLogger(logger *log.Logger) Option {
	return func(e *RoundEngine) { e.logger = logger }
}

// WithEventBus sets the bus rounds publish to
func WithEventBus(bus EventBus) Option {
	return func(e *RoundEngine) { e.bus = bus }
}

// WithRoundIDGenerator sets the generator used for round IDs, so tests can
// produce stable ones
func WithRoundIDGenerator(g *roundid.Generator) Option {
	return func(e *RoundEngine) { e.idgen = g }
}

// NewRoundEngine creates a round engine
func NewRoundEngine(shoe *deck.Shoe, dealer *Dealer, provider Agent, opts ...Option) *RoundEngine {
	e := &RoundEngine{
		shoe:     shoe,
		dealer:   dealer,
		provider: provider,
		logger:   log.New(io.Discard),
		idgen:    roundid.NewGenerator(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = NewEventBus(e.logger)
	}
	return e
}

// EventBus returns the bus the engine publishes to
func (e *RoundEngine) EventBus() EventBus {
	return e.bus
}

// roundState holds everything scoped to a single round. It is created at
// bet collection and discarded after cleanup.
type roundState struct {
	roundID     string
	bets        map[*Player]int
	hands       map[*Player][]*Hand
	dealerHand  *Hand
	surrendered []*Hand // settled early, but their cards are still owed to the shoe
}

// PlayRound runs one complete round for the given players, in table order:
// bets, deal, dealer blackjack check, player turns, dealer turn, showdown,
// settlement, cleanup. On error the round is abandoned as-is; the caller
// decides whether the game can continue.
func (e *RoundEngine) PlayRound(players []*Player) error {
	rs := &roundState{
		roundID: e.idgen.Generate(),
		bets:    make(map[*Player]int, len(players)),
		hands:   make(map[*Player][]*Hand, len(players)),
	}
	logger := e.logger.With("round", rs.roundID)
	logger.Debug("starting round", "players", len(players), "shoe", e.shoe.CardsRemaining())

	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = p.view()
	}
	e.bus.Publish(NewRoundStartEvent(rs.roundID, views))

	if err := e.collectBets(players, rs); err != nil {
		return err
	}
	if err := e.deal(players, rs); err != nil {
		return err
	}

	if rs.dealerHand.IsBlackjack() {
		// Nobody acts against a dealer natural. Showdown still runs so
		// a player natural pushes instead of losing.
		logger.Debug("dealer blackjack, skipping player turns")
		rs.dealerHand.FlipHoleCard()
		e.bus.Publish(NewHandValueEvent(dealerView(), rs.dealerHand.view()))
		e.showdown(players, rs)
		e.cleanup(players, rs)
		return nil
	}

	for _, p := range players {
		if err := e.runPlayerTurn(p, rs); err != nil {
			return err
		}
	}
	if err := e.runDealerTurn(rs); err != nil {
		return err
	}

	e.showdown(players, rs)
	e.cleanup(players, rs)
	logger.Debug("round complete", "dealerCollected", e.dealer.CollectedMoney())
	return nil
}

func (e *RoundEngine) collectBets(players []*Player, rs *roundState) error {
	for _, p := range players {
		amount := e.provider.GetBet(p.view())
		if amount < 1 || amount > p.Bankroll() {
			return fmt.Errorf("%s bet $%d with bankroll $%d: %w", p, amount, p.Bankroll(), ErrInvalidBet)
		}
		p.Debit(amount)
		rs.bets[p] = amount
		e.bus.Publish(NewBetPlacedEvent(p.view(), amount))
	}
	return nil
}

// deal gives every player a face-up card, the dealer a face-up card, every
// player a second face-up card, then the dealer the face-down hole card.
func (e *RoundEngine) deal(players []*Player, rs *roundState) error {
	for _, p := range players {
		hand := NewHand()
		card, err := e.shoe.Deal()
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p, err)
		}
		hand.AddCard(card)
		rs.hands[p] = []*Hand{hand}
	}

	rs.dealerHand = NewHand()
	card, err := e.shoe.Deal()
	if err != nil {
		return fmt.Errorf("dealing to dealer: %w", err)
	}
	rs.dealerHand.AddCard(card)

	for _, p := range players {
		card, err := e.shoe.Deal()
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", p, err)
		}
		rs.hands[p][0].AddCard(card)
	}

	hole, err := e.shoe.Deal()
	if err != nil {
		return fmt.Errorf("dealing hole card: %w", err)
	}
	hole.Visible = false
	rs.dealerHand.AddCard(hole)

	for _, p := range players {
		e.bus.Publish(NewDealEvent(p.participantView(), rs.hands[p][0].view()))
	}
	e.bus.Publish(NewDealEvent(dealerView(), rs.dealerHand.view()))
	return nil
}

// runPlayerTurn resolves every hand the player holds using an explicit
// worklist. Splits push their children back onto the worklist; each split
// strictly shrinks the splittable pairs available, so the list terminates.
func (e *RoundEngine) runPlayerTurn(p *Player, rs *roundState) error {
	e.bus.Publish(NewTurnStartEvent(p.participantView()))

	pending := rs.hands[p]
	var finished []*Hand

	for len(pending) > 0 {
		hand := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// A split child arrives with one card; complete it before
		// offering any action.
		if hand.Size() == 1 {
			card, err := e.shoe.Deal()
			if err != nil {
				return fmt.Errorf("completing split hand for %s: %w", p, err)
			}
			hand.AddCard(card)
		}

		e.bus.Publish(NewHandValueEvent(p.participantView(), hand.view()))

		if hand.IsBlackjack() {
			finished = append(finished, hand)
			continue
		}

	handLoop:
		for {
			if hand.IsBusted() {
				finished = append(finished, hand)
				break
			}

			actions := legalActions(hand, p.Bankroll(), rs.bets[p])
			action := Stay
			if len(actions) > 1 {
				action = e.provider.GetDecision(p.view(), hand.view(), actions)
				if !actionOffered(actions, action) {
					return fmt.Errorf("%s chose %s from %v: %w", p, action, actions, ErrInvalidAction)
				}
			}

			switch action {
			case Hit:
				card, err := e.shoe.Deal()
				if err != nil {
					return fmt.Errorf("hit for %s: %w", p, err)
				}
				hand.AddCard(card)
				e.bus.Publish(NewActionEvent(p.participantView(), Hit))
				e.bus.Publish(NewHandValueEvent(p.participantView(), hand.view()))

			case Stay:
				finished = append(finished, hand)
				e.bus.Publish(NewActionEvent(p.participantView(), Stay))
				break handLoop

			case Surrender:
				e.bus.Publish(NewActionEvent(p.participantView(), Surrender))
				e.settleSurrender(p, hand, rs)
				rs.surrendered = append(rs.surrendered, hand)
				break handLoop

			case Double:
				stake := rs.bets[p]
				p.Debit(stake)
				rs.bets[p] = stake * 2
				card, err := e.shoe.Deal()
				if err != nil {
					return fmt.Errorf("double for %s: %w", p, err)
				}
				hand.AddCard(card)
				hand.DoubleDown()
				finished = append(finished, hand)
				e.bus.Publish(NewActionEvent(p.participantView(), Double))
				e.bus.Publish(NewHandValueEvent(p.participantView(), hand.view()))
				break handLoop

			case Split:
				// Re-derive the per-hand stake over every hand this
				// player will hold, then stake one more at that size.
				stake := rs.bets[p] / (len(pending) + len(finished) + 1)
				p.Debit(stake)
				rs.bets[p] += stake
				pending = append(pending, hand.Split()...)
				e.bus.Publish(NewActionEvent(p.participantView(), Split))
				break handLoop
			}
		}
	}

	rs.hands[p] = finished
	return nil
}

// runDealerTurn flips the hole card and hits until the dealer's total
// reaches 17. The dealer never doubles, splits or surrenders.
func (e *RoundEngine) runDealerTurn(rs *roundState) error {
	e.bus.Publish(NewTurnStartEvent(dealerView()))

	rs.dealerHand.FlipHoleCard()
	e.bus.Publish(NewHandValueEvent(dealerView(), rs.dealerHand.view()))

	for rs.dealerHand.Value() < dealerStandsAt {
		e.bus.Publish(NewActionEvent(dealerView(), Hit))
		card, err := e.shoe.Deal()
		if err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		rs.dealerHand.AddCard(card)
		e.bus.Publish(NewHandValueEvent(dealerView(), rs.dealerHand.view()))
	}

	if !rs.dealerHand.IsBusted() {
		e.bus.Publish(NewActionEvent(dealerView(), Stay))
	}
	return nil
}

// showdown compares every surviving hand's score against the dealer's.
// A player's total committed bet is split evenly across their final hands.
func (e *RoundEngine) showdown(players []*Player, rs *roundState) {
	dealerScore := rs.dealerHand.Score()

	for _, p := range players {
		hands := rs.hands[p]
		if len(hands) == 0 {
			continue // sole hand surrendered
		}
		bet := rs.bets[p] / len(hands)

		for _, hand := range hands {
			switch score := hand.Score(); {
			case score == dealerScore:
				e.settlePush(p, hand, bet)
			case score > dealerScore:
				e.settleWin(p, hand, bet)
			default:
				e.settleLose(p, hand, bet)
			}
		}
	}
}

func (e *RoundEngine) settleWin(p *Player, hand *Hand, bet int) {
	payout := bet
	if hand.IsBlackjack() {
		payout = blackjackPayout(bet)
	}
	p.Credit(payout + bet)
	e.dealer.Pay(payout)
	e.bus.Publish(NewSettlementEvent(p.view(), hand.view(), OutcomeWin, payout+bet))
}

func (e *RoundEngine) settleLose(p *Player, hand *Hand, bet int) {
	e.dealer.Collect(bet)
	e.bus.Publish(NewSettlementEvent(p.view(), hand.view(), OutcomeLose, bet))
}

func (e *RoundEngine) settlePush(p *Player, hand *Hand, bet int) {
	p.Credit(bet)
	e.bus.Publish(NewSettlementEvent(p.view(), hand.view(), OutcomePush, bet))
}

func (e *RoundEngine) settleSurrender(p *Player, hand *Hand, rs *roundState) {
	bet := rs.bets[p]
	refund, forfeit := surrenderRefund(bet)
	p.Credit(refund)
	e.dealer.Collect(forfeit)
	e.bus.Publish(NewSettlementEvent(p.view(), hand.view(), OutcomeSurrender, forfeit))
}

// cleanup returns every card from the round to the shoe and reshuffles, so
// the next round deals from the full pool unpredictably
func (e *RoundEngine) cleanup(players []*Player, rs *roundState) {
	for _, p := range players {
		for _, hand := range rs.hands[p] {
			e.shoe.ReturnCards(hand.Cards())
			e.shoe.Shuffle()
		}
	}
	for _, hand := range rs.surrendered {
		e.shoe.ReturnCards(hand.Cards())
		e.shoe.Shuffle()
	}
	e.shoe.ReturnCards(rs.dealerHand.Cards())
	e.shoe.Shuffle()
}

func actionOffered(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
