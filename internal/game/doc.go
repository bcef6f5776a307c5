// Package game implements the core rules engine for multi-player blackjack.
//
// The main type is RoundEngine, which drives one round at a time through a
// fixed sequence: bet collection, the deal, a dealer-blackjack check,
// player turns, the dealer turn, showdown, settlement and cleanup. A Table
// wraps the engine with the game loop: it seats players, boots them when
// they go broke and repeats rounds until a continuation policy declines.
//
// The engine makes no decisions of its own and prints nothing. Bets and
// action choices come from an injected Agent; everything worth announcing
// is published to an EventBus as typed events for observers to render.
//
// # Deterministic Testing
//
// Randomness enters only through the shoe. Build one from a seeded RNG,
// or stack it explicitly:
//
//	shoe := deck.NewStackedShoe(randutil.New(42), cards...)
//	engine := game.NewRoundEngine(shoe, game.NewDealer(), agent)
//
// Two runs against the same stacked shoe and the same scripted agent
// produce identical event traces.
package game
