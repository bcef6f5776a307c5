package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/paulnsorensen/RBlackjack/internal/game"
)

// Agent prompts a human at the terminal for bets and action choices. The
// validation loops live here, not in the engine: by the time a value is
// returned it already satisfies the decision-provider contract.
type Agent struct {
	textInput pterm.InteractiveTextInputPrinter
	selector  pterm.InteractiveSelectPrinter
}

// NewAgent creates a terminal agent
func NewAgent() *Agent {
	return &Agent{
		textInput: pterm.DefaultInteractiveTextInput,
		selector:  pterm.DefaultInteractiveSelect,
	}
}

// GetBet prompts until the player enters a whole-dollar bet within their
// bankroll
func (a *Agent) GetBet(player game.PlayerView) int {
	prompt := fmt.Sprintf("%s, you have $%d. What is your bet?", player.Name, player.Bankroll)
	for {
		raw, err := a.textInput.WithDefaultText(prompt).Show()
		if err != nil {
			pterm.Error.Printfln("could not read bet: %v", err)
			continue
		}

		bet, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil || bet < 1:
			pterm.Warning.Println("You must bet at least $1")
		case bet > player.Bankroll:
			pterm.Warning.Printfln("You only have $%d to bet", player.Bankroll)
		default:
			pterm.Printfln("%s bets $%d", player.Name, bet)
			pterm.Println()
			return bet
		}
	}
}

// GetDecision offers the legal actions as an interactive menu and returns
// the chosen one
func (a *Agent) GetDecision(player game.PlayerView, hand game.HandView, actions []game.Action) game.Action {
	options := make([]string, len(actions))
	for i, action := range actions {
		options[i] = action.String()
	}

	for {
		chosen, err := a.selector.
			WithDefaultText(fmt.Sprintf("%s, choose an action", player.Name)).
			WithOptions(options).
			Show()
		if err != nil {
			pterm.Error.Printfln("could not read action: %v", err)
			continue
		}
		for i, option := range options {
			if option == chosen {
				return actions[i]
			}
		}
	}
}

// PromptCount asks for an integer in [minVal, maxVal], taking defaultVal on
// a blank entry. Used for the player-count and deck-count setup questions.
func PromptCount(prompt string, minVal, maxVal, defaultVal int) int {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("%s (%d-%d) [%d]", prompt, minVal, maxVal, defaultVal)).
			Show()
		if err != nil {
			pterm.Error.Printfln("could not read input: %v", err)
			continue
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			return defaultVal
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < minVal || n > maxVal {
			pterm.Warning.Printfln("Invalid input. Please enter an integer between %d-%d", minVal, maxVal)
			continue
		}
		return n
	}
}

// PromptKeepPlaying implements the between-round continuation policy:
// anything but "exit" plays another round
func PromptKeepPlaying() bool {
	raw, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Round finished. Enter 'exit' to quit playing or anything else to continue").
		Show()
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(raw)) != "exit"
}
