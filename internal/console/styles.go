package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paulnsorensen/RBlackjack/internal/deck"
)

// Styles contains the lipgloss styling for the terminal front-end
type Styles struct {
	Banner   lipgloss.Style
	Info     lipgloss.Style
	Turn     lipgloss.Style
	Win      lipgloss.Style
	Lose     lipgloss.Style
	Push     lipgloss.Style
	RedCard  lipgloss.Style
	Card     lipgloss.Style
	Money    lipgloss.Style
	Warning  lipgloss.Style
}

// DefaultStyles returns the default console styling
func DefaultStyles() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 1).
			Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Turn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Lose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Push:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		RedCard: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Card:    lipgloss.NewStyle().Bold(true),
		Money:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
	}
}

// FormatCards renders cards with suit colouring, leaving face-down cards
// as their hidden placeholder
func (s *Styles) FormatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		switch {
		case !card.Visible:
			parts[i] = s.Info.Render(card.String())
		case card.IsRed():
			parts[i] = s.RedCard.Render(card.String())
		default:
			parts[i] = s.Card.Render(card.String())
		}
	}
	return strings.Join(parts, " ")
}
