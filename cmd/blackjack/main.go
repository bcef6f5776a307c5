package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/paulnsorensen/RBlackjack/internal/config"
	"github.com/paulnsorensen/RBlackjack/internal/console"
	"github.com/paulnsorensen/RBlackjack/internal/deck"
	"github.com/paulnsorensen/RBlackjack/internal/game"
	"github.com/paulnsorensen/RBlackjack/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1B5E20")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Players  int    `short:"p" help:"Number of players at the table (1-9); prompts when omitted"`
	Decks    int    `short:"d" help:"Number of decks in the shoe (1-8); prompts when omitted"`
	Bankroll int    `help:"Starting bankroll per player (overrides config)"`
	Config   string `short:"c" help:"Path to HCL table config" default:"blackjack.hcl" type:"path"`
	Seed     int64  `help:"RNG seed for the shoe (0 = time-seeded)"`
	Debug    bool   `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("A multi-player game of blackjack at the terminal"),
		kong.UsageOnError(),
	)

	if err := run(&cli); err != nil {
		log.Fatal("Game failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cli.Decks > 0 {
		cfg.Table.Decks = cli.Decks
	}
	if cli.Bankroll > 0 {
		cfg.Table.Bankroll = cli.Bankroll
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile, err := os.OpenFile(cfg.Table.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})
	if cli.Debug || cfg.Table.LogLevel == "debug" {
		logger.SetLevel(log.DebugLevel)
	}

	fmt.Print(titleStyle.Render(" ♠ ♥ Welcome to Blackjack! ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	players := seatPlayers(cli, cfg)
	if cli.Decks == 0 && len(cfg.Players) == 0 {
		cfg.Table.Decks = console.PromptCount("How many decks would you like to play with?", 1, config.MaxDecks, cfg.Table.Decks)
	}

	fmt.Printf("The table has %d players, and the game will be played with %d decks of cards\n\n", len(players), cfg.Table.Decks)
	logger.Info("Starting game", "players", len(players), "decks", cfg.Table.Decks, "seed", cli.Seed)

	rng := randutil.NewFromTime()
	if cli.Seed != 0 {
		rng = randutil.New(cli.Seed)
	}
	shoe := deck.NewShoe(cfg.Table.Decks, rng)

	table := game.NewTable(shoe, players, console.NewAgent(), logger,
		console.NewObserver(os.Stdout))

	// Ctrl+C quits between prompts without a stack trace
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nQuitting...")
		os.Exit(0)
	}()

	err = table.Run(console.PromptKeepPlaying)

	summary := table.Summary()
	fmt.Println("Quitting...")
	fmt.Printf("Dealer collected $%d in %d rounds.\n", summary.DealerCollected, summary.RoundsPlayed)
	logger.Info("Game over", "rounds", summary.RoundsPlayed, "dealerCollected", summary.DealerCollected)
	return err
}

// seatPlayers builds the player list from config when present, otherwise
// prompts for a player count and numbers the seats
func seatPlayers(cli *CLI, cfg *config.Config) []*game.Player {
	if len(cfg.Players) > 0 {
		players := make([]*game.Player, len(cfg.Players))
		for i, pc := range cfg.Players {
			players[i] = game.NewPlayer(i+1, pc.Name, pc.Bankroll)
		}
		return players
	}

	count := cli.Players
	if count < 1 || count > config.MaxPlayers {
		count = console.PromptCount("Please enter the number of players", 1, config.MaxPlayers, 1)
	}

	players := make([]*game.Player, count)
	for i := 0; i < count; i++ {
		players[i] = game.NewPlayer(i+1, "", cfg.Table.Bankroll)
	}
	return players
}
