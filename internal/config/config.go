// Package config loads table configuration from an HCL file. Every field
// is optional; a missing file yields the defaults, so the game runs with
// no configuration at all.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Limits on what a table can physically hold
const (
	MaxPlayers = 9
	MaxDecks   = 8
)

// Config represents the complete table configuration
type Config struct {
	Table   TableSettings  `hcl:"table,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	Decks    int    `hcl:"decks,optional"`
	Bankroll int    `hcl:"bankroll,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// PlayerConfig seats one named player, optionally with their own bankroll
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Bankroll int    `hcl:"bankroll,optional"`
}

// Default returns the default table configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Decks:    4,
			Bankroll: 1000,
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
	}
}

// Load reads table configuration from an HCL file. A missing file is not
// an error; the defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Table.Decks == 0 {
		cfg.Table.Decks = def.Table.Decks
	}
	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = def.Table.Bankroll
	}
	if cfg.Table.LogLevel == "" {
		cfg.Table.LogLevel = def.Table.LogLevel
	}
	if cfg.Table.LogFile == "" {
		cfg.Table.LogFile = def.Table.LogFile
	}
	for i := range cfg.Players {
		if cfg.Players[i].Bankroll == 0 {
			cfg.Players[i].Bankroll = cfg.Table.Bankroll
		}
	}
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Table.Decks < 1 || c.Table.Decks > MaxDecks {
		return fmt.Errorf("decks must be between 1 and %d, got %d", MaxDecks, c.Table.Decks)
	}
	if c.Table.Bankroll < 1 {
		return fmt.Errorf("bankroll must be positive, got %d", c.Table.Bankroll)
	}
	if len(c.Players) > MaxPlayers {
		return fmt.Errorf("at most %d players can be seated, got %d", MaxPlayers, len(c.Players))
	}
	for _, p := range c.Players {
		if p.Bankroll < 1 {
			return fmt.Errorf("player %s: bankroll must be positive, got %d", p.Name, p.Bankroll)
		}
	}
	return nil
}
