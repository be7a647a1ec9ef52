// Package config provides configuration for the video poker server
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"videopoker-server/internal/util"
	"videopoker-server/pkg/videopoker"
	"videopoker-server/pkg/videopoker/handrank"
	"videopoker-server/pkg/videopoker/paytable"
	"videopoker-server/pkg/videopoker/variant"
)

// Config provides configuration for the video poker game
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	}
	Game struct {
		Variant        string  `yaml:"variant" envconfig:"variant"`
		InitialCash    float64 `yaml:"initialCash" envconfig:"initial_cash"`
		AddMoneyAmount float64 `yaml:"addMoneyAmount" envconfig:"add_money_amount"`
	}
	Paytable PaytableFile `yaml:"paytable"`
}

// PaytableFile is the on-disk shape of the economy configuration
type PaytableFile struct {
	Denominations []float64 `yaml:"denominations"`
	BetLevels     []int     `yaml:"betLevels"`
	Paytables     []Awards  `yaml:"paytables"`
}

// Awards is one bet level's paytable
type Awards struct {
	Awards []AwardEntry `yaml:"awards"`
}

// AwardEntry is a single rank/credits pair. Ranks use the kebab-case
// identifiers understood by handrank.Parse.
type AwardEntry struct {
	Rank    string  `yaml:"rank"`
	Credits float64 `yaml:"credits"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file falls back to
// the built-in defaults; environment variables override either way.
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("VP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		config = Config{}
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("vp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// SessionOptions converts the configuration into engine options,
// validating the paytable setup. Errors here are fatal at startup.
func (c Config) SessionOptions() (videopoker.Options, error) {
	v, err := variant.FromName(c.Game.Variant)
	if err != nil {
		return videopoker.Options{}, err
	}

	tables := make([]paytable.Paytable, len(c.Paytable.Paytables))
	for i, entry := range c.Paytable.Paytables {
		table := make(paytable.Paytable, len(entry.Awards))
		for j, award := range entry.Awards {
			rank, err := handrank.Parse(award.Rank)
			if err != nil {
				return videopoker.Options{}, fmt.Errorf("paytable %d award %d: %w", i, j, err)
			}

			table[j] = paytable.Award{Rank: rank, Credits: award.Credits}
		}

		tables[i] = table
	}

	cfg := paytable.Config{
		Denominations: c.Paytable.Denominations,
		BetLevels:     c.Paytable.BetLevels,
		Paytables:     tables,
	}

	if err := cfg.Validate(); err != nil {
		return videopoker.Options{}, err
	}

	return videopoker.Options{
		InitialCash:    c.Game.InitialCash,
		AddMoneyAmount: c.Game.AddMoneyAmount,
		Paytables:      cfg,
		Variant:        v,
	}, nil
}

// baseAwards is the per-coin 9/6 jacks-or-better schedule used when no
// config file is present
var baseAwards = []AwardEntry{
	{Rank: "royal-flush", Credits: 250},
	{Rank: "straight-flush", Credits: 50},
	{Rank: "four-of-a-kind", Credits: 25},
	{Rank: "full-house", Credits: 9},
	{Rank: "flush", Credits: 6},
	{Rank: "straight", Credits: 4},
	{Rank: "three-of-a-kind", Credits: 3},
	{Rank: "two-pair", Credits: 2},
	{Rank: "jacks-or-better", Credits: 1},
}

func defaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Game.Variant = "jacks-or-better"
	c.Game.InitialCash = 100
	c.Game.AddMoneyAmount = 10

	c.Paytable.Denominations = []float64{0.25, 0.50, 1.00}
	c.Paytable.BetLevels = []int{1, 2, 3, 4, 5}

	c.Paytable.Paytables = make([]Awards, len(c.Paytable.BetLevels))
	for i, level := range c.Paytable.BetLevels {
		awards := make([]AwardEntry, len(baseAwards))
		for j, award := range baseAwards {
			awards[j] = AwardEntry{
				Rank:    award.Rank,
				Credits: award.Credits * float64(level),
			}
		}

		c.Paytable.Paytables[i] = Awards{Awards: awards}
	}

	return c
}
