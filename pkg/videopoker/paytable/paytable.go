// Package paytable maps hand ranks to base credit awards and validates
// the denomination/bet-level configuration they hang off of.
package paytable

import (
	"errors"
	"fmt"

	"videopoker-server/pkg/videopoker/handrank"
)

// Award is a single paytable entry
type Award struct {
	Rank    handrank.HandRank `json:"rank" yaml:"rank"`
	Credits float64           `json:"credits" yaml:"credits"`
}

// Paytable maps a hand rank to its base credit award
type Paytable []Award

// Lookup returns the base credit award for a rank. A rank absent from the
// table pays 0; that is not an error.
func (p Paytable) Lookup(rank handrank.HandRank) float64 {
	for _, award := range p {
		if award.Rank == rank {
			return award.Credits
		}
	}

	return 0
}

// Config is the full economy configuration: denominations, bet levels,
// and one paytable per bet level.
type Config struct {
	Denominations []float64
	BetLevels     []int
	Paytables     []Paytable
}

// validation errors
var (
	ErrNoDenominations       = errors.New("at least one denomination is required")
	ErrNoBetLevels           = errors.New("at least one bet level is required")
	ErrPaytableCountMismatch = errors.New("paytable count must match bet level count")
)

// Validate checks the config invariants. A failure here is a fatal
// configuration error; the game must not start.
func (c *Config) Validate() error {
	if len(c.Denominations) == 0 {
		return ErrNoDenominations
	}

	if len(c.BetLevels) == 0 {
		return ErrNoBetLevels
	}

	if len(c.Paytables) != len(c.BetLevels) {
		return ErrPaytableCountMismatch
	}

	for i, denom := range c.Denominations {
		if denom <= 0 {
			return fmt.Errorf("denomination at index %d must be positive, got %f", i, denom)
		}
	}

	for i, level := range c.BetLevels {
		if level <= 0 {
			return fmt.Errorf("bet level at index %d must be positive, got %d", i, level)
		}
	}

	return nil
}
