// Package variant defines the pluggable ruleset a video poker game runs
// under: deck composition, deal rounds, hold array shape, and hand
// classification.
package variant

import (
	"fmt"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
)

// Variant is the capability set implemented per game offering
type Variant interface {
	// Name returns the variant's configuration identifier
	Name() string

	// CardValueMin returns the lowest rank the variant's deck contains
	CardValueMin() int

	// CardValueMax returns the highest rank the variant's deck contains
	CardValueMax() int

	// HandSize returns the number of card slots in a hand
	HandSize() int

	// HandsPerRound returns the number of deal/draw rounds per play
	HandsPerRound() int

	// NewHoldArray returns a fresh all-false hold array, one flag per slot
	NewHoldArray() []bool

	// NewDeck builds the variant's deck, unshuffled
	NewDeck() (*deck.Deck, error)

	// Shuffle shuffles a deck with the supplied random source
	Shuffle(d *deck.Deck, r deck.Generator)

	// Classify returns the rank of a full hand, including any
	// variant-specific qualification
	Classify(hand deck.Hand) handrank.HandRank

	// RankNames returns the display names for every rank the variant can
	// pay, in fixed presentation order
	RankNames() []string

	// RankName returns the display name for a rank, or "" when the
	// variant has no name for it
	RankName(rank handrank.HandRank) string

	// Deal replaces every non-held slot with the next card drawn from the
	// deck. A nil or empty hand is initialized first (a fresh play always
	// has all-false holds). Returns the resulting hand.
	Deal(hand deck.Hand, holds []bool, d *deck.Deck) (deck.Hand, error)
}

// FromName returns the variant registered under the given name
func FromName(name string) (Variant, error) {
	switch name {
	case "jacks-or-better":
		return NewJacksOrBetter(), nil
	}

	return nil, fmt.Errorf("unknown variant: %s", name)
}
