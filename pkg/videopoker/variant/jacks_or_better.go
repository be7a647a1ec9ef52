package variant

import (
	"fmt"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
)

const (
	jacksOrBetterHandSize      = 5
	jacksOrBetterHandsPerRound = 2
)

// display names, ordered for the win-names view
const (
	royalFlushName    = "Royal Flush"
	straightFlushName = "Straight Flush"
	fourOfAKindName   = "4 of a Kind"
	fullHouseName     = "Full House"
	flushName         = "Flush"
	straightName      = "Straight"
	threeOfAKindName  = "3 of a Kind"
	twoPairName       = "2 Pair"
	jacksOrBetterName = "Jacks Or Better"
)

// JacksOrBetter is the standard draw-poker variant: a 52-card deck, one
// deal and one draw, and a pair paying only at Jacks or above.
type JacksOrBetter struct{}

// NewJacksOrBetter returns the jacks-or-better variant
func NewJacksOrBetter() *JacksOrBetter {
	return &JacksOrBetter{}
}

// Name returns the variant's configuration identifier
func (v *JacksOrBetter) Name() string {
	return "jacks-or-better"
}

// CardValueMin returns the lowest rank in play
func (v *JacksOrBetter) CardValueMin() int {
	return 2
}

// CardValueMax returns the highest rank in play
func (v *JacksOrBetter) CardValueMax() int {
	return deck.Ace
}

// HandSize returns the number of card slots in a hand
func (v *JacksOrBetter) HandSize() int {
	return jacksOrBetterHandSize
}

// HandsPerRound returns the number of deal/draw rounds per play
func (v *JacksOrBetter) HandsPerRound() int {
	return jacksOrBetterHandsPerRound
}

// NewHoldArray returns a fresh all-false hold array
func (v *JacksOrBetter) NewHoldArray() []bool {
	return make([]bool, jacksOrBetterHandSize)
}

// NewDeck builds the variant's 52-card deck, unshuffled
func (v *JacksOrBetter) NewDeck() (*deck.Deck, error) {
	return deck.New(v.CardValueMin(), v.CardValueMax())
}

// Shuffle shuffles a deck with the supplied random source
func (v *JacksOrBetter) Shuffle(d *deck.Deck, r deck.Generator) {
	d.Shuffle(r)
}

// Classify returns the rank of a hand, promoting a Pair to Jacks-or-Better
// when the paired rank is a Jack or higher
func (v *JacksOrBetter) Classify(hand deck.Hand) handrank.HandRank {
	analysis := handrank.Analyze(hand, deck.Ten)

	rank := analysis.Rank()
	if rank == handrank.Pair {
		if paired, ok := analysis.PairRank(); ok && paired >= deck.Jack {
			return handrank.JacksOrBetter
		}
	}

	return rank
}

// RankNames returns the display names for every payable rank, highest first
func (v *JacksOrBetter) RankNames() []string {
	return []string{
		royalFlushName,
		straightFlushName,
		fourOfAKindName,
		fullHouseName,
		flushName,
		straightName,
		threeOfAKindName,
		twoPairName,
		jacksOrBetterName,
	}
}

// RankName returns the display name for a rank, or "" if the rank does not pay
func (v *JacksOrBetter) RankName(rank handrank.HandRank) string {
	switch rank {
	case handrank.RoyalFlush:
		return royalFlushName
	case handrank.StraightFlush:
		return straightFlushName
	case handrank.FourOfAKind:
		return fourOfAKindName
	case handrank.FullHouse:
		return fullHouseName
	case handrank.Flush:
		return flushName
	case handrank.Straight:
		return straightName
	case handrank.ThreeOfAKind:
		return threeOfAKindName
	case handrank.TwoPair:
		return twoPairName
	case handrank.JacksOrBetter:
		return jacksOrBetterName
	}

	return ""
}

// Deal replaces every non-held slot with the next card drawn from the deck
func (v *JacksOrBetter) Deal(hand deck.Hand, holds []bool, d *deck.Deck) (deck.Hand, error) {
	if len(holds) != jacksOrBetterHandSize {
		return nil, fmt.Errorf("hold array must have %d entries, got %d", jacksOrBetterHandSize, len(holds))
	}

	if len(hand) == 0 {
		hand = make(deck.Hand, jacksOrBetterHandSize)
	}

	for i := range holds {
		if holds[i] {
			continue
		}

		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		hand[i] = card
	}

	return hand, nil
}
