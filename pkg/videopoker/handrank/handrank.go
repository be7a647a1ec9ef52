package handrank

import "fmt"

// HandRank is a classified poker hand, i.e., royal flush
type HandRank int

// Constants for hand ranks
const (
	Unspecified HandRank = iota
	HighCard
	Pair
	// JacksOrBetter is a pair whose paired rank meets the variant's
	// qualification threshold
	JacksOrBetter
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	// FiveOfAKind is reserved for wild-card variants; no deck in scope
	// can produce it
	FiveOfAKind
)

// String returns the string representation of a hand rank
func (h HandRank) String() string {
	switch h {
	case Unspecified:
		return "Unspecified"
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case JacksOrBetter:
		return "Jacks or better"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", h))
	}
}

var rankByName = map[string]HandRank{
	"high-card":       HighCard,
	"pair":            Pair,
	"jacks-or-better": JacksOrBetter,
	"two-pair":        TwoPair,
	"three-of-a-kind": ThreeOfAKind,
	"straight":        Straight,
	"flush":           Flush,
	"full-house":      FullHouse,
	"four-of-a-kind":  FourOfAKind,
	"straight-flush":  StraightFlush,
	"royal-flush":     RoyalFlush,
	"five-of-a-kind":  FiveOfAKind,
}

// Parse returns the hand rank for a kebab-case identifier as found in
// paytable configuration files
func Parse(s string) (HandRank, error) {
	rank, ok := rankByName[s]
	if !ok {
		return Unspecified, fmt.Errorf("unknown hand rank: %s", s)
	}

	return rank, nil
}
