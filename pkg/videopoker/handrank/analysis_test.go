package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"videopoker-server/pkg/deck"
)

func rank(t *testing.T, cards string) HandRank {
	t.Helper()
	return Analyze(deck.CardsFromString(cards), deck.Ten).Rank()
}

func TestAnalysis_Rank(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandRank
	}{
		{"royal flush", "10h,11h,12h,13h,14h", RoyalFlush},
		{"straight flush", "5s,6s,7s,8s,9s", StraightFlush},
		{"flush", "2h,5h,7h,9h,13h", Flush},
		{"straight", "2h,3c,4d,5s,6h", Straight},
		{"ace high straight", "10h,11c,12d,13s,14h", Straight},
		{"four of a kind", "7c,7d,7h,7s,2c", FourOfAKind},
		{"full house", "3c,3d,3h,9s,9c", FullHouse},
		{"three of a kind", "8c,8d,8h,2s,14c", ThreeOfAKind},
		{"two pair", "4c,4d,9h,9s,14c", TwoPair},
		{"pair", "9h,9c,2d,5s,13c", Pair},
		{"high card", "2c,5d,8h,11s,14c", HighCard},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, rank(t, test.cards))
		})
	}
}

// a hand that is both a flush and a straight must classify as a straight
// flush, never as either alone
func TestAnalysis_Rank_Precedence(t *testing.T) {
	a := assert.New(t)

	a.Equal(StraightFlush, rank(t, "5s,6s,7s,8s,9s"))
	a.NotEqual(Flush, rank(t, "5s,6s,7s,8s,9s"))

	// a royal needs all three: same suit, straight, all ten or above
	a.Equal(StraightFlush, rank(t, "9h,10h,11h,12h,13h"))
	a.Equal(Straight, rank(t, "10h,11c,12d,13s,14h"))
	a.Equal(Flush, rank(t, "10h,11h,12h,13h,2h"))
}

// classification must not depend on the slot order of the input hand
func TestAnalysis_Rank_OrderInvariant(t *testing.T) {
	a := assert.New(t)

	a.Equal(Straight, rank(t, "6h,2h,4d,3c,5s"))
	a.Equal(Straight, rank(t, "2h,3c,4d,5s,6h"))
	a.Equal(FullHouse, rank(t, "9s,3c,9c,3d,3h"))
}

// an ace-low run does not classify as a straight: the ace sorts high, so
// the wrap branch in the rule can never fire
func TestAnalysis_Rank_NoAceLowStraight(t *testing.T) {
	assert.Equal(t, HighCard, rank(t, "14h,2c,3d,4s,5h"))
}

func TestAnalyze_DoesNotReorderInput(t *testing.T) {
	a := assert.New(t)

	hand := deck.Hand(deck.CardsFromString("14s,2c,13h,3d,3c"))
	analysis := Analyze(hand, deck.Ten)

	a.Equal("14s,2c,13h,3d,3c", hand.String())
	a.Equal("2c,3d,3c,13h,14s", analysis.Sorted.String())
}

func TestAnalyze_ValueGroups(t *testing.T) {
	a := assert.New(t)

	analysis := Analyze(deck.CardsFromString("4c,4d,9h,9s,14c"), deck.Ten)
	a.Equal([][]int{{0, 1}, {2, 3}}, analysis.ValueGroups)

	paired, ok := analysis.PairRank()
	a.True(ok)
	a.Equal(4, paired)

	analysis = Analyze(deck.CardsFromString("2c,5d,8h,11s,14c"), deck.Ten)
	a.Empty(analysis.ValueGroups)

	_, ok = analysis.PairRank()
	a.False(ok)
}

func TestAnalyze_Threshold(t *testing.T) {
	a := assert.New(t)

	analysis := Analyze(deck.CardsFromString("10h,11c,12d,13s,14h"), deck.Ten)
	a.True(analysis.AllAboveThreshold)

	analysis = Analyze(deck.CardsFromString("9h,11c,12d,13s,14h"), deck.Ten)
	a.False(analysis.AllAboveThreshold)
}
