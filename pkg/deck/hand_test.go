package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	a.Equal(2, len(hand))
	a.True(hand.HasCard(CardFromString("2c")))
	a.False(hand.HasCard(CardFromString("3c")))
}

func TestHand_HasCard_NilSlots(t *testing.T) {
	hand := Hand{nil, CardFromString("5h"), nil}
	assert.True(t, hand.HasCard(CardFromString("5h")))
}

func TestHand_SortByRank(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c,13h,3d,3c"))
	clone := hand.Clone()
	clone.SortByRank()

	a.Equal("2c,3d,3c,13h,14s", clone.String())
	// the original is untouched
	a.Equal("14s,2c,13h,3d,3c", hand.String())
}
