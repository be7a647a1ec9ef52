package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("10♡", (&Card{Rank: Ten, Suit: Hearts}).String())
	a.Equal("J♠", (&Card{Rank: Jack, Suit: Spades}).String())
	a.Equal("Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("K♣", (&Card{Rank: King, Suit: Clubs}).String())
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	a.Equal("W♡", (&Card{Rank: Joker, Suit: Hearts}).String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5c").Equal(CardFromString("5c")))
	a.False(CardFromString("5c").Equal(CardFromString("5d")))
	a.False(CardFromString("5c").Equal(CardFromString("6c")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: Ace, Suit: Spades}, *CardFromString("14s"))
	a.Equal(Card{Rank: Jack, Suit: Hearts}, *CardFromString("11h"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("16c")
	})

	a.Panics(func() {
		CardFromString("5x")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,11h,14s")
	a.Equal("2c,11h,14s", CardsToString(cards))
	a.Equal(3, len(cards))

	a.Equal([]*Card{}, CardsFromString(""))
}
