package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"videopoker-server/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d, err := New(2, Ace)
	a.NoError(err)
	a.Equal(52, d.CardsLeft())

	// all cards unique, every suit equally represented
	seen := make(map[Card]bool)
	suitCounts := make(map[Suit]int)
	for _, card := range d.Cards {
		a.False(seen[*card], "duplicate card %s", card)
		seen[*card] = true
		suitCounts[card.Suit]++
	}

	for _, suit := range Suits {
		a.Equal(13, suitCounts[suit])
	}
}

func TestNew_Range(t *testing.T) {
	a := assert.New(t)

	d, err := New(9, Ace)
	a.NoError(err)
	a.Equal(4*(Ace-9+1), d.CardsLeft())

	d, err = New(5, 5)
	a.Nil(d)
	a.Equal(ErrDegenerateRange, err)

	d, err = New(10, 5)
	a.Nil(d)
	a.Error(err)

	d, err = New(1, Ace)
	a.Nil(d)
	a.Error(err)

	d, err = New(2, Joker)
	a.Nil(d)
	a.Error(err)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d, _ := New(2, Ace)
	before := d.HashCode()

	d.Shuffle(rng.NewSeeded(1))
	a.NotEqual(before, d.HashCode())
	a.Equal(52, d.CardsLeft())

	// a shuffle is a permutation: same multiset of cards
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	a.Equal(52, len(seen))

	// deterministic for a fixed seed
	d2, _ := New(2, Ace)
	d2.Shuffle(rng.NewSeeded(1))
	a.Equal(d.HashCode(), d2.HashCode())

	d3, _ := New(2, Ace)
	d3.Shuffle(rng.NewSeeded(2))
	a.NotEqual(d.HashCode(), d3.HashCode())
}

func TestDeck_Shuffle_Empty(t *testing.T) {
	d := &Deck{}
	assert.Panics(t, func() {
		d.Shuffle(rng.NewSeeded(0))
	})
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := &Deck{Cards: CardsFromString("2c,3c,4c")}

	a.True(d.CanDraw(3))
	a.False(d.CanDraw(4))

	// the deck is a stack: the last card is the top
	card, err := d.Draw()
	a.NoError(err)
	a.Equal("4c", CardToString(card))

	card, err = d.Draw()
	a.NoError(err)
	a.Equal("3c", CardToString(card))

	card, err = d.Draw()
	a.NoError(err)
	a.Equal("2c", CardToString(card))

	a.Equal(0, d.CardsLeft())

	card, err = d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_Push(t *testing.T) {
	a := assert.New(t)

	d := &Deck{Cards: CardsFromString("2c")}
	d.Push(CardFromString("14s"))

	card, err := d.Draw()
	a.NoError(err)
	a.Equal("14s", CardToString(card))
	a.Equal(1, d.CardsLeft())
}
