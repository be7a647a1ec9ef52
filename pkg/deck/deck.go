package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrDegenerateRange is an error when a deck is requested with a single-rank range
var ErrDegenerateRange = errors.New("minimum rank must differ from maximum rank")

// Generator provides the random numbers used to shuffle a deck.
// An injectable source keeps shuffles reproducible in tests.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Deck represents a deck of cards consumed as a stack: Draw() pops the top card
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck containing every suit and rank combination in the
// inclusive range [minRank, maxRank].
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards.
func New(minRank, maxRank int) (*Deck, error) {
	if minRank == maxRank {
		return nil, ErrDegenerateRange
	}

	if minRank > maxRank {
		return nil, fmt.Errorf("minimum rank %d is greater than maximum rank %d", minRank, maxRank)
	}

	if minRank < 2 || maxRank > Ace {
		return nil, fmt.Errorf("rank range [%d, %d] is outside [2, %d]", minRank, maxRank, Ace)
	}

	cards := make([]*Card, 0, len(Suits)*(maxRank-minRank+1))
	for _, suit := range Suits {
		for rank := minRank; rank <= maxRank; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}, nil
}

// Shuffle performs a Fisher–Yates shuffle using the supplied random source
func (d *Deck) Shuffle(r Generator) {
	if len(d.Cards) == 0 {
		panic("cannot shuffle an empty deck")
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the top card of the stack
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// Push places a card on top of the stack so it is drawn next.
// Useful for rigging decks in tests.
func (d *Deck) Push(card *Card) {
	d.Cards = append(d.Cards, card)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck for audit logs
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
