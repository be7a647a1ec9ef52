package deck

import "sort"

// Hand represents a collection of cards.
// In a draw-poker game the slot positions are significant: holds and
// presentation are keyed off them, so callers must not reorder a hand
// they do not own. Evaluation code sorts a Clone() instead.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c != nil && c.Equal(card) {
			return true
		}
	}

	return false
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// SortByRank sorts the hand in place, ascending by rank
func (h Hand) SortByRank() {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Rank < h[j].Rank
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}
