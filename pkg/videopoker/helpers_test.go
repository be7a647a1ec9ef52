package videopoker

import (
	"io"

	"github.com/sirupsen/logrus"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
	"videopoker-server/pkg/videopoker/paytable"
	"videopoker-server/pkg/videopoker/variant"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

// riggedVariant plays jacks-or-better from a fixed deck. The cards string
// lists the deck bottom-up: the last card is the top of the stack and is
// dealt into slot 0 first.
type riggedVariant struct {
	*variant.JacksOrBetter
	cards string
}

func newRiggedVariant(cards string) *riggedVariant {
	return &riggedVariant{
		JacksOrBetter: variant.NewJacksOrBetter(),
		cards:         cards,
	}
}

func (r *riggedVariant) NewDeck() (*deck.Deck, error) {
	return &deck.Deck{Cards: deck.CardsFromString(r.cards)}, nil
}

func (r *riggedVariant) Shuffle(*deck.Deck, deck.Generator) {}

// recordingSink captures every notification for assertions
type recordingSink struct {
	betAmounts      []int
	denoms          []float64
	credits         []float64
	paid            []float64
	betViews        []int
	winNames        []string
	revealed        map[int][]string
	resetHolds      int
	holdsEnabled    []bool
	infoTexts       []string
	highlights      []handrank.HandRank
	resetHighlights int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{revealed: make(map[int][]string)}
}

func (r *recordingSink) BetAmountChanged(betAmount int) {
	r.betAmounts = append(r.betAmounts, betAmount)
}

func (r *recordingSink) DenomChanged(denom float64) {
	r.denoms = append(r.denoms, denom)
}

func (r *recordingSink) CreditsUpdated(credits, _ float64) {
	r.credits = append(r.credits, credits)
}

func (r *recordingSink) PaidCreditsUpdated(credits float64) {
	r.paid = append(r.paid, credits)
}

func (r *recordingSink) PopulateBetAmountView(betAmount int, _ paytable.Paytable) {
	r.betViews = append(r.betViews, betAmount)
}

func (r *recordingSink) PopulateWinNamesView(names []string) {
	r.winNames = names
}

func (r *recordingSink) RevealCard(slot int, card *deck.Card) {
	r.revealed[slot] = append(r.revealed[slot], deck.CardToString(card))
}

func (r *recordingSink) ResetHold() {
	r.resetHolds++
}

func (r *recordingSink) EnableHoldButtons(enabled bool) {
	r.holdsEnabled = append(r.holdsEnabled, enabled)
}

func (r *recordingSink) UpdateInfoText(text string) {
	r.infoTexts = append(r.infoTexts, text)
}

func (r *recordingSink) HighlightAwardedValue(_ int, rank handrank.HandRank) {
	r.highlights = append(r.highlights, rank)
}

func (r *recordingSink) ResetHighlightAwardedValue() {
	r.resetHighlights++
}

func (r *recordingSink) lastInfoText() string {
	if len(r.infoTexts) == 0 {
		return ""
	}

	return r.infoTexts[len(r.infoTexts)-1]
}
