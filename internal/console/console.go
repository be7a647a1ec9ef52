// Package console renders the engine's presentation notifications in a
// terminal using pterm.
package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
	"videopoker-server/pkg/videopoker/paytable"
)

// Sink renders notifications with pterm. It is stateful only to the
// extent of remembering the hand slots for re-rendering.
type Sink struct {
	handSize  int
	slots     []string
	holdsOpen bool
}

// New returns a console sink for a hand of the given size
func New(handSize int) *Sink {
	return &Sink{
		handSize: handSize,
		slots:    make([]string, handSize),
	}
}

// BetAmountChanged reports a new wager size in credits
func (s *Sink) BetAmountChanged(betAmount int) {
	pterm.Info.Printfln("Bet: %d credit(s)", betAmount)
}

// DenomChanged reports a new denomination
func (s *Sink) DenomChanged(denom float64) {
	pterm.Info.Printfln("Denomination: $%.2f", denom)
}

// CreditsUpdated reports the credit balance at the given denomination
func (s *Sink) CreditsUpdated(credits, denom float64) {
	pterm.Info.Printfln("Credits: %.2f ($%.2f each)", credits, denom)
}

// PaidCreditsUpdated reports the credits paid for the last play
func (s *Sink) PaidCreditsUpdated(credits float64) {
	if credits > 0 {
		pterm.Success.Printfln("Paid: %g", credits)
	}
}

// PopulateBetAmountView renders one bet level's paytable column
func (s *Sink) PopulateBetAmountView(betAmount int, awards paytable.Paytable) {
	rows := make([]string, len(awards))
	for i, award := range awards {
		rows[i] = fmt.Sprintf("%-18s %g", award.Rank.String(), award.Credits)
	}

	pterm.DefaultBox.
		WithTitle(fmt.Sprintf("Bet %d", betAmount)).
		Println(strings.Join(rows, "\n"))
}

// PopulateWinNamesView renders the variant's payable rank names
func (s *Sink) PopulateWinNamesView(names []string) {
	pterm.DefaultBox.WithTitle("Winning Hands").Println(strings.Join(names, "\n"))
}

// RevealCard shows the card now occupying the given hand slot
func (s *Sink) RevealCard(slot int, card *deck.Card) {
	if slot < 0 || slot >= s.handSize {
		return
	}

	s.slots[slot] = card.String()
	s.renderHand()
}

// ResetHold clears any hold indicators
func (s *Sink) ResetHold() {
	pterm.Debug.Println("holds cleared")
}

// EnableHoldButtons toggles whether hold input should be offered
func (s *Sink) EnableHoldButtons(enabled bool) {
	s.holdsOpen = enabled
	if enabled {
		pterm.Println(pterm.LightYellow("Choose cards to hold (hold <slot>), then deal to draw"))
	}
}

// UpdateInfoText replaces the info line
func (s *Sink) UpdateInfoText(text string) {
	if text == "" {
		return
	}

	pterm.Println(pterm.LightCyan(text))
}

// HighlightAwardedValue highlights the awarded cell for the bet level
func (s *Sink) HighlightAwardedValue(betLevel int, rank handrank.HandRank) {
	pterm.Success.Printfln("Awarded at bet %d: %s", betLevel, rank)
}

// ResetHighlightAwardedValue clears any awarded-cell highlight
func (s *Sink) ResetHighlightAwardedValue() {
}

func (s *Sink) renderHand() {
	cells := make([]string, s.handSize)
	for i, card := range s.slots {
		if card == "" {
			cells[i] = "??"
			continue
		}

		cells[i] = card
	}

	pterm.DefaultBox.Println(strings.Join(cells, "  "))
}
