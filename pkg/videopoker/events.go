package videopoker

import (
	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
	"videopoker-server/pkg/videopoker/paytable"
)

// Sink receives the notifications the engine emits for presentation.
// Implementations render meters, cards and text however they like; the
// engine only promises the order of calls. A sink is injected at
// construction so listener lifetime is explicit.
type Sink interface {
	// BetAmountChanged reports a new wager size in credits
	BetAmountChanged(betAmount int)

	// DenomChanged reports a new denomination
	DenomChanged(denom float64)

	// CreditsUpdated reports the credit balance at the given denomination
	CreditsUpdated(credits, denom float64)

	// PaidCreditsUpdated reports the credits paid for the last play
	PaidCreditsUpdated(credits float64)

	// PopulateBetAmountView supplies one bet level's paytable for display
	PopulateBetAmountView(betAmount int, awards paytable.Paytable)

	// PopulateWinNamesView supplies the variant's payable rank names
	PopulateWinNamesView(names []string)

	// RevealCard shows the card now occupying the given hand slot
	RevealCard(slot int, card *deck.Card)

	// ResetHold clears any hold indicators
	ResetHold()

	// EnableHoldButtons toggles whether hold input should be offered
	EnableHoldButtons(enabled bool)

	// UpdateInfoText replaces the info line ("" clears it)
	UpdateInfoText(text string)

	// HighlightAwardedValue highlights the awarded cell for the bet level
	HighlightAwardedValue(betLevel int, rank handrank.HandRank)

	// ResetHighlightAwardedValue clears any awarded-cell highlight
	ResetHighlightAwardedValue()
}

// NopSink discards every notification
type NopSink struct{}

// BetAmountChanged discards the notification
func (NopSink) BetAmountChanged(int) {}

// DenomChanged discards the notification
func (NopSink) DenomChanged(float64) {}

// CreditsUpdated discards the notification
func (NopSink) CreditsUpdated(float64, float64) {}

// PaidCreditsUpdated discards the notification
func (NopSink) PaidCreditsUpdated(float64) {}

// PopulateBetAmountView discards the notification
func (NopSink) PopulateBetAmountView(int, paytable.Paytable) {}

// PopulateWinNamesView discards the notification
func (NopSink) PopulateWinNamesView([]string) {}

// RevealCard discards the notification
func (NopSink) RevealCard(int, *deck.Card) {}

// ResetHold discards the notification
func (NopSink) ResetHold() {}

// EnableHoldButtons discards the notification
func (NopSink) EnableHoldButtons(bool) {}

// UpdateInfoText discards the notification
func (NopSink) UpdateInfoText(string) {}

// HighlightAwardedValue discards the notification
func (NopSink) HighlightAwardedValue(int, handrank.HandRank) {}

// ResetHighlightAwardedValue discards the notification
func (NopSink) ResetHighlightAwardedValue() {}
