// Package wallet holds the player's cash and the current denomination and
// bet-level selection, and does the cash/credit conversions.
package wallet

import (
	"videopoker-server/pkg/videopoker/paytable"
)

// Wallet is the session's economic state. Cash is stored in currency
// units; credits are derived from the current denomination. The wallet is
// only mutated through bet placement, payout, add-money and
// denomination/bet-level changes.
type Wallet struct {
	cash       float64
	config     *paytable.Config
	denomIndex int
	betIndex   int
}

// New returns a wallet for a validated paytable config, holding the given
// initial cash. The denomination starts at the last configured entry.
func New(config *paytable.Config, initialCash float64) *Wallet {
	return &Wallet{
		cash:       initialCash,
		config:     config,
		denomIndex: len(config.Denominations) - 1,
	}
}

// Cash returns the wallet's cash balance
func (w *Wallet) Cash() float64 {
	return w.cash
}

// Denom returns the currently selected denomination
func (w *Wallet) Denom() float64 {
	return w.config.Denominations[w.denomIndex]
}

// DenomIndex returns the index of the selected denomination
func (w *Wallet) DenomIndex() int {
	return w.denomIndex
}

// BetAmount returns the wager, in credits, at the selected bet level
func (w *Wallet) BetAmount() int {
	return w.config.BetLevels[w.betIndex]
}

// BetLevelIndex returns the index of the selected bet level
func (w *Wallet) BetLevelIndex() int {
	return w.betIndex
}

// Paytable returns the paytable for the selected bet level
func (w *Wallet) Paytable() paytable.Paytable {
	return w.config.Paytables[w.betIndex]
}

// Credits returns the cash balance expressed in credits at the current
// denomination
func (w *Wallet) Credits() float64 {
	return w.cash / w.Denom()
}

// PlaceBet debits the current wager from the cash balance. It returns
// false, without mutating the wallet, when the cash balance cannot cover
// the bet or is not positive.
func (w *Wallet) PlaceBet() bool {
	total := float64(w.BetAmount()) * w.Denom()
	if total > w.cash || w.cash <= 0 {
		return false
	}

	w.cash -= total
	return true
}

// Payout credits the cash equivalent of a credit award at the current
// denomination
func (w *Wallet) Payout(credits float64) {
	w.cash += credits * w.Denom()
}

// AddMoney credits the cash balance, clamped so it never goes negative
func (w *Wallet) AddMoney(amount float64) {
	w.cash += amount
	if w.cash < 0 {
		w.cash = 0
	}
}

// BetOne advances the bet level by one, wrapping to the first level past
// the last. Returns the new bet amount.
func (w *Wallet) BetOne() int {
	w.betIndex++
	if w.betIndex >= len(w.config.BetLevels) {
		w.betIndex = 0
	}

	return w.BetAmount()
}

// BetMax jumps straight to the last configured bet level. Returns false
// when the wallet was already there.
func (w *Wallet) BetMax() bool {
	last := len(w.config.BetLevels) - 1
	if w.betIndex == last {
		return false
	}

	w.betIndex = last
	return true
}

// ResetBetLevel returns the bet level to the first entry
func (w *Wallet) ResetBetLevel() {
	w.betIndex = 0
}

// ChangeDenom moves the denomination index by delta, clamped to the
// configured range. Changing denomination never alters cash; only the
// derived credit figures move. Returns the new denomination.
func (w *Wallet) ChangeDenom(delta int) float64 {
	w.denomIndex = clamp(w.denomIndex+delta, 0, len(w.config.Denominations)-1)
	return w.Denom()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
