// Package videopoker is the engine for a single-player draw-poker
// wagering game: the player stakes credits, receives a five-card hand,
// holds any subset, redraws the rest, and is paid according to the final
// hand's rank.
package videopoker

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/paytable"
	"videopoker-server/pkg/videopoker/variant"
	"videopoker-server/pkg/videopoker/wallet"
)

// Options configures a session
type Options struct {
	// InitialCash is the wallet's starting cash balance
	InitialCash float64

	// AddMoneyAmount is the fixed cash increment of the add-money action
	AddMoneyAmount float64

	// Paytables is the economy configuration; it must validate
	Paytables paytable.Config

	// Variant is the active game offering
	Variant variant.Variant
}

// Session is the top-level owner of the wallet and the bet/denomination
// selection across plays. It consumes input intents, drives the round
// state machine, and applies results to the wallet. The wallet is only
// ever mutated here; the game requests economic effects through the
// session.
type Session struct {
	logger  logrus.FieldLogger
	options Options
	wallet  *wallet.Wallet
	game    *Game
	sink    Sink
	logChan chan []*LogMessage
}

// NewSession validates the options and returns a session. Configuration
// errors here are fatal: the game must not proceed on an invalid paytable
// setup.
func NewSession(logger logrus.FieldLogger, options Options, sink Sink, r deck.Generator) (*Session, error) {
	if options.Variant == nil {
		return nil, errors.New("a variant is required")
	}

	if err := options.Paytables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid paytable config: %w", err)
	}

	s := &Session{
		logger:  logger,
		options: options,
		sink:    sink,
		logChan: make(chan []*LogMessage, 256),
	}

	s.wallet = wallet.New(&s.options.Paytables, options.InitialCash)
	s.game = NewGame(logger, options.Variant, sink, r)

	return s, nil
}

// Wallet returns the session's wallet
func (s *Session) Wallet() *wallet.Wallet {
	return s.wallet
}

// Game returns the round state machine
func (s *Session) Game() *Game {
	return s.game
}

// LogChan returns a channel the session sends log messages to
func (s *Session) LogChan() <-chan []*LogMessage {
	return s.logChan
}

// Configure performs the one-time presentation population when the game
// first loads: bet level, paytable views, credit meter, denomination, and
// the variant's win names.
func (s *Session) Configure() {
	s.wallet.ResetBetLevel()
	s.sink.BetAmountChanged(s.wallet.BetAmount())

	for i, level := range s.options.Paytables.BetLevels {
		s.sink.PopulateBetAmountView(level, s.options.Paytables.Paytables[i])
	}

	s.sink.CreditsUpdated(s.wallet.Credits(), s.wallet.Denom())

	// force a denomination notification on first load
	s.ChangeDenom(0)

	s.sink.PopulateWinNamesView(s.options.Variant.RankNames())
	s.sink.EnableHoldButtons(false)
}

// BetOne advances the bet level by one, wrapping past the last level
func (s *Session) BetOne() {
	s.sink.BetAmountChanged(s.wallet.BetOne())
}

// BetMax jumps straight to the last bet level; a no-op if already there
func (s *Session) BetMax() {
	if !s.wallet.BetMax() {
		return
	}

	s.sink.BetAmountChanged(s.wallet.BetAmount())
}

// ChangeDenom steps the denomination by delta, clamped to the configured
// range. Cash is unaffected; only the derived credit math changes.
func (s *Session) ChangeDenom(delta int) {
	s.sink.DenomChanged(s.wallet.ChangeDenom(delta))
	s.sink.CreditsUpdated(s.wallet.Credits(), s.wallet.Denom())
}

// AddMoney credits the configured increment to the wallet
func (s *Session) AddMoney() {
	s.wallet.AddMoney(s.options.AddMoneyAmount)
	s.sink.CreditsUpdated(s.wallet.Credits(), s.wallet.Denom())
}

// Hold forwards a hold toggle to the state machine. Outside the
// hold/draw wait this is a no-op.
func (s *Session) Hold(slot int) {
	s.game.ToggleHold(slot)
}

// Deal is the physical Deal/Draw trigger. While a play is waiting on
// hold/draw input it acts as the draw confirmation; otherwise it places
// the current bet and starts a new play. When the bet cannot be covered
// the trigger silently does nothing.
func (s *Session) Deal() error {
	if s.game.InPlay() {
		result, err := s.game.ConfirmDraw()
		if err != nil {
			return err
		}

		if result != nil {
			s.reportWin(result)
		}

		return nil
	}

	if !s.wallet.PlaceBet() {
		s.logger.WithFields(logrus.Fields{
			"cash":      s.wallet.Cash(),
			"betAmount": s.wallet.BetAmount(),
			"denom":     s.wallet.Denom(),
		}).Debug("insufficient funds; bet not placed")
		return nil
	}

	s.sink.CreditsUpdated(s.wallet.Credits(), s.wallet.Denom())
	s.sink.ResetHighlightAwardedValue()

	s.sendLogMessages(SimpleLogMessageSlice("bet %d credits at $%.2f", s.wallet.BetAmount(), s.wallet.Denom()))

	result, err := s.game.Start()
	if err != nil {
		return err
	}

	if result != nil {
		s.reportWin(result)
	}

	return nil
}

// Handle dispatches an inbound action payload
func (s *Session) Handle(in *ActionIn) error {
	switch in.Action {
	case ActionBetOne:
		s.BetOne()
	case ActionBetMax:
		s.BetMax()
	case ActionDeal:
		return s.Deal()
	case ActionAddMoney:
		s.AddMoney()
	case ActionChangeDenom:
		s.ChangeDenom(in.Delta)
	case ActionHold:
		s.Hold(in.Slot)
	default:
		return fmt.Errorf("unknown action: %s", in.Action)
	}

	return nil
}

// reportWin looks up the award for the current bet level and the resolved
// rank, pays the wallet, and emits the paid/credit meters
func (s *Session) reportWin(result *Result) {
	award := s.wallet.Paytable().Lookup(result.Rank)
	s.wallet.Payout(award)

	s.sink.PaidCreditsUpdated(award)
	s.sink.CreditsUpdated(s.wallet.Credits(), s.wallet.Denom())
	s.sink.HighlightAwardedValue(s.wallet.BetLevelIndex()+1, result.Rank)

	if award > 0 {
		s.sendLogMessages(SimpleLogMessageSlice("won %s for %g credits", result.Name, award))
	}
}

func (s *Session) sendLogMessages(messages []*LogMessage) {
	select {
	case s.logChan <- messages:
	default:
		s.logger.Warn("log channel full; dropping messages")
	}
}
