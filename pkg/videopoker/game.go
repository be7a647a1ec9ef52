package videopoker

import (
	"errors"

	"github.com/sirupsen/logrus"

	"videopoker-server/pkg/deck"
	"videopoker-server/pkg/videopoker/handrank"
	"videopoker-server/pkg/videopoker/variant"
)

// gameOverText is shown when the final rank has no mapped display name
const gameOverText = "GAME OVER"

// ErrPlayInProgress is an error when Start() is attempted mid-play
var ErrPlayInProgress = errors.New("a play is already in progress")

// Result is the outcome of a finished play
type Result struct {
	Rank handrank.HandRank
	Name string
}

// Game is the round state machine for a single play: deal, zero or more
// hold/draw rounds, final evaluation. The machine suspends between
// discrete calls and resumes on the next external trigger; there is no
// polling and no timeout. Once started, a play always runs to completion.
type Game struct {
	logger  logrus.FieldLogger
	variant variant.Variant
	sink    Sink
	rng     deck.Generator

	hand          deck.Hand
	holds         []bool
	deck          *deck.Deck
	currentRound  int
	inPlay        bool
	awaitingInput bool
}

// NewGame returns a game for the given variant. The sink receives
// presentation notifications; the generator drives the shuffle.
func NewGame(logger logrus.FieldLogger, v variant.Variant, sink Sink, r deck.Generator) *Game {
	return &Game{
		logger:  logger,
		variant: v,
		sink:    sink,
		rng:     r,
		holds:   v.NewHoldArray(),
	}
}

// InPlay returns true while a play is running (bet debited, not yet paid)
func (g *Game) InPlay() bool {
	return g.inPlay
}

// AwaitingInput returns true while the machine is suspended waiting for a
// hold toggle or draw confirmation
func (g *Game) AwaitingInput() bool {
	return g.awaitingInput
}

// Hand returns a copy of the current hand for presentation
func (g *Game) Hand() deck.Hand {
	return g.hand.Clone()
}

// Holds returns a copy of the hold flags for presentation
func (g *Game) Holds() []bool {
	holds := make([]bool, len(g.holds))
	copy(holds, g.holds)

	return holds
}

// AllCardsHeld returns true when every slot is held
func (g *Game) AllCardsHeld() bool {
	for _, held := range g.holds {
		if !held {
			return false
		}
	}

	return true
}

// ToggleHold flips the hold flag for one slot. Hold events are only
// meaningful while the machine is awaiting hold/draw input; at any other
// time, or for an out-of-range slot, this is a no-op and returns false.
func (g *Game) ToggleHold(slot int) bool {
	if !g.awaitingInput {
		return false
	}

	if slot < 0 || slot >= len(g.holds) {
		return false
	}

	g.holds[slot] = !g.holds[slot]
	return true
}

// Start begins a new play: fresh round counter, fresh shuffled deck, and
// the first deal. It returns a non-nil Result if the play ran to final
// evaluation without suspending (it suspends before the last round of a
// multi-round variant).
func (g *Game) Start() (*Result, error) {
	if g.inPlay {
		return nil, ErrPlayInProgress
	}

	d, err := g.variant.NewDeck()
	if err != nil {
		return nil, err
	}
	g.variant.Shuffle(d, g.rng)

	g.deck = d
	g.hand = nil
	g.currentRound = 0
	g.inPlay = true
	g.awaitingInput = false

	g.sink.PaidCreditsUpdated(0)
	g.sink.ResetHold()
	g.sink.UpdateInfoText("")

	g.logger.WithField("deckHash", d.HashCode()).Debug("play started")

	return g.advance()
}

// ConfirmDraw resumes a suspended play: the held cards stay, the rest are
// redrawn. A no-op when the machine is not waiting.
func (g *Game) ConfirmDraw() (*Result, error) {
	if !g.inPlay || !g.awaitingInput {
		return nil, nil
	}

	g.awaitingInput = false
	g.sink.EnableHoldButtons(false)
	g.currentRound++

	return g.advance()
}

// advance runs deal rounds until the machine suspends for input or the
// play finishes
func (g *Game) advance() (*Result, error) {
	for g.currentRound < g.variant.HandsPerRound() {
		hand, err := g.variant.Deal(g.hand, g.holds, g.deck)
		if err != nil {
			// deck exhaustion here means the variant's range cannot
			// cover its worst-case draws; that is a configuration
			// defect, not a recoverable play state
			return nil, err
		}
		g.hand = hand

		g.revealCards()
		g.updateInterimInfoText()

		// the last round has nothing further to hold for
		if g.currentRound < g.variant.HandsPerRound()-1 {
			g.awaitingInput = true
			g.sink.EnableHoldButtons(true)
			return nil, nil
		}

		g.currentRound++
	}

	return g.finish(), nil
}

// revealCards notifies the sink of every slot that was just dealt
func (g *Game) revealCards() {
	for i, card := range g.hand {
		if !g.holds[i] {
			g.sink.RevealCard(i, card)
		}
	}
}

// updateInterimInfoText surfaces the current hand's classification between
// rounds. It is not authoritative until the final round.
func (g *Game) updateInterimInfoText() {
	rank := g.variant.Classify(g.hand)
	g.sink.UpdateInfoText(g.variant.RankName(rank))
}

// finish classifies the final hand, clears the holds for the next play,
// and returns the result
func (g *Game) finish() *Result {
	rank := g.variant.Classify(g.hand)

	name := g.variant.RankName(rank)
	if name == "" {
		name = gameOverText
	}

	g.sink.UpdateInfoText(name)

	for i := range g.holds {
		g.holds[i] = false
	}

	g.inPlay = false
	g.awaitingInput = false

	g.logger.WithFields(logrus.Fields{
		"hand": g.hand.String(),
		"rank": rank.String(),
	}).Debug("play finished")

	return &Result{
		Rank: rank,
		Name: name,
	}
}
