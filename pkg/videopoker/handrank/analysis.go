package handrank

import (
	"videopoker-server/pkg/deck"
)

// Analysis holds the intermediate facts about a five-card hand that the
// rank classification is derived from. It is computed fresh per evaluation
// and never persisted.
type Analysis struct {
	// Sorted is an ascending-by-rank copy of the evaluated hand. The
	// caller's hand is never reordered; slot positions are tied to
	// hold state and presentation.
	Sorted deck.Hand

	// AllSameSuit is true when every card shares one suit
	AllSameSuit bool

	// IsStraight is true when the hand reads as a run (see isStraight)
	IsStraight bool

	// AllAboveThreshold is true when every rank is at or above the
	// variant's royal threshold (Ten for a standard game)
	AllAboveThreshold bool

	// ValueGroups holds, per rank appearing two or more times, the
	// indices into Sorted sharing that rank. Groups are discovered by
	// scanning the sorted copy, so their order is deterministic.
	ValueGroups [][]int
}

// Analyze evaluates a hand against the given royal threshold
func Analyze(hand deck.Hand, threshold int) *Analysis {
	sorted := hand.Clone()
	sorted.SortByRank()

	return &Analysis{
		Sorted:            sorted,
		AllSameSuit:       allSameSuit(sorted),
		IsStraight:        isStraight(sorted),
		AllAboveThreshold: allAtOrAbove(sorted, threshold),
		ValueGroups:       valueGroups(sorted),
	}
}

// Rank classifies the analysis into a hand rank. First match wins.
// Multi-group checks use only the summed size of two groups and
// single-group checks only a single group's size, so the outcome does not
// depend on group order.
func (a *Analysis) Rank() HandRank {
	if a.AllSameSuit && a.IsStraight && a.AllAboveThreshold {
		return RoyalFlush
	}

	if a.AllSameSuit && a.IsStraight {
		return StraightFlush
	}

	if a.AllSameSuit {
		return Flush
	}

	if a.IsStraight {
		return Straight
	}

	groups := a.ValueGroups

	if len(groups) > 0 && len(groups[0]) == 4 {
		return FourOfAKind
	}

	if len(groups) > 1 && len(groups[0])+len(groups[1]) == 5 {
		return FullHouse
	}

	if len(groups) > 0 && len(groups[0]) == 3 {
		return ThreeOfAKind
	}

	if len(groups) > 1 && len(groups[0])+len(groups[1]) == 4 {
		return TwoPair
	}

	if len(groups) > 0 && len(groups[0]) == 2 {
		return Pair
	}

	return HighCard
}

// PairRank returns the rank of the paired cards when exactly one
// qualifying group exists. Used by variants to promote a Pair into a
// qualified pair.
func (a *Analysis) PairRank() (int, bool) {
	if len(a.ValueGroups) == 0 {
		return 0, false
	}

	return a.Sorted[a.ValueGroups[0][0]].Rank, true
}

func allSameSuit(sorted deck.Hand) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Suit != sorted[i].Suit {
			return false
		}
	}

	return true
}

func allAtOrAbove(sorted deck.Hand, threshold int) bool {
	for _, card := range sorted {
		if card.Rank < threshold {
			return false
		}
	}

	return true
}

// isStraight reports whether the sorted hand reads as a run: the last
// three cards must be pairwise consecutive, and either the first two
// cards are consecutive as well, or the hand starts with an Ace and ends
// with a King. The Ace/King branch cannot fire after an ascending sort
// (an Ace sorts above a King); it is preserved as-is from the reference
// rules rather than silently reinterpreted.
func isStraight(sorted deck.Hand) bool {
	return inSequenceFrom(sorted, 2) &&
		(sequential(sorted[0], sorted[1]) || firstAceLastKing(sorted))
}

func sequential(a, b *deck.Card) bool {
	return a.Rank == b.Rank-1
}

func firstAceLastKing(sorted deck.Hand) bool {
	return sorted[0].Rank == deck.Ace && sorted[len(sorted)-1].Rank == deck.King
}

func inSequenceFrom(sorted deck.Hand, beginIndex int) bool {
	for i := beginIndex + 1; i < len(sorted); i++ {
		if !sequential(sorted[i-1], sorted[i]) {
			return false
		}
	}

	return true
}

// valueGroups finds the index groups of equal-rank cards with two or more
// members. The sorted copy puts equal ranks adjacent, so one pass is
// enough and no map iteration is involved.
func valueGroups(sorted deck.Hand) [][]int {
	groups := make([][]int, 0, 2)

	i := 0
	for i < len(sorted) {
		j := i + 1
		for j < len(sorted) && sorted[j].Rank == sorted[i].Rank {
			j++
		}

		if j-i >= 2 {
			group := make([]int, 0, j-i)
			for k := i; k < j; k++ {
				group = append(group, k)
			}
			groups = append(groups, group)
		}

		i = j
	}

	return groups
}
