package camel

import "fmt"

// HandSize is the number of cards in every hand.
const HandSize = 5

type rankCount struct {
	rank  Rank
	count int
}

// Evaluate classifies five cards into a Tier. Jokers join the rank that
// already occurs most often; five Jokers make FiveOfKind.
func Evaluate(cards []Rank) (Tier, error) {
	if len(cards) != HandSize {
		return HighCard, fmt.Errorf("%w: %d cards, want %d", ErrInvalidHand, len(cards), HandSize)
	}
	counts, jokers := countRanks(cards)
	if len(counts) == 0 {
		return FiveOfKind, nil
	}
	absorbJokers(counts, jokers, mostFrequent(counts))
	return classify(counts), nil
}

// countRanks tallies the non-wildcard ranks in order of first appearance.
func countRanks(cards []Rank) ([]rankCount, int) {
	counts := make([]rankCount, 0, HandSize)
	jokers := 0
	for _, c := range cards {
		if c.IsWildcard() {
			jokers++
			continue
		}
		found := false
		for i := range counts {
			if counts[i].rank == c {
				counts[i].count++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, rankCount{rank: c, count: 1})
		}
	}
	return counts, jokers
}

// mostFrequent returns the index of the highest count. Ties go to the rank
// seen first; the choice does not affect the resulting tier.
func mostFrequent(counts []rankCount) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i].count > counts[best].count {
			best = i
		}
	}
	return best
}

func absorbJokers(counts []rankCount, jokers int, target int) {
	counts[target].count += jokers
}

func classify(counts []rankCount) Tier {
	largest := 0
	for _, c := range counts {
		largest = max(largest, c.count)
	}
	switch len(counts) {
	case 1:
		return FiveOfKind
	case 2:
		if largest == 4 {
			return FourOfKind
		}
		return FullHouse
	case 3:
		if largest == 3 {
			return ThreeOfKind
		}
		return TwoPair
	case 4:
		return OnePair
	default:
		return HighCard
	}
}
