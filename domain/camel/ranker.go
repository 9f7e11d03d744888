package camel

import (
	"fmt"
	"math/bits"
	"slices"
)

// Standing is an entry's final place after ranking.
type Standing struct {
	Position int // 1 is the weakest hand
	Entry    Entry
	Payout   uint64
}

// RankEntries returns the entries sorted from weakest to strongest hand.
// Entries with identical hands keep their input order. The argument is not
// modified.
func RankEntries(entries []Entry) []Entry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return CompareHands(a.Hand, b.Hand)
	})
	return ranked
}

// TotalWinnings sums wager times position over entries already sorted by
// RankEntries. It fails with ErrOverflow when the sum does not fit in uint64.
func TotalWinnings(ranked []Entry) (uint64, error) {
	var total uint64
	for i, e := range ranked {
		p, err := payout(e.Wager, i+1)
		if err != nil {
			return 0, err
		}
		sum, carry := bits.Add64(total, p, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total winnings at position %d", ErrOverflow, i+1)
		}
		total = sum
	}
	return total, nil
}

// Standings expands ranked entries into their positions and payouts.
func Standings(ranked []Entry) ([]Standing, error) {
	standings := make([]Standing, len(ranked))
	for i, e := range ranked {
		p, err := payout(e.Wager, i+1)
		if err != nil {
			return nil, err
		}
		standings[i] = Standing{
			Position: i + 1,
			Entry:    e,
			Payout:   p,
		}
	}
	return standings, nil
}

func payout(wager uint64, position int) (uint64, error) {
	hi, lo := bits.Mul64(wager, uint64(position))
	if hi != 0 {
		return 0, fmt.Errorf("%w: wager %d at position %d", ErrOverflow, wager, position)
	}
	return lo, nil
}
