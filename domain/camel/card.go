package camel

import "fmt"

// Rank is the strength of a single card. The zero value is the Joker.
type Rank uint8

// Card ranks ordered from weakest to strongest. There is no Jack: its symbol
// stands for the Joker.
const (
	Joker Rank = iota // J
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten   // T
	Queen // Q
	King  // K
	Ace   // A
)

const rankSymbols = "J23456789TQKA"

// ParseRank converts a card symbol into its Rank.
func ParseRank(symbol byte) (Rank, error) {
	for i := 0; i < len(rankSymbols); i++ {
		if rankSymbols[i] == symbol {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownRank, symbol)
}

// IsWildcard reports whether r can stand for any other rank.
func (r Rank) IsWildcard() bool {
	return r == Joker
}

// String returns the single-character symbol of the rank.
func (r Rank) String() string {
	if int(r) >= len(rankSymbols) {
		return "?"
	}
	return rankSymbols[r : r+1]
}
