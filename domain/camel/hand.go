package camel

import (
	"fmt"
	"strings"
)

// Hand is an immutable set of five cards. Its tier is computed by NewHand.
type Hand struct {
	cards [HandSize]Rank
	tier  Tier
}

// NewHand builds a Hand from exactly HandSize ranks.
func NewHand(cards ...Rank) (Hand, error) {
	tier, err := Evaluate(cards)
	if err != nil {
		return Hand{}, err
	}
	var h Hand
	copy(h.cards[:], cards)
	h.tier = tier
	return h, nil
}

// ParseHand reads a hand such as "32T3K".
func ParseHand(s string) (Hand, error) {
	if len(s) != HandSize {
		return Hand{}, fmt.Errorf("%w: %q has %d cards, want %d", ErrHandLength, s, len(s), HandSize)
	}
	cards := make([]Rank, 0, HandSize)
	for i := 0; i < len(s); i++ {
		r, err := ParseRank(s[i])
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, r)
	}
	return NewHand(cards...)
}

// Cards returns a copy of the hand's ranks in dealt order.
func (h Hand) Cards() [HandSize]Rank {
	return h.cards
}

// Tier returns the combination the hand forms, Jokers included.
func (h Hand) Tier() Tier {
	return h.tier
}

// String returns the hand in input notation.
func (h Hand) String() string {
	var b strings.Builder
	for _, c := range h.cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// CompareHands orders a before b (-1), after b (1) or equal (0): first by
// Tier, then by the first card that differs.
func CompareHands(a, b Hand) int {
	if a.tier != b.tier {
		if a.tier < b.tier {
			return -1
		}
		return 1
	}
	for i := range a.cards {
		if a.cards[i] < b.cards[i] {
			return -1
		}
		if a.cards[i] > b.cards[i] {
			return 1
		}
	}
	return 0
}
