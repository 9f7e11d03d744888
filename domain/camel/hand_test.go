package camel

import (
	"errors"
	"testing"
)

func TestParseHandString(t *testing.T) {
	h := mustParseHand(t, "T55J5")
	if h.String() != "T55J5" {
		t.Fatalf("expected T55J5, got %s", h.String())
	}
	want := [HandSize]Rank{Ten, Five, Five, Joker, Five}
	if h.Cards() != want {
		t.Fatalf("expected %v, got %v", want, h.Cards())
	}
}

func TestParseHandErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrHandLength},
		{"32T3", ErrHandLength},
		{"32T3KK", ErrHandLength},
		{"32T3X", ErrUnknownRank},
		{"1AAAA", ErrUnknownRank},
	}
	for _, c := range cases {
		_, err := ParseHand(c.in)
		if !errors.Is(err, c.want) {
			t.Errorf("%q: expected %v, got %v", c.in, c.want, err)
		}
	}
}

func TestNewHandRejectsWrongSize(t *testing.T) {
	_, err := NewHand(Ace, King)
	if !errors.Is(err, ErrInvalidHand) {
		t.Fatalf("expected ErrInvalidHand, got %v", err)
	}
}

func TestCompareHands(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"32T3K", "KK677", -1}, // one pair < two pair
		{"KK677", "KTJJT", -1}, // two pair < four of a kind
		{"T55J5", "QQQJA", -1}, // same tier, T < Q
		{"QQQJA", "KTJJT", -1},
		{"JKKK2", "QQQQ2", -1}, // joker is the weakest card
		{"33332", "2AAAA", 1},
		{"77888", "77788", 1},
		{"AAAAA", "AAAAA", 0},
	}
	for _, c := range cases {
		a, b := mustParseHand(t, c.a), mustParseHand(t, c.b)
		if got := CompareHands(a, b); got != c.want {
			t.Errorf("CompareHands(%s, %s): expected %d, got %d", c.a, c.b, c.want, got)
		}
		if got := CompareHands(b, a); got != -c.want {
			t.Errorf("CompareHands(%s, %s): expected %d, got %d", c.b, c.a, -c.want, got)
		}
	}
}
