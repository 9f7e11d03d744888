package camel

// Tier is the combination a hand forms, ordered from weakest to strongest.
type Tier uint8

const (
	HighCard Tier = iota
	OnePair
	TwoPair
	ThreeOfKind
	FullHouse
	FourOfKind
	FiveOfKind
)

func (t Tier) String() string {
	switch t {
	case HighCard:
		return "High card"
	case OnePair:
		return "One pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfKind:
		return "Three of a kind"
	case FullHouse:
		return "Full house"
	case FourOfKind:
		return "Four of a kind"
	case FiveOfKind:
		return "Five of a kind"
	default:
		return "Unknown"
	}
}
