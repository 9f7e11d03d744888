package camel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHand is returned when a hand does not hold exactly HandSize
	// cards. Parsed hands never trigger it.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrLineFormat is returned when a line is not two whitespace separated fields.
	ErrLineFormat = errors.New("expected \"<hand> <wager>\"")
	// ErrHandLength is returned when a hand does not have HandSize symbols.
	ErrHandLength = errors.New("wrong hand length")
	// ErrUnknownRank is returned for a symbol outside J23456789TQKA.
	ErrUnknownRank = errors.New("unknown rank")
	// ErrBadWager is returned when a wager is not a base-10 uint64.
	ErrBadWager = errors.New("wager is not a non-negative integer")
	// ErrOverflow is returned when a payout or the total exceeds uint64.
	ErrOverflow = errors.New("winnings overflow")
)

// ParseError reports a malformed input line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line
	Err  error  // one of the Err sentinels
}

// Error returns the line number, the raw text and the cause.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the cause, one of the sentinel errors above.
func (e *ParseError) Unwrap() error {
	return e.Err
}
