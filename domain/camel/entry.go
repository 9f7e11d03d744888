package camel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is a hand and the wager placed on it.
type Entry struct {
	Hand  Hand
	Wager uint64
}

// ParseEntry reads a line of the form "<hand> <wager>", e.g. "32T3K 765".
func ParseEntry(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Entry{}, ErrLineFormat
	}
	hand, err := ParseHand(fields[0])
	if err != nil {
		return Entry{}, err
	}
	wager, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrBadWager, fields[1])
	}
	return Entry{Hand: hand, Wager: wager}, nil
}

// LoadEntries reads one entry per line, skipping blank lines. The first
// malformed line stops the load with a *ParseError.
func LoadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := ParseEntry(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}
