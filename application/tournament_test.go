package application

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

const sample = "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n"

func TestPlaySample(t *testing.T) {
	report, err := NewTournament(nil).Play(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Winnings != 5905 {
		t.Fatalf("expected 5905, got %d", report.Winnings)
	}
	var got []int
	for _, s := range report.Standings {
		got = append(got, s.Position)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayEmpty(t *testing.T) {
	report, err := NewTournament(nil).Play(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Winnings != 0 || len(report.Standings) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestPlayAbortsOnMalformedLine(t *testing.T) {
	report, err := NewTournament(nil).Play(strings.NewReader("32T3K 765\nKK677 -5\n"))
	var perr *camel.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *camel.ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", perr.Line)
	}
	if report.Standings != nil || report.Winnings != 0 {
		t.Fatalf("expected no partial report, got %+v", report)
	}
}

func TestPlayLogsStandings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := NewTournament(logger).Play(strings.NewReader(sample)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"count=5", "hand=KTJJT", "winnings=5905"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPlayAbortsOnOverflow(t *testing.T) {
	input := "23456 18446744073709551615\nAAAAA 18446744073709551615\n"
	report, err := NewTournament(nil).Play(strings.NewReader(input))
	if !errors.Is(err, camel.ErrOverflow) {
		t.Fatalf("expected camel.ErrOverflow, got %v", err)
	}
	if report.Standings != nil || report.Winnings != 0 {
		t.Fatalf("expected no partial report, got %+v", report)
	}
}
