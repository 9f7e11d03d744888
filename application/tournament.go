package application

import (
	"io"
	"log/slog"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

// Report is the outcome of a tournament.
type Report struct {
	Standings []camel.Standing
	Winnings  uint64
}

// Tournament loads every entry, ranks the hands and totals the winnings.
type Tournament struct {
	logger *slog.Logger
}

// NewTournament returns a Tournament logging to logger, or discarding logs
// when logger is nil.
func NewTournament(logger *slog.Logger) *Tournament {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tournament{logger: logger}
}

// Play reads all entries from r before ranking anything, so a malformed line
// yields an error and no partial report.
func (t *Tournament) Play(r io.Reader) (Report, error) {
	entries, err := camel.LoadEntries(r)
	if err != nil {
		return Report{}, err
	}
	t.logger.Info("entries loaded", "count", len(entries))

	ranked := camel.RankEntries(entries)
	standings, err := camel.Standings(ranked)
	if err != nil {
		return Report{}, err
	}
	for _, s := range standings {
		t.logger.Debug("ranked",
			"position", s.Position,
			"hand", s.Entry.Hand.String(),
			"tier", s.Entry.Hand.Tier().String(),
			"wager", s.Entry.Wager,
			"payout", s.Payout,
		)
	}

	winnings, err := camel.TotalWinnings(ranked)
	if err != nil {
		return Report{}, err
	}
	report := Report{
		Standings: standings,
		Winnings:  winnings,
	}
	t.logger.Info("tournament settled", "winnings", report.Winnings)
	return report, nil
}
