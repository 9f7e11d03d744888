package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/luca-patrignani/camel-cards/application"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	table   bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "camelcards [input]",
		Short: "Rank Camel Cards hands and total the winnings",
		Long: `Reads one "<hand> <wager>" pair per line, e.g. "32T3K 765", ranks the
hands from weakest to strongest and prints the sum of wager * rank.
J is the Joker: the weakest card, but it counts as whichever card makes
the hand strongest. Reads standard input when no file or "-" is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every ranked hand")
	cmd.Flags().BoolVarP(&opts.table, "table", "t", false, "print the full standings table")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	if colorEnabled(cmd.OutOrStdout(), opts.noColor) {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	in, err := openInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := application.NewTournament(logger).Play(in)
	if err != nil {
		return fmt.Errorf("cannot settle tournament: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.table {
		table, err := renderStandings(report.Standings)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
	}
	fmt.Fprintln(out, renderTotal(report.Winnings))
	return nil
}

// colorEnabled reports whether w is a terminal and colour was not turned off
// with --no-color or NO_COLOR.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(w)))
}

func openInput(stdin io.Reader, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
