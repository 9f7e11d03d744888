package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

func renderStandings(standings []camel.Standing) (string, error) {
	data := pterm.TableData{{"Rank", "Hand", "Tier", "Wager", "Payout"}}
	for _, s := range standings {
		data = append(data, []string{
			strconv.Itoa(s.Position),
			printHand(s.Entry.Hand),
			s.Entry.Hand.Tier().String(),
			strconv.FormatUint(s.Entry.Wager, 10),
			strconv.FormatUint(s.Payout, 10),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithRightAlignment().WithData(data).Srender()
}

// printHand highlights jokers and face cards.
func printHand(h camel.Hand) string {
	var b strings.Builder
	for _, r := range h.Cards() {
		switch {
		case r.IsWildcard():
			b.WriteString(pterm.LightMagenta(r.String()))
		case r >= camel.Ten:
			b.WriteString(pterm.LightCyan(r.String()))
		default:
			b.WriteString(r.String())
		}
	}
	return b.String()
}

func renderTotal(winnings uint64) string {
	return fmt.Sprintf("Total winnings: %s", pterm.LightGreen(winnings))
}
