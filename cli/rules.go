package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/beancount-household/ledger"
)

// RulesCmd prints the tag conventions that apply in the journal of a party.
type RulesCmd struct {
	Party string `help:"Party whose journal the rules apply to (prompted for when omitted)." short:"p"`
}

func (cmd *RulesCmd) Run(ctx *kong.Context, globals *Globals) error {
	l, err := globals.newLedger()
	if err != nil {
		return err
	}

	parties := l.Conventions().Parties()

	party := cmd.Party
	if party == "" {
		if !isTerminal() {
			printError(ctx.Stderr, "--party is required when stdin is not a terminal")
			return NewCommandError(2)
		}
		if party, err = promptParty(parties); err != nil {
			return err
		}
	}

	if !l.Config().IsParty(party) {
		printError(ctx.Stderr, fmt.Sprintf("unknown party %q, expected one of: %s", party, strings.Join(parties, ", ")))
		return NewCommandError(2)
	}

	writeRules(ctx.Stdout, l.Conventions(), party)
	return nil
}

func writeRules(w io.Writer, conventions *ledger.Conventions, party string) {
	printInfof(w, "Transfers in the journal of %s", party)
	_, _ = fmt.Fprintln(w)

	var transfers [][]string
	for _, rule := range conventions.TransferRules(party) {
		transfers = append(transfers, []string{
			"#" + string(rule.Tag),
			rule.Direction.String(),
			rule.Payee,
			fmt.Sprintf("%q", rule.NarrationPrefix),
			string(rule.Account),
		})
	}
	writeTable(w, []string{"TAG", "DIRECTION", "PAYEE", "NARRATION", "SECOND POSTING"}, transfers)

	_, _ = fmt.Fprintln(w)
	printInfof(w, "Owed tags in the journal of %s", party)
	_, _ = fmt.Fprintln(w)

	var owed [][]string
	for _, rule := range conventions.OwedRules(party) {
		owed = append(owed, []string{
			"#" + string(rule.Tag),
			rule.Party,
			strings.Join(rule.Prefixes, ", "),
		})
	}
	writeTable(w, []string{"TAG", "PARTY", "ALLOWED ACCOUNTS"}, owed)
}

// writeTable writes rows in columns aligned on display width, so account
// names with wide runes line up.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		var line strings.Builder
		for i, cell := range cells {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(style.Render(cell))
			if i < len(cells)-1 {
				line.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			}
		}
		_, _ = fmt.Fprintf(w, "  %s\n", line.String())
	}

	writeRow(header, headerStyle)
	for _, row := range rows {
		writeRow(row, cellStyle)
	}
}
