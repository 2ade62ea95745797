package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/beancount-household/ast"
	"github.com/robinvdvleuten/beancount-household/errors"
	"github.com/robinvdvleuten/beancount-household/ledger"
	"github.com/robinvdvleuten/beancount-household/output"
	"github.com/robinvdvleuten/beancount-household/telemetry"
)

// StatementCmd shows which bank statement a balance assertion is copied from.
// Given a statement path it validates that path the way a balance assertion
// in a journal is validated, including the file lookup under the document root.
type StatementCmd struct {
	Date    string `arg:"" help:"Date of the balance assertion (YYYY-MM-DD)."`
	File    string `arg:"" optional:"" help:"Statement path to check against the balance assertion."`
	Account string `help:"Account of the balance assertion." default:"Assets:Bank"`
	Format  string `help:"Error output format (${enum})." enum:"text,json" default:"text"`
}

func (cmd *StatementCmd) Run(ctx *kong.Context, globals *Globals) error {
	date, err := ast.NewDate(cmd.Date)
	if err != nil {
		return err
	}

	if cmd.File == "" {
		cfg, err := globals.LoadConfig()
		if err != nil {
			return err
		}
		writeStatement(ctx.Stdout, cfg, date)
		return nil
	}

	if !ledger.StatementIssued(date.Time, globals.now()) {
		printInfof(ctx.Stdout, "The statement for %s is issued on %s, nothing to check yet",
			date, ledger.StatementDate(date.Time).Format("2006-01-02"))
		return nil
	}

	l, err := globals.newLedger()
	if err != nil {
		return err
	}

	runCtx := context.Background()
	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start(fmt.Sprintf("statement %s", date))
		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	balance := ast.NewBalance(date, ast.Account(cmd.Account), nil)
	balance.Pos = ast.Position{Filename: "<command line>", Line: 1}
	balance.AddMetadata(ast.NewMetadata("statement", cmd.File))

	if _, err := l.Process(runCtx, ast.Directives{balance}); err != nil {
		var validationErrors *ledger.ValidationErrors
		if !stdErrors.As(err, &validationErrors) {
			return err
		}

		var formatter errors.Formatter = errors.NewTextFormatter()
		if cmd.Format == "json" {
			formatter = errors.NewJSONFormatter()
		}
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.FormatAll(validationErrors.Errors))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d problem(s) with the statement for %s", len(validationErrors.Errors), date))
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s matches the balance on %s", pathStyle.Render(cmd.File), date))
	return nil
}

func writeStatement(w io.Writer, cfg *ledger.Config, date *ast.Date) {
	printInfof(w, "Statement for the balance on %s: %s", date, pathStyle.Render(ledger.StatementFilename(date.Time)))
	if cfg.ClosingStatementSuffix != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", dimStyle.Render("or a closing statement ending in "+cfg.ClosingStatementSuffix))
	}
}
