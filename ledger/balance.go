package ledger

import (
	"strings"
	"time"

	"github.com/robinvdvleuten/beancount-household/ast"
)

// StatementDate returns the closing date of the bank statement a balance
// assertion dated date is copied from: one month later, minus one day. The
// month is added the calendar way, so 31 January becomes 29 February (in a
// leap year) before the day is subtracted.
func StatementDate(date time.Time) time.Time {
	return addMonth(date).AddDate(0, 0, -1)
}

// StatementIssued reports whether the statement of a balance assertion dated
// date has been issued by today. Only the day of today counts.
func StatementIssued(date, today time.Time) bool {
	return !StatementDate(date).After(truncateDay(today))
}

// StatementFilename returns the filename suffix the statement of a balance
// assertion dated date must end with.
func StatementFilename(date time.Time) string {
	return StatementDate(date).Format("2006-01-02") + ".pdf"
}

// addMonth adds one calendar month, clamping the day to the end of the target
// month instead of overflowing into the next one.
func addMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	if last := daysIn(year, month+1); day > last {
		day = last
	}
	return time.Date(year, month+1, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// checkStatement validates the statement metadata of a balance assertion. It
// reports whether a statement document should be synthesized for the balance;
// statements that cannot exist yet are neither checked nor attached.
func (v *validator) checkStatement(balance *ast.Balance, today time.Time) (bool, error) {
	value, ok := balance.Meta(metaStatement)
	if !ok {
		return false, newError(KindInvalidBalanceAssertion, balance, "Missing required metadata of 'statement'")
	}
	if balance.Date.IsZero() {
		return true, nil
	}

	if !StatementIssued(balance.Date.Time, today) {
		return false, nil
	}

	if v.config.MatchesStatement(balance.Date.Time, value.String()) {
		return true, nil
	}

	return true, newError(KindInvalidBalanceAssertion, balance,
		"Statement file must be date one month from the balance assertion date (%s), or a closing statement (%s)",
		StatementFilename(balance.Date.Time), v.config.ClosingStatementSuffix)
}

// MatchesStatement reports whether statement is an acceptable statement file
// for a balance assertion dated date: either the regular statement of the
// following month or a closing statement.
func (c *Config) MatchesStatement(date time.Time, statement string) bool {
	if strings.HasSuffix(statement, StatementFilename(date)) {
		return true
	}
	closing := c.ClosingStatementSuffix
	return closing != "" && strings.HasSuffix(statement, closing)
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
