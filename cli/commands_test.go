package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// run parses args like the beancount-household binary and runs the selected
// command.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runAt(t, nil, args...)
}

// runAt is run with the clock of the commands fixed by now.
func runAt(t *testing.T, now func() time.Time, args ...string) (string, string, error) {
	t.Helper()

	var (
		cli            Commands
		stdout, stderr bytes.Buffer
	)
	cli.clock = now

	parser, err := kong.New(&cli,
		kong.Name("beancount-household"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&cli.Globals),
		kong.Exit(func(int) {}),
	)
	assert.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}

	err = ctx.Run()
	return stdout.String(), stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr), "expected a CommandError, got %v", err)
	return cmdErr.ExitCode()
}

func TestStatementCmd(t *testing.T) {
	t.Run("prints expected filename", func(t *testing.T) {
		stdout, _, err := run(t, "statement", "2024-01-31")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "Statement for the balance on 2024-01-31: 2024-02-28.pdf")
		assert.Contains(t, stdout, "or a closing statement ending in _closing-statement.pdf")
	})

	root := t.TempDir()
	writeStatementFile := func(name string) string {
		path := filepath.Join(root, name)
		assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
		return path
	}

	t.Run("accepts matching file", func(t *testing.T) {
		path := writeStatementFile("2024-02-28.pdf")
		stdout, _, err := run(t, "statement", "2024-01-31", path)
		assert.NoError(t, err)
		assert.Contains(t, stdout, path+" matches the balance on 2024-01-31")
	})

	t.Run("accepts closing statement", func(t *testing.T) {
		path := writeStatementFile("2024-03-15_closing-statement.pdf")
		_, _, err := run(t, "statement", "2024-01-31", path)
		assert.NoError(t, err)
	})

	t.Run("rejects other file", func(t *testing.T) {
		path := filepath.Join(root, "2024-02-01.pdf")
		_, stderr, err := run(t, "statement", "--account", "Assets:Francis:Bank", "2024-01-31", path)
		assert.Equal(t, 1, exitCode(t, err))
		assert.Contains(t, stderr, "<command line>:1: Statement file must be date one month from the balance assertion date (2024-02-28.pdf)")
		assert.Contains(t, stderr, "2024-01-31 balance Assets:Francis:Bank")
		assert.Contains(t, stderr, "File not found: "+path)
		assert.Contains(t, stderr, "2 problem(s) with the statement for 2024-01-31")
	})

	t.Run("json errors", func(t *testing.T) {
		path := writeStatementFile("2024-02-01.pdf")
		_, stderr, err := run(t, "statement", "--format", "json", "2024-01-31", path)
		assert.Equal(t, 1, exitCode(t, err))
		assert.Contains(t, stderr, `"type": "InvalidBalanceAssertion"`)
		assert.NotContains(t, stderr, "FileNotFound")
	})

	t.Run("telemetry", func(t *testing.T) {
		path := writeStatementFile("2024-02-28.pdf")
		_, stderr, err := run(t, "--telemetry", "statement", "2024-01-31", path)
		assert.NoError(t, err)
		assert.Contains(t, stderr, "statement 2024-01-31")
		assert.Contains(t, stderr, "ledger.validate (1 entries)")
	})

	t.Run("statement not issued yet", func(t *testing.T) {
		stdout, _, err := run(t, "statement", "2999-01-15", "whatever.pdf")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "The statement for 2999-01-15 is issued on 2999-02-14, nothing to check yet")
	})

	t.Run("issue day follows the clock", func(t *testing.T) {
		path := writeStatementFile("2024-02-28.pdf")
		at := func(hour int) func() time.Time {
			return func() time.Time { return time.Date(2024, time.February, 28, hour, 0, 0, 0, time.UTC) }
		}
		dayBefore := func() time.Time { return time.Date(2024, time.February, 27, 23, 0, 0, 0, time.UTC) }

		stdout, _, err := runAt(t, dayBefore, "statement", "2024-01-31", path)
		assert.NoError(t, err)
		assert.Contains(t, stdout, "The statement for 2024-01-31 is issued on 2024-02-28, nothing to check yet")

		for _, hour := range []int{0, 18} {
			stdout, _, err = runAt(t, at(hour), "statement", "2024-01-31", path)
			assert.NoError(t, err)
			assert.Contains(t, stdout, path+" matches the balance on 2024-01-31")
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, _, err := run(t, "statement", "31-01-2024")
		assert.Error(t, err)
	})
}

func TestRulesCmd(t *testing.T) {
	t.Run("default parties", func(t *testing.T) {
		stdout, _, err := run(t, "rules", "--party", "Leyna")
		assert.NoError(t, err)

		assert.Contains(t, stdout, "Transfers in the journal of Leyna")
		assert.Contains(t, stdout, "#transfer-to-francis")
		assert.Contains(t, stdout, "Assets:Francis:Transfers:FromLeyna")
		assert.Contains(t, stdout, `"Transfer from self: "`)
		assert.Contains(t, stdout, "#owed-by-shared")
		assert.Contains(t, stdout, "Expenses:Shared, Assets:Shared:Receivables")
		assert.NotContains(t, stdout, "#owed-by-leyna")
		assert.NotContains(t, stdout, "#transfer-to-leyna")
	})

	t.Run("configured parties", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "household.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("parties: [Alex, Sam]\n"), 0o644))

		stdout, _, err := run(t, "--config", path, "rules", "-p", "Alex")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "#transfer-to-sam")
		assert.NotContains(t, stdout, "Francis")
	})

	t.Run("unknown party", func(t *testing.T) {
		_, stderr, err := run(t, "rules", "--party", "Nobody")
		assert.Equal(t, 2, exitCode(t, err))
		assert.Contains(t, stderr, `unknown party "Nobody", expected one of: Francis, Leyna, Shared`)
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "household.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("parties: []\n"), 0o644))

		_, _, err := run(t, "--config", path, "rules", "-p", "Alex")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one party is required")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "loud", "rules", "-p", "Leyna")
		assert.Error(t, err)
	})
}

func TestWriteTableAlignsWideRunes(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"TAG", "ACCOUNT"}, [][]string{
		{"#owed-by-日本", "Expenses:日本"},
		{"#owed-by-leyna", "Expenses:Leyna"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"  TAG             ACCOUNT",
		"  #owed-by-日本   Expenses:日本",
		"  #owed-by-leyna  Expenses:Leyna",
	}, lines)
}

func TestCommandError(t *testing.T) {
	t.Run("implements error interface", func(t *testing.T) {
		err := NewCommandError(1)
		assert.Error(t, err)
	})

	t.Run("returns exit code", func(t *testing.T) {
		err := NewCommandError(42)
		assert.Equal(t, err.ExitCode(), 42)
	})
}
