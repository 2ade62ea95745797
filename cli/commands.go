package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/robinvdvleuten/beancount-household/ledger"
)

// Globals defines global flags available to all commands.
type Globals struct {
	Config    string `help:"Household config file (YAML)." env:"HOUSEHOLD_CONFIG" type:"path"`
	LogLevel  string `help:"Log level (${enum})." env:"HOUSEHOLD_LOG_LEVEL" enum:"debug,info,warn,error" default:"warn"`
	Telemetry bool   `help:"Show timing telemetry for operations."`

	clock func() time.Time
}

type Commands struct {
	Globals

	Rules     RulesCmd     `cmd:"" help:"Show the transfer and owed tag conventions of a party."`
	Statement StatementCmd `cmd:"" help:"Show the statement filename a balance assertion must reference."`
}

// LoadConfig returns the configured household conventions, or the defaults
// when no config file is given.
func (g *Globals) LoadConfig() (*ledger.Config, error) {
	if g.Config == "" {
		return ledger.NewConfig(), nil
	}
	return ledger.LoadConfig(g.Config)
}

func (g *Globals) now() time.Time {
	if g.clock != nil {
		return g.clock()
	}
	return time.Now()
}

// Logger builds the logger for the configured level.
func (g *Globals) Logger() (*zap.Logger, error) {
	return NewLogger(g.LogLevel)
}

// newLedger builds a ledger from the global flags.
func (g *Globals) newLedger() (*ledger.Ledger, error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := g.Logger()
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		zap.String("path", g.Config),
		zap.Strings("parties", cfg.Parties),
	)

	return ledger.New(ledger.WithConfig(cfg), ledger.WithLogger(logger), ledger.WithClock(g.now)), nil
}
