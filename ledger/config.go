package ledger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// InitDirective describes a custom directive type that declares the owner of a
// journal file. When WithParty is set the directive carries the party and the
// account, otherwise only the account and the party is derived from it.
type InitDirective struct {
	Type      string `yaml:"type"`
	WithParty bool   `yaml:"with_party"`
}

// Config holds the household conventions the validator enforces.
// It's designed to be loaded from a YAML file and laid over the defaults.
type Config struct {
	// Parties are the household members, spelled the way they appear as the
	// second component of account names.
	Parties []string `yaml:"parties"`

	OpeningBalanceTag string          `yaml:"opening_balance_tag"`
	InitDirectives    []InitDirective `yaml:"init_directives"`
	SkipTags          []string        `yaml:"skip_tags"`
	SkipFileSuffixes  []string        `yaml:"skip_file_suffixes"`

	ClosingStatementSuffix string `yaml:"closing_statement_suffix"`

	// DocumentRoot is the directory relative document paths are resolved
	// against. Empty means the process working directory.
	DocumentRoot string `yaml:"document_root"`

	// AllowContextRedefinition lets a journal file declare its owner more than
	// once; the last declaration wins. When false a redefinition is reported.
	AllowContextRedefinition bool `yaml:"allow_context_redefinition"`
}

// NewConfig creates a Config with the household defaults.
func NewConfig() *Config {
	return &Config{
		Parties:           []string{"Francis", "Leyna", "Shared"},
		OpeningBalanceTag: "journal-opening-balance",
		InitDirectives: []InitDirective{
			{Type: "initialise_journal_file", WithParty: true},
			{Type: "journal account name"},
		},
		SkipTags:                 []string{"exclude-entry-from-validation", "skip-validation"},
		SkipFileSuffixes:         []string{"transfers.beancount"},
		ClosingStatementSuffix:   "_closing-statement.pdf",
		AllowContextRedefinition: true,
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration over the defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Parties) == 0 {
		return fmt.Errorf("invalid config: at least one party is required")
	}

	seen := make(map[string]bool, len(c.Parties))
	for _, party := range c.Parties {
		if party == "" || strings.Contains(party, accountSeparator) {
			return fmt.Errorf("invalid config: party %q is not a valid account component", party)
		}
		key := strings.ToLower(party)
		if key == selfTagName {
			return fmt.Errorf("invalid config: party name %q is reserved", party)
		}
		if seen[key] {
			return fmt.Errorf("invalid config: duplicate party %q", party)
		}
		seen[key] = true
	}

	if c.OpeningBalanceTag == "" {
		return fmt.Errorf("invalid config: opening_balance_tag must not be empty")
	}

	for _, d := range c.InitDirectives {
		if d.Type == "" {
			return fmt.Errorf("invalid config: init directive without a type")
		}
	}

	return nil
}

// IsParty reports whether name is one of the configured parties.
func (c *Config) IsParty(name string) bool {
	return slices.Contains(c.Parties, name)
}

func (c *Config) initDirective(typ string) (InitDirective, bool) {
	idx := slices.IndexFunc(c.InitDirectives, func(d InitDirective) bool {
		return d.Type == typ
	})
	if idx < 0 {
		return InitDirective{}, false
	}
	return c.InitDirectives[idx], true
}

func (c *Config) skipFile(filename string) bool {
	for _, suffix := range c.SkipFileSuffixes {
		if suffix != "" && strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}

// contextKey is a private type to avoid key collisions in context.
type contextKey struct{}

// WithContext returns a new context with the Config attached.
func (c *Config) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// ConfigFromContext retrieves the Config from context.
// Returns a default Config if not found.
func ConfigFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok {
		return cfg
	}
	return NewConfig()
}
