// Package ledger validates household bookkeeping conventions on parsed Beancount
// entries. Every journal file belongs to one party and one owner account,
// declared by a custom directive or an opening balance transaction; all later
// transactions in the file are classified and checked against that owner.
//
// The ledger checks that:
//   - Every transaction starts from the journal's owner account
//   - Postings stay within the owner's accounts unless tagged as owed
//   - Transfers follow the tag, payee, narration and account conventions
//   - Receipts, payslips and bank statements are referenced where required
//   - Balance assertions reference the statement they were copied from
//
// For every referenced document a Document entry is appended to the result.
//
// Example usage:
//
//	l := ledger.New(ledger.WithLogger(logger))
//	entries, err := l.Process(ctx, directives)
//	if err != nil {
//	    var verr *ledger.ValidationErrors
//	    if errors.As(err, &verr) {
//	        for _, e := range verr.Errors {
//	            fmt.Println(e)
//	        }
//	    }
//	}
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robinvdvleuten/beancount-household/ast"
	"github.com/robinvdvleuten/beancount-household/telemetry"
	"go.uber.org/zap"
)

// Ledger validates entries against the household conventions. A Ledger holds
// no state between calls and may be used from several goroutines.
type Ledger struct {
	config      *Config
	conventions *Conventions
	logger      *zap.Logger
	now         func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithConfig sets the conventions configuration.
func WithConfig(cfg *Config) Option {
	return func(l *Ledger) {
		l.config = cfg
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock sets the source of the current date, used to skip statements that
// cannot have been issued yet.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a ledger validator.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		config: NewConfig(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.conventions = NewConventions(l.config.Parties)
	return l
}

// Config returns the configuration the ledger validates with.
func (l *Ledger) Config() *Config {
	return l.config
}

// Conventions returns the transfer and owed tables of the ledger.
func (l *Ledger) Conventions() *Conventions {
	return l.conventions
}

// ValidationErrors wraps multiple validation errors
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

// run is the state of a single Process call.
type run struct {
	*validator

	logger   *zap.Logger
	today    time.Time
	contexts *contextTable
	errors   []error
	flagged  []ast.Directive
}

// Process validates entries in order and returns them followed by the
// synthesized document entries. The input slice is not modified. When any
// convention is violated the returned error is a *ValidationErrors; the
// entries are returned either way.
func (l *Ledger) Process(ctx context.Context, entries ast.Directives) (ast.Directives, error) {
	r := &run{
		validator: newValidator(l.config, l.conventions),
		logger:    l.logger.With(zap.String("run_id", uuid.NewString())),
		today:     l.now(),
		contexts:  newContextTable(),
	}

	validateTimer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.validate (%d entries)", len(entries)))
	for _, entry := range entries {
		// Check for cancellation
		select {
		case <-ctx.Done():
			validateTimer.End()
			return nil, ctx.Err()
		default:
		}

		r.processEntry(entry)
	}
	validateTimer.End()

	documentsTimer := telemetry.StartTimer(ctx, fmt.Sprintf("ledger.documents (%d flagged)", len(r.flagged)))
	docs, err := r.documents()
	documentsTimer.End()
	if err != nil {
		return nil, err
	}

	out := make(ast.Directives, 0, len(entries)+len(docs))
	out = append(out, entries...)
	out = append(out, docs...)

	r.logger.Info("validated entries",
		zap.Int("entries", len(entries)),
		zap.Int("documents", len(docs)),
		zap.Int("errors", len(r.errors)),
	)

	if len(r.errors) > 0 {
		return out, &ValidationErrors{Errors: r.errors}
	}
	return out, nil
}

// Validate is the plugin-shaped entry point: it validates entries with the
// Config found in ctx and returns the extended entries and every error found.
// The options map of loader plugins is accepted and not interpreted.
func Validate(ctx context.Context, entries ast.Directives, _ map[string]string) (ast.Directives, []error) {
	out, err := New(WithConfig(ConfigFromContext(ctx))).Process(ctx, entries)
	if err == nil {
		return out, nil
	}

	var verr *ValidationErrors
	if errors.As(err, &verr) {
		return out, verr.Errors
	}
	return entries, []error{err}
}

func (r *run) processEntry(entry ast.Directive) {
	if r.skip(entry) {
		r.logger.Debug("skipping entry", zap.Stringer("pos", entry.Position()))
		return
	}

	switch d := entry.(type) {
	case *ast.Custom:
		r.processCustom(d)
	case *ast.Transaction:
		r.processTransaction(d)
	case *ast.Balance:
		r.processBalance(d)
	default:
		// Document entries, including the ones synthesized by an earlier run,
		// and all other directives pass through unchecked.
	}
}

func (r *run) skip(entry ast.Directive) bool {
	if r.config.skipFile(ast.Filename(entry)) {
		return true
	}
	if txn, ok := entry.(*ast.Transaction); ok {
		for _, tag := range r.config.SkipTags {
			if txn.HasTag(ast.Tag(tag)) {
				return true
			}
		}
	}
	return false
}

func (r *run) processCustom(custom *ast.Custom) {
	decl, ok := r.config.initDirective(custom.Type)
	if !ok {
		return
	}

	values := custom.StringValues()
	var fc FileContext
	switch {
	case decl.WithParty && len(values) >= 2:
		fc = FileContext{Party: values[0], Account: ast.Account(values[1])}
	case !decl.WithParty && len(values) >= 1:
		fc = FileContext{Account: ast.Account(values[0]), Party: AccountParty(ast.Account(values[0]))}
	default:
		r.logger.Warn("ignoring journal declaration without enough values",
			zap.Stringer("pos", custom.Pos),
			zap.String("type", custom.Type),
			zap.Strings("values", values),
		)
		return
	}

	r.setContext(custom, fc)
}

func (r *run) setContext(directive ast.Directive, fc FileContext) {
	file := ast.Filename(directive)
	prev, redefined := r.contexts.set(file, fc)

	r.logger.Debug("journal owner declared",
		zap.String("file", file),
		zap.String("account", string(fc.Account)),
		zap.String("party", fc.Party),
	)

	if redefined && !r.config.AllowContextRedefinition {
		r.errors = append(r.errors, newError(KindContextRedefined, directive,
			"Journal account redefined from %s (%s) to %s (%s)", prev.Account, prev.Party, fc.Account, fc.Party))
	}
}

func (r *run) processTransaction(txn *ast.Transaction) {
	if txn.HasTag(ast.Tag(r.config.OpeningBalanceTag)) {
		if fc, ok := r.contexts.get(ast.Filename(txn)); ok {
			if err := r.validateFirstPosting(txn, fc); err != nil {
				r.errors = append(r.errors, err)
			}
		}
		r.errors = append(r.errors, r.validateOpeningBalance(txn)...)
		if fc, ok := openingContext(txn); ok {
			r.setContext(txn, fc)
		}
		return
	}

	fc, ok := r.contexts.get(ast.Filename(txn))
	if !ok {
		r.errors = append(r.errors, newError(KindMissingContext, txn,
			"Journal party and account must be specified before all following transactions using custom directive"))
		return
	}

	errs := r.validateTransaction(txn, fc)
	r.errors = append(r.errors, errs...)

	if IsReceipt(txn) || IsPayslip(txn) {
		r.flagged = append(r.flagged, txn)
	}

	if len(errs) > 0 {
		r.logger.Debug("transaction violates conventions",
			zap.Stringer("pos", txn.Pos),
			zap.Stringer("category", Classify(txn, fc.Party, r.config)),
			zap.Int("errors", len(errs)),
		)
	}
}

func (r *run) processBalance(balance *ast.Balance) {
	flag, err := r.checkStatement(balance, r.today)
	if err != nil {
		r.errors = append(r.errors, err)
	}
	if flag {
		r.flagged = append(r.flagged, balance)
	}
}

func (r *run) documents() (ast.Directives, error) {
	if len(r.flagged) == 0 {
		return nil, nil
	}

	root, err := documentRoot(r.config.DocumentRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve document root: %w", err)
	}

	docs, errs := synthesizeDocuments(r.flagged, root)
	r.errors = append(r.errors, errs...)

	if len(errs) > 0 {
		r.logger.Debug("documents missing", zap.String("root", root), zap.Errors("errors", errs))
	}

	return docs, nil
}
