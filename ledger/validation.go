package ledger

import (
	"github.com/robinvdvleuten/beancount-household/ast"
)

// Validation Architecture
//
// Entries are visited once, in file order. Custom directives and opening
// balance transactions update the per-file context table; every other
// transaction is checked against the context of its file:
//
//   Ledger.processTransaction(txn)
//     ↓
//   contextTable.get(filename)            // MissingContext when absent, stop
//     ↓
//   validator.validateTransaction(txn, fc) → []error
//     ├─ validateFirstPosting()           // first posting is the owner account
//     ├─ Classify()                       // exactly one category
//     │    ├─ validateTransfer()
//     │    ├─ validateOwed()
//     │    └─ validateDefault()
//     ├─ validateReceipt()                // add-on, when IsReceipt
//     └─ validatePayslip()                // add-on, when IsPayslip
//
//   Ledger.processBalance(balance)
//     ↓
//   checkStatement(balance, today) → (flag, error)
//
// Transactions with receipts or payslips and balances with statements are
// flagged; once all entries are visited a document entry is synthesized for
// every file they reference (see documents.go).
//
// All validators are pure: they read the transaction, the file context and
// the convention tables and return the errors they found without stopping at
// the first one. Only an unrecognised transfer or owed tag ends the checks of
// its category early, since the expected shape of the transaction is unknown.

const (
	metaStatement = "statement"
	metaPayslip   = "payslip"
	metaReceipt   = "receipt"
)

type validator struct {
	config      *Config
	conventions *Conventions
}

func newValidator(config *Config, conventions *Conventions) *validator {
	return &validator{config: config, conventions: conventions}
}

// validateTransaction runs every check that applies to a transaction outside
// of an opening balance.
func (v *validator) validateTransaction(txn *ast.Transaction, fc FileContext) []error {
	var errs []error

	if err := v.validateFirstPosting(txn, fc); err != nil {
		errs = append(errs, err)
	}

	switch Classify(txn, fc.Party, v.config) {
	case CategoryTransfer:
		errs = append(errs, v.validateTransfer(txn, fc)...)
	case CategoryOwed:
		errs = append(errs, v.validateOwed(txn, fc)...)
	default:
		errs = append(errs, v.validateDefault(txn, fc)...)
	}

	if IsReceipt(txn) {
		errs = append(errs, v.validateReceipt(txn)...)
	}
	if IsPayslip(txn) {
		errs = append(errs, v.validatePayslip(txn, fc)...)
	}

	return errs
}

func (v *validator) validateFirstPosting(txn *ast.Transaction, fc FileContext) error {
	if len(txn.Postings) > 0 && txn.Postings[0].Account == fc.Account {
		return nil
	}
	return newError(KindFirstPostingMismatch, txn, "The first posting should be to the account: %s", fc.Account)
}
