package ledger

import "github.com/robinvdvleuten/beancount-household/ast"

// validateOpeningBalance checks the transaction that opens a journal: a single
// tag and two postings, the second to an Equity:...:OpeningBalances account.
func (v *validator) validateOpeningBalance(txn *ast.Transaction) []error {
	var errs []error

	if len(txn.Tags) != 1 {
		errs = append(errs, newError(KindInvalidOpeningBalance, txn,
			"Journal opening balance transaction must have exactly one tag"))
	}
	if len(txn.Postings) != 2 {
		errs = append(errs, newError(KindInvalidOpeningBalance, txn,
			"Journal opening balance transaction must have exactly two postings"))
	}

	var second ast.Account
	if len(txn.Postings) > 1 {
		second = txn.Postings[1].Account
	}
	if AccountRoot(1, second) != "Equity" {
		errs = append(errs, newError(KindInvalidOpeningBalance, txn,
			"Equity account must be the second posting"))
	}
	if !HasComponent(second, "OpeningBalances") {
		errs = append(errs, newError(KindInvalidOpeningBalance, txn,
			"Second posting account must have a component of OpeningBalances"))
	}

	return errs
}

// openingContext returns the file context an opening balance establishes.
func openingContext(txn *ast.Transaction) (FileContext, bool) {
	if len(txn.Postings) == 0 {
		return FileContext{}, false
	}
	account := txn.Postings[0].Account
	return FileContext{Account: account, Party: AccountParty(account)}, true
}
