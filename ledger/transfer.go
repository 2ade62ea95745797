package ledger

import (
	"strings"

	"github.com/robinvdvleuten/beancount-household/ast"
	"github.com/shopspring/decimal"
)

func (v *validator) validateTransfer(txn *ast.Transaction, fc FileContext) []error {
	// Classified by a Transfers account alone.
	if !txn.HasTagPrefix(transferTagPrefix) {
		return []error{missingTransferTags(txn)}
	}

	if len(txn.Tags) != 1 {
		return []error{newError(KindInvalidTransfer, txn, "Transfer transaction must have exactly one tag")}
	}

	tag := txn.Tags[0]
	rule, ok := v.conventions.Transfer(fc.Party, tag)
	if !ok {
		return []error{newError(KindInvalidTransfer, txn, "Invalid transfer tag: %s", tag)}
	}

	var errs []error

	if txn.Payee != rule.Payee {
		errs = append(errs, newError(KindInvalidTransfer, txn, "Payee must be %s", rule.Payee))
	}
	if !strings.HasPrefix(txn.Narration, rule.NarrationPrefix) {
		errs = append(errs, newError(KindInvalidTransfer, txn, "Narration must start with %s", rule.NarrationPrefix))
	}
	if len(txn.Postings) != 2 {
		errs = append(errs, newError(KindInvalidTransfer, txn, "Transfer transaction must have exactly two postings"))
	}

	switch {
	case len(txn.Postings) < 2:
		errs = append(errs, newError(KindInvalidTransfer, txn, "Second posting must be to: %s", rule.Account))
	case txn.Postings[1].Account != rule.Account:
		errs = append(errs, newPostingError(KindInvalidTransfer, txn, txn.Postings[1], "Second posting must be to: %s", rule.Account))
	}

	if len(txn.Postings) > 0 {
		if err := checkTransferSign(txn, txn.Postings[0], rule.Direction); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// checkTransferSign checks the sign of the owner's posting: money comes in on a
// transfer from and goes out on a transfer to. Inferred or unparseable amounts
// are not checked.
func checkTransferSign(txn *ast.Transaction, posting *ast.Posting, direction Direction) error {
	if posting.Amount == nil {
		return nil
	}
	value, err := decimal.NewFromString(posting.Amount.Value)
	if err != nil {
		return nil
	}

	switch {
	case direction == DirectionFrom && value.IsNegative():
		return newPostingError(KindInvalidTransfer, txn, posting, "First posting amount must be positive for transfer from")
	case direction == DirectionTo && value.IsPositive():
		return newPostingError(KindInvalidTransfer, txn, posting, "First posting amount must be negative for transfer to")
	}
	return nil
}

func missingTransferTags(txn *ast.Transaction) error {
	return newError(KindInvalidTransfer, txn, "Missing required tags for a transaction to a transfer account")
}
