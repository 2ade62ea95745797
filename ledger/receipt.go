package ledger

import "github.com/robinvdvleuten/beancount-household/ast"

// validateReceipt checks a purchase of valuables. Receipts are attached to the
// expense postings they prove.
func (v *validator) validateReceipt(txn *ast.Transaction) []error {
	var errs []error

	if !txn.HasTag("valuables") {
		errs = append(errs, newError(KindInvalidReceipt, txn, "Missing required tag of 'valuables'"))
	}
	if !txn.AnyPostingHasMeta(metaReceipt) {
		errs = append(errs, newError(KindInvalidReceipt, txn, "Missing required metadata of 'receipt'"))
	}

	for _, posting := range txn.Postings {
		if posting.HasMeta(metaReceipt) && AccountRoot(1, posting.Account) != "Expenses" {
			errs = append(errs, newPostingError(KindInvalidReceipt, txn, posting,
				"Transactions with receipt metadata must be to an expense account"))
		}
	}

	return errs
}
