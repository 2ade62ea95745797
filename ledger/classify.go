package ledger

import "github.com/robinvdvleuten/beancount-household/ast"

// Category is the single validation category of a transaction.
type Category int

const (
	CategoryDefault Category = iota
	CategoryOpeningBalance
	CategoryTransfer
	CategoryOwed
)

func (c Category) String() string {
	switch c {
	case CategoryOpeningBalance:
		return "opening-balance"
	case CategoryTransfer:
		return "transfer"
	case CategoryOwed:
		return "owed"
	default:
		return "default"
	}
}

// Classify decides the category of a transaction in the journal of party. The
// first matching rule wins:
//
//  1. opening balance: tagged with the opening balance tag
//  2. transfer: a tag starting with "transfer" or a posting to a Transfers account
//  3. owed: a tag starting with "owed" or a posting to another party's account
//  4. default
func Classify(txn *ast.Transaction, party string, cfg *Config) Category {
	switch {
	case txn.HasTag(ast.Tag(cfg.OpeningBalanceTag)):
		return CategoryOpeningBalance
	case txn.HasTagPrefix(transferTagPrefix) || TransactionHasComponent(txn, "Transfers"):
		return CategoryTransfer
	case txn.HasTagPrefix(owedTagPrefix) || postsToAnotherParty(txn, party):
		return CategoryOwed
	default:
		return CategoryDefault
	}
}

// IsReceipt reports whether the receipt checks apply to the transaction. They
// apply on top of whatever category the transaction has.
func IsReceipt(txn *ast.Transaction) bool {
	return txn.HasTag("receipt") || txn.HasTag("valuables") || txn.AnyPostingHasMeta(metaReceipt)
}

// IsPayslip reports whether the payslip checks apply to the transaction.
func IsPayslip(txn *ast.Transaction) bool {
	return txn.HasTag("payslip") || txn.HasMeta(metaPayslip) || txn.AnyPostingHasMeta(metaPayslip)
}

func postsToAnotherParty(txn *ast.Transaction, party string) bool {
	for _, posting := range txn.Postings {
		if AccountParty(posting.Account) != party {
			return true
		}
	}
	return false
}
