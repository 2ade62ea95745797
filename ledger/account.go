package ledger

import (
	"strings"

	"github.com/robinvdvleuten/beancount-household/ast"
)

const accountSeparator = ":"

// SplitAccount splits an account path into its components.
func SplitAccount(account ast.Account) ([]string, error) {
	if account == "" {
		return nil, &MalformedAccountError{Account: account}
	}
	return strings.Split(string(account), accountSeparator), nil
}

// AccountRoot returns the first n components of the account rejoined, e.g.
// AccountRoot(2, "Expenses:Leyna:Souvenirs") is "Expenses:Leyna".
func AccountRoot(n int, account ast.Account) string {
	parts, err := SplitAccount(account)
	if err != nil {
		return ""
	}
	if n < len(parts) {
		parts = parts[:n]
	}
	return strings.Join(parts, accountSeparator)
}

// HasComponent reports whether any component of the account equals name.
func HasComponent(account ast.Account, name string) bool {
	parts, err := SplitAccount(account)
	if err != nil {
		return false
	}
	for _, part := range parts {
		if part == name {
			return true
		}
	}
	return false
}

// AccountParty returns the party that owns the account, which is its second
// component. Accounts without a second component belong to nobody.
func AccountParty(account ast.Account) string {
	parts, err := SplitAccount(account)
	if err != nil || len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// HasAccountPrefix reports whether the account equals prefix or lives below it.
// Matching happens on component boundaries, so "Expenses:Leyna" matches
// "Expenses:Leyna:Souvenirs" but not "Expenses:Leynas".
func HasAccountPrefix(account ast.Account, prefix string) bool {
	s := string(account)
	if s == prefix {
		return true
	}
	return strings.HasPrefix(s, prefix+accountSeparator)
}

// TransactionHasComponent reports whether any posting of the transaction is to
// an account containing the component name.
func TransactionHasComponent(txn *ast.Transaction, name string) bool {
	for _, posting := range txn.Postings {
		if HasComponent(posting.Account, name) {
			return true
		}
	}
	return false
}

func hasPostingWithPrefix(txn *ast.Transaction, prefixes []string) bool {
	for _, posting := range txn.Postings {
		if hasAnyPrefix(posting.Account, prefixes) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(account ast.Account, prefixes []string) bool {
	for _, prefix := range prefixes {
		if HasAccountPrefix(account, prefix) {
			return true
		}
	}
	return false
}
