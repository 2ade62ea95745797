package ledger

import (
	"strings"

	"github.com/robinvdvleuten/beancount-household/ast"
)

// validateOwed checks a transaction paid by the journal owner on behalf of
// another party. Each owed tag names that party and unlocks its accounts for
// the postings after the first.
func (v *validator) validateOwed(txn *ast.Transaction, fc FileContext) []error {
	var (
		errs    []error
		allowed []string
	)

	for _, tag := range txn.Tags {
		if !strings.HasPrefix(string(tag), owedTagPrefix) {
			continue
		}

		rule, ok := v.conventions.Owed(tag)
		if !ok {
			return []error{newError(KindInvalidOwed, txn, "Invalid owed tag: %s", tag)}
		}
		if rule.Party == fc.Party {
			return []error{newError(KindInvalidOwed, txn, "Owed tag must be for another party")}
		}

		if !hasPostingWithPrefix(txn, rule.Prefixes) {
			errs = append(errs, newError(KindInvalidOwed, txn,
				"Expected at least one posting to an account starting with: %s", strings.Join(rule.Prefixes, ", ")))
		}
		allowed = append(allowed, rule.Prefixes...)
	}

	for _, posting := range ownerlessPostings(txn, fc.Party) {
		if hasAnyPrefix(posting.Account, allowed) {
			continue
		}
		errs = append(errs, postingToAnotherParty(txn, posting, fc.Party, allowed))
	}

	return errs
}

// validateDefault checks a transaction that stays within the journal owner's
// accounts.
func (v *validator) validateDefault(txn *ast.Transaction, fc FileContext) []error {
	var errs []error
	for _, posting := range ownerlessPostings(txn, fc.Party) {
		errs = append(errs, postingToAnotherParty(txn, posting, fc.Party, nil))
	}
	return errs
}

// ownerlessPostings returns the postings after the first whose account does not
// belong to party.
func ownerlessPostings(txn *ast.Transaction, party string) []*ast.Posting {
	var postings []*ast.Posting
	for i, posting := range txn.Postings {
		if i == 0 || AccountParty(posting.Account) == party {
			continue
		}
		postings = append(postings, posting)
	}
	return postings
}

func postingToAnotherParty(txn *ast.Transaction, posting *ast.Posting, party string, allowed []string) error {
	if len(allowed) == 0 {
		return newPostingError(KindPostingToAnotherParty, txn, posting,
			"Posting to an account that does not belong to the party: %s. If this was intentional, please use the appropriate tags", party)
	}
	return newPostingError(KindPostingToAnotherParty, txn, posting,
		"Posting to an account that does not belong to the party: %s, or to any of the owed parties' allowed accounts: %s. If this was intentional, please use the appropriate tags",
		party, strings.Join(allowed, ", "))
}
