package ast

import "strings"

// Transaction records a financial transaction with a date, flag, optional payee,
// narration, and a list of postings. Tags carry the household category of the
// transaction and links connect related entries.
//
// Example:
//
//	2024-01-05 * "Self" "Transfer to self: Savings" #transfer-to-self
//	  Assets:Francis:Bank                -100.00 GBP
//	  Assets:Francis:Transfers:Self       100.00 GBP
type Transaction struct {
	Pos       Position
	Date      *Date
	Flag      string
	Payee     string
	Narration string
	Links     []Link
	Tags      []Tag

	withMetadata

	Postings []*Posting
}

var _ Directive = &Transaction{}

func (t *Transaction) Position() Position { return t.Pos }
func (t *Transaction) GetDate() *Date     { return t.Date }
func (t *Transaction) Directive() string  { return "transaction" }

// HasTag reports whether the transaction carries the given tag.
func (t *Transaction) HasTag(tag Tag) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// HasTagPrefix reports whether any tag of the transaction starts with prefix.
func (t *Transaction) HasTagPrefix(prefix string) bool {
	for _, tag := range t.Tags {
		if strings.HasPrefix(string(tag), prefix) {
			return true
		}
	}
	return false
}

// AnyPostingHasMeta reports whether any posting carries metadata with the given key.
func (t *Transaction) AnyPostingHasMeta(key string) bool {
	for _, posting := range t.Postings {
		if posting.HasMeta(key) {
			return true
		}
	}
	return false
}

// Posting represents a single leg of a transaction: an account and an optional
// amount. One posting per transaction may omit its amount, in which case the
// parser leaves Amount nil.
//
// Example postings within transactions:
//
//	Assets:Francis:Bank          -45.60 GBP
//	Expenses:Francis:Groceries              ; Inferred amount
type Posting struct {
	Pos     Position
	Flag    string
	Account Account
	Amount  *Amount

	withMetadata
}
