package ast

import (
	"strings"
	"time"
)

// NewAmount creates a new Amount with the given value and currency.
// The value should be a decimal string (e.g., "100.50", "-42.00").
// No validation is performed on the value or currency.
func NewAmount(value, currency string) *Amount {
	return &Amount{
		Value:    value,
		Currency: currency,
	}
}

// NewDate parses a date string in YYYY-MM-DD format and returns a Date.
//
// Example:
//
//	date, err := ast.NewDate("2024-01-15")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDate(s string) (*Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &Date{Time: t}, nil
}

// NewDateFromTime creates a Date from a time.Time value, truncated to the day.
func NewDateFromTime(t time.Time) *Date {
	return &Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NewAccount creates an Account from the given name string and validates it.
// The account name must follow Beancount account naming rules:
//   - At least two colon-separated segments
//   - First segment must be Assets, Liabilities, Equity, Income, or Expenses
//   - Subsequent segments must start with uppercase letter or digit
func NewAccount(name string) (Account, error) {
	return parseAccount(name)
}

// NewTag creates a Tag from the given name. A leading # is stripped.
func NewTag(name string) Tag {
	return Tag(strings.TrimPrefix(name, "#"))
}

// NewLink creates a Link from the given name. A leading ^ is stripped.
func NewLink(name string) Link {
	return Link(strings.TrimPrefix(name, "^"))
}

// NewMetadata creates a Metadata key-value pair with a string value.
//
// Example:
//
//	meta := ast.NewMetadata("receipt", "receipts/2024-03-02-ring.pdf")
func NewMetadata(key, value string) *Metadata {
	return &Metadata{
		Key: key,
		Value: &MetadataValue{
			StringValue: &value,
		},
	}
}

// TransactionOption is a functional option for configuring a Transaction.
type TransactionOption func(*Transaction)

// NewTransaction creates a new Transaction with the given date and narration.
// Additional fields can be set using functional options.
//
// Example:
//
//	txn := ast.NewTransaction(date, "Transfer to self: Savings",
//	    ast.WithPayee("Self"),
//	    ast.WithTags("transfer-to-self"),
//	    ast.WithPostings(
//	        ast.NewPosting("Assets:Francis:Bank", ast.WithAmount("-100", "GBP")),
//	        ast.NewPosting("Assets:Francis:Transfers:Self", ast.WithAmount("100", "GBP")),
//	    ),
//	)
func NewTransaction(date *Date, narration string, opts ...TransactionOption) *Transaction {
	txn := &Transaction{
		Date:      date,
		Flag:      "*",
		Narration: narration,
	}

	for _, opt := range opts {
		opt(txn)
	}

	return txn
}

// WithFlag sets the transaction flag.
func WithFlag(flag string) TransactionOption {
	return func(t *Transaction) {
		t.Flag = flag
	}
}

// WithPayee sets the transaction payee.
func WithPayee(payee string) TransactionOption {
	return func(t *Transaction) {
		t.Payee = payee
	}
}

// WithTags adds tags to the transaction, ignoring duplicates.
func WithTags(tags ...string) TransactionOption {
	return func(t *Transaction) {
		for _, name := range tags {
			tag := NewTag(name)
			if !t.HasTag(tag) {
				t.Tags = append(t.Tags, tag)
			}
		}
	}
}

// WithLinks adds links to the transaction.
func WithLinks(links ...string) TransactionOption {
	return func(t *Transaction) {
		for _, link := range links {
			t.Links = append(t.Links, NewLink(link))
		}
	}
}

// WithTransactionMetadata adds metadata entries to the transaction.
func WithTransactionMetadata(metadata ...*Metadata) TransactionOption {
	return func(t *Transaction) {
		t.AddMetadata(metadata...)
	}
}

// WithPostings sets the postings for the transaction.
func WithPostings(postings ...*Posting) TransactionOption {
	return func(t *Transaction) {
		t.Postings = postings
	}
}

// WithPosition sets the source location of the transaction. Postings without a
// position of their own are placed on the lines that follow it.
func WithPosition(filename string, line int) TransactionOption {
	return func(t *Transaction) {
		t.Pos = Position{Filename: filename, Line: line, Column: 1}
		for i, p := range t.Postings {
			if p.Pos.IsZero() {
				p.Pos = Position{Filename: filename, Line: line + i + 1, Column: 3}
			}
		}
	}
}

// PostingOption is a functional option for configuring a Posting.
type PostingOption func(*Posting)

// NewPosting creates a new Posting for the given account.
func NewPosting(account Account, opts ...PostingOption) *Posting {
	posting := &Posting{
		Account: account,
	}

	for _, opt := range opts {
		opt(posting)
	}

	return posting
}

// WithAmount sets the amount for a posting.
func WithAmount(value, currency string) PostingOption {
	return func(p *Posting) {
		p.Amount = NewAmount(value, currency)
	}
}

// WithPostingFlag sets the flag for a posting.
func WithPostingFlag(flag string) PostingOption {
	return func(p *Posting) {
		p.Flag = flag
	}
}

// WithPostingMetadata adds metadata entries to the posting.
func WithPostingMetadata(metadata ...*Metadata) PostingOption {
	return func(p *Posting) {
		p.AddMetadata(metadata...)
	}
}

// NewOpen creates an Open directive for an account.
func NewOpen(date *Date, account Account, constraintCurrencies []string) *Open {
	return &Open{
		Date:                 date,
		Account:              account,
		ConstraintCurrencies: constraintCurrencies,
	}
}

// NewBalance creates a Balance assertion directive.
//
// Example:
//
//	balance := ast.NewBalance(date, "Assets:Francis:Bank", ast.NewAmount("1250.00", "GBP"))
//	balance.AddMetadata(ast.NewMetadata("statement", "statements/2024-02-29.pdf"))
func NewBalance(date *Date, account Account, amount *Amount) *Balance {
	return &Balance{
		Date:    date,
		Account: account,
		Amount:  amount,
	}
}

// NewDocument creates a Document directive linking a file to an account.
func NewDocument(date *Date, account Account, pathToDocument string, tags ...string) *Document {
	doc := &Document{
		Date:           date,
		Account:        account,
		PathToDocument: pathToDocument,
	}
	for _, tag := range tags {
		doc.Tags = append(doc.Tags, NewTag(tag))
	}
	return doc
}

// NewCustom creates a Custom directive with string values.
//
// Example:
//
//	custom := ast.NewCustom(date, "initialise_journal_file", "Francis", "Assets:Francis:Bank")
func NewCustom(date *Date, typeName string, values ...string) *Custom {
	custom := &Custom{
		Date: date,
		Type: typeName,
	}
	for _, v := range values {
		v := v
		custom.Values = append(custom.Values, &CustomValue{String: &v})
	}
	return custom
}
