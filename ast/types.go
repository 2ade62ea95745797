package ast

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Amount represents a numerical value with its associated currency or commodity symbol.
// The value is stored as a string to preserve the exact decimal representation from
// the input, avoiding floating-point precision issues.
type Amount struct {
	Value    string
	Currency string
}

// String returns the amount as "value currency".
func (a *Amount) String() string {
	if a == nil {
		return ""
	}
	return a.Value + " " + a.Currency
}

// Account represents a Beancount account name: colon-separated components where
// the first component is the account type (Assets, Liabilities, Equity, Income or
// Expenses). In a household ledger the second component names the party that
// owns the account.
//
// Example accounts:
//
//	Assets:Francis:Bank
//	Expenses:Leyna:Souvenirs
//	Income:Shared:GiftsReceived
//	Equity:Francis:OpeningBalances
type Account string

// accountSegmentRegex validates account segments (after first).
// Must start with uppercase letter or digit, can contain alphanumerics and hyphens.
var accountSegmentRegex = regexp.MustCompile(`^[A-Z0-9][A-Za-z0-9-]*$`)

func parseAccount(s string) (Account, error) {
	parts := strings.Split(s, ":")

	if len(parts) < 2 {
		return "", fmt.Errorf("account must have at least two segments: %s", s)
	}

	switch parts[0] {
	case "Assets", "Liabilities", "Equity", "Income", "Expenses":
	default:
		return "", fmt.Errorf(`unexpected account type "%s"`, parts[0])
	}

	for i := 1; i < len(parts); i++ {
		if !accountSegmentRegex.MatchString(parts[i]) {
			return "", fmt.Errorf("invalid account segment at position %d: %s", i, parts[i])
		}
	}

	return Account(s), nil
}

// Date represents a calendar date in ISO 8601 format (YYYY-MM-DD).
type Date struct {
	time.Time
}

// IsZero returns true if the Date is nil or represents the zero time.
func (d *Date) IsZero() bool {
	if d == nil {
		return true
	}
	return d.Time.IsZero()
}

// String formats the date as YYYY-MM-DD, or "" for a nil or zero date.
func (d *Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// Link represents a reference link starting with ^, stored without the prefix.
type Link string

// Tag represents a hashtag starting with #, stored without the prefix.
// Household conventions encode the transaction category in tags, e.g.
// #transfer-to-self, #owed-by-leyna or #journal-opening-balance.
type Tag string

// MetadataValue represents a typed metadata value. This is a discriminated union
// where exactly one of the pointer fields is non-nil.
//
// Example metadata with different value types:
//
//	statement: "statements/bank/2024-02-29.pdf" ; String
//	trip-start: 2024-01-15                      ; Date
//	linked-account: Assets:Francis:Bank         ; Account
//	quantity: 42                                ; Number
//	active: TRUE                                ; Boolean
type MetadataValue struct {
	StringValue *string
	Date        *Date
	Account     *Account
	Number      *string // Stored as string to preserve precision
	Boolean     *bool
}

// Type returns a string representation of the metadata value's type.
func (m *MetadataValue) Type() string {
	if m == nil {
		return "nil"
	}
	switch {
	case m.StringValue != nil:
		return "string"
	case m.Date != nil:
		return "date"
	case m.Account != nil:
		return "account"
	case m.Number != nil:
		return "number"
	case m.Boolean != nil:
		return "boolean"
	default:
		return "unknown"
	}
}

// String returns a string representation of the metadata value.
func (m *MetadataValue) String() string {
	if m == nil {
		return ""
	}
	switch {
	case m.StringValue != nil:
		return *m.StringValue
	case m.Date != nil:
		return m.Date.String()
	case m.Account != nil:
		return string(*m.Account)
	case m.Number != nil:
		return *m.Number
	case m.Boolean != nil:
		if *m.Boolean {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Metadata represents a key-value pair attached to an entry or a posting.
//
// Example:
//
//	2024-03-02 * "Jeweller" "Ring" #valuables
//	  Assets:Francis:Bank      -250.00 GBP
//	  Expenses:Francis:Jewellery
//	    receipt: "receipts/2024-03-02-ring.pdf"
type Metadata struct {
	Key   string
	Value *MetadataValue
}
