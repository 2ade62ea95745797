package ast

// Open declares the opening of an account at a specific date. The household
// rules do not inspect Open directives; they pass through untouched.
//
// Example:
//
//	2000-01-01 open Assets:Francis:Bank GBP
type Open struct {
	Pos                  Position
	Date                 *Date
	Account              Account
	ConstraintCurrencies []string

	withMetadata
}

var _ Directive = &Open{}

func (o *Open) Position() Position { return o.Pos }
func (o *Open) GetDate() *Date     { return o.Date }
func (o *Open) Directive() string  { return "open" }

// Balance asserts that an account has a specific balance at the beginning of a
// given date. Household ledgers require every assertion to reference the bank
// statement it was copied from through "statement" metadata.
//
// Example:
//
//	2024-01-31 balance Assets:Francis:Bank 562.00 GBP
//	  statement: "statements/bank/2024-02-29.pdf"
type Balance struct {
	Pos     Position
	Date    *Date
	Account Account
	Amount  *Amount

	withMetadata
}

var _ Directive = &Balance{}

func (b *Balance) Position() Position { return b.Pos }
func (b *Balance) GetDate() *Date     { return b.Date }
func (b *Balance) Directive() string  { return "balance" }

// Document associates an external file (such as a receipt, payslip or bank
// statement) with an account at a specific date. The validator synthesizes
// Document entries for every supporting file referenced through metadata.
//
// Example:
//
//	2024-01-31 document Assets:Francis:Bank "/ledger/statements/bank/2024-02-29.pdf" #statement
type Document struct {
	Pos            Position
	Date           *Date
	Account        Account
	PathToDocument string
	Tags           []Tag
	Links          []Link

	withMetadata
}

var _ Directive = &Document{}

func (d *Document) Position() Position { return d.Pos }
func (d *Document) GetDate() *Date     { return d.Date }
func (d *Document) Directive() string  { return "document" }

// Custom is a prototype directive with arbitrary typed values after the type
// name. Household ledgers use it to declare the owner of a journal file.
//
// Example:
//
//	2000-01-01 custom "initialise_journal_file" "Francis" "Assets:Francis:Bank"
//	2000-01-01 custom "journal account name" "Assets:Francis:Bank"
type Custom struct {
	Pos    Position
	Date   *Date
	Type   string
	Values []*CustomValue

	withMetadata
}

var _ Directive = &Custom{}

func (c *Custom) Position() Position { return c.Pos }
func (c *Custom) GetDate() *Date     { return c.Date }
func (c *Custom) Directive() string  { return "custom" }

// StringValues returns the string and account values of the directive in order,
// skipping values of other types.
func (c *Custom) StringValues() []string {
	values := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		switch {
		case v.String != nil:
			values = append(values, *v.String)
		case v.Account != nil:
			values = append(values, string(*v.Account))
		}
	}
	return values
}

// CustomValue represents a single value in a custom directive. Only one field
// will be non-nil for each value.
type CustomValue struct {
	String  *string
	Account *Account
	Amount  *Amount
	Number  *string
	Boolean *bool
}

// GetValue returns the actual value stored in this CustomValue.
func (cv *CustomValue) GetValue() any {
	switch {
	case cv.String != nil:
		return *cv.String
	case cv.Account != nil:
		return *cv.Account
	case cv.Amount != nil:
		return cv.Amount
	case cv.Number != nil:
		return *cv.Number
	case cv.Boolean != nil:
		return *cv.Boolean
	default:
		return nil
	}
}
