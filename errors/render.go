package errors

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/robinvdvleuten/beancount-household/ast"
)

const (
	// DefaultCurrencyColumn is the column amounts are right-aligned to.
	DefaultCurrencyColumn = 52

	// MinimumSpacing is the minimum number of spaces between an account and
	// its amount.
	MinimumSpacing = 2
)

// renderer prints the directive an error refers to, in ledger syntax.
type renderer struct {
	currencyColumn int
}

func (r *renderer) render(directive ast.Directive, buf *strings.Builder) {
	switch d := directive.(type) {
	case *ast.Transaction:
		r.renderTransaction(d, buf)
	case *ast.Balance:
		line := d.Date.String() + " balance " + string(d.Account)
		buf.WriteString(line)
		r.writeAmount(d.Amount, line, buf)
		buf.WriteByte('\n')
		r.renderMetadata(d.Metadata, "  ", buf)
	case *ast.Custom:
		buf.WriteString(d.Date.String())
		buf.WriteString(" custom ")
		buf.WriteString(quote(d.Type))
		for _, v := range d.Values {
			buf.WriteByte(' ')
			switch {
			case v.String != nil:
				buf.WriteString(quote(*v.String))
			case v.Account != nil:
				buf.WriteString(string(*v.Account))
			case v.Amount != nil:
				buf.WriteString(v.Amount.String())
			case v.Number != nil:
				buf.WriteString(*v.Number)
			case v.Boolean != nil && *v.Boolean:
				buf.WriteString("TRUE")
			case v.Boolean != nil:
				buf.WriteString("FALSE")
			}
		}
		buf.WriteByte('\n')
	case *ast.Open:
		buf.WriteString(d.Date.String())
		buf.WriteString(" open ")
		buf.WriteString(string(d.Account))
		if len(d.ConstraintCurrencies) > 0 {
			buf.WriteByte(' ')
			buf.WriteString(strings.Join(d.ConstraintCurrencies, ","))
		}
		buf.WriteByte('\n')
	case *ast.Document:
		buf.WriteString(d.Date.String())
		buf.WriteString(" document ")
		buf.WriteString(string(d.Account))
		buf.WriteByte(' ')
		buf.WriteString(quote(d.PathToDocument))
		for _, tag := range d.Tags {
			buf.WriteString(" #")
			buf.WriteString(string(tag))
		}
		buf.WriteByte('\n')
	}
}

// renderTransaction prints date, flag, payee, narration, links and tags on the
// first line, followed by metadata and the postings with aligned amounts.
func (r *renderer) renderTransaction(t *ast.Transaction, buf *strings.Builder) {
	buf.WriteString(t.Date.String())
	buf.WriteByte(' ')
	buf.WriteString(t.Flag)
	if t.Payee != "" {
		buf.WriteByte(' ')
		buf.WriteString(quote(t.Payee))
	}
	if t.Narration != "" || t.Payee != "" {
		buf.WriteByte(' ')
		buf.WriteString(quote(t.Narration))
	}
	for _, link := range t.Links {
		buf.WriteString(" ^")
		buf.WriteString(string(link))
	}
	for _, tag := range t.Tags {
		buf.WriteString(" #")
		buf.WriteString(string(tag))
	}
	buf.WriteByte('\n')

	r.renderMetadata(t.Metadata, "  ", buf)

	for _, p := range t.Postings {
		line := "  "
		if p.Flag != "" {
			line += p.Flag + " "
		}
		line += string(p.Account)
		buf.WriteString(line)
		r.writeAmount(p.Amount, line, buf)
		buf.WriteByte('\n')
		r.renderMetadata(p.Metadata, "    ", buf)
	}
}

// writeAmount pads line so the amount's currency starts just after the
// currency column. Widths are measured in terminal cells.
func (r *renderer) writeAmount(amount *ast.Amount, line string, buf *strings.Builder) {
	if amount == nil {
		return
	}

	padding := r.currencyColumn - runewidth.StringWidth(line) - runewidth.StringWidth(amount.Value)
	if padding < MinimumSpacing {
		padding = MinimumSpacing
	}
	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(amount.Value)
	buf.WriteByte(' ')
	buf.WriteString(amount.Currency)
}

func (r *renderer) renderMetadata(metadata []*ast.Metadata, indent string, buf *strings.Builder) {
	for _, m := range metadata {
		buf.WriteString(indent)
		buf.WriteString(m.Key)
		buf.WriteString(": ")
		if m.Value != nil && m.Value.StringValue != nil {
			buf.WriteString(quote(*m.Value.StringValue))
		} else {
			buf.WriteString(m.Value.String())
		}
		buf.WriteByte('\n')
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
