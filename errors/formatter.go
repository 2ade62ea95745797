// Package errors provides error formatting infrastructure for household validation errors.
// It separates error formatting from domain logic, allowing errors to be rendered in
// multiple formats (text, JSON) for different consumers (CLI, editors, CI annotations).
//
// The package defines a Formatter interface and provides two implementations:
//   - TextFormatter: Formats errors for command-line output in bean-check style
//   - JSONFormatter: Formats errors as structured JSON
//
// Domain-specific error types remain in the ledger package, while this package
// handles the presentation layer.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/robinvdvleuten/beancount-household/ast"
	"github.com/robinvdvleuten/beancount-household/ledger"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// TextFormatter formats errors for command-line output in bean-check style:
// the error message followed by the offending directive.
type TextFormatter struct {
	renderer renderer
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithCurrencyColumn sets the column amounts are aligned to when directives are
// printed.
func WithCurrencyColumn(col int) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.renderer.currencyColumn = col
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{renderer: renderer{currencyColumn: DefaultCurrencyColumn}}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error in bean-check style. A *ledger.ValidationErrors
// is expanded into its errors.
func (tf *TextFormatter) Format(err error) string {
	var verr *ledger.ValidationErrors
	if stderrors.As(err, &verr) {
		return tf.FormatAll(verr.Errors)
	}

	if e, ok := err.(interface {
		GetDirective() ast.Directive
		Error() string
	}); ok && e.GetDirective() != nil {
		return tf.formatWithContext(e.Error(), e.GetDirective())
	}

	return err.Error()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, strings.TrimRight(tf.Format(err), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func (tf *TextFormatter) formatWithContext(message string, directive ast.Directive) string {
	var rendered strings.Builder
	tf.renderer.render(directive, &rendered)

	var buf strings.Builder
	buf.WriteString(message)
	buf.WriteString("\n\n")
	for _, line := range strings.Split(rendered.String(), "\n") {
		if line == "" {
			continue
		}
		buf.WriteString("   ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	Position *PositionJSON  `json:"position,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Details: make(map[string]any),
	}

	if e, ok := err.(interface{ GetPosition() ast.Position }); ok {
		if pos := e.GetPosition(); !pos.IsZero() {
			errJSON.Position = &PositionJSON{
				Filename: pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
			}
		}
	}

	var kinded interface{ GetKind() ledger.ErrorKind }
	if stderrors.As(err, &kinded) {
		errJSON.Type = kinded.GetKind().String()
	}

	var lerr *ledger.Error
	if stderrors.As(err, &lerr) {
		errJSON.Message = lerr.Message
		if lerr.Date != nil {
			errJSON.Details["date"] = lerr.Date.String()
		}
		if lerr.Directive != nil {
			errJSON.Details["directive"] = lerr.Directive.Directive()
		}
		if lerr.Posting != nil {
			errJSON.Details["account"] = string(lerr.Posting.Account)
		}
	}

	if len(errJSON.Details) == 0 {
		errJSON.Details = nil
	}
	return errJSON
}
