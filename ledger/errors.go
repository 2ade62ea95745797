package ledger

import (
	"fmt"

	"github.com/robinvdvleuten/beancount-household/ast"
)

// ErrorKind classifies a household validation error.
type ErrorKind int

const (
	KindMissingContext ErrorKind = iota + 1
	KindFirstPostingMismatch
	KindPostingToAnotherParty
	KindInvalidOpeningBalance
	KindInvalidTransfer
	KindInvalidOwed
	KindInvalidReceipt
	KindInvalidPayslip
	KindInvalidBalanceAssertion
	KindFileNotFound
	KindContextRedefined
)

var errorKindNames = map[ErrorKind]string{
	KindMissingContext:          "MissingContext",
	KindFirstPostingMismatch:    "FirstPostingMismatch",
	KindPostingToAnotherParty:   "PostingToAnotherParty",
	KindInvalidOpeningBalance:   "InvalidOpeningBalance",
	KindInvalidTransfer:         "InvalidTransfer",
	KindInvalidOwed:             "InvalidOwed",
	KindInvalidReceipt:          "InvalidReceipt",
	KindInvalidPayslip:          "InvalidPayslip",
	KindInvalidBalanceAssertion: "InvalidBalanceAssertion",
	KindFileNotFound:            "FileNotFound",
	KindContextRedefined:        "ContextRedefined",
}

// String returns the name of the kind, e.g. "InvalidTransfer".
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a single convention violation found while validating an entry.
// Posting is set when the violation concerns one leg of a transaction.
type Error struct {
	Kind      ErrorKind
	Pos       ast.Position
	Date      *ast.Date
	Message   string
	Directive ast.Directive
	Posting   *ast.Posting
}

// Error returns a bean-check style error message with filename:line prefix.
func (e *Error) Error() string {
	location := fmt.Sprintf("%s:%d", e.Pos.Filename, e.Pos.Line)
	if e.Pos.Filename == "" {
		location = e.Date.String()
	}

	return fmt.Sprintf("%s: %s", location, e.Message)
}

func (e *Error) GetPosition() ast.Position {
	return e.Pos
}

func (e *Error) GetDirective() ast.Directive {
	return e.Directive
}

func (e *Error) GetKind() ErrorKind {
	return e.Kind
}

func newError(kind ErrorKind, directive ast.Directive, format string, args ...any) *Error {
	return &Error{
		Kind:      kind,
		Pos:       directive.Position(),
		Date:      directive.GetDate(),
		Message:   fmt.Sprintf(format, args...),
		Directive: directive,
	}
}

func newPostingError(kind ErrorKind, txn *ast.Transaction, posting *ast.Posting, format string, args ...any) *Error {
	err := newError(kind, txn, format, args...)
	err.Posting = posting
	if !posting.Pos.IsZero() {
		err.Pos = posting.Pos
	}
	return err
}

// MalformedAccountError is returned when an account path cannot be split into
// components.
type MalformedAccountError struct {
	Account ast.Account
}

func (e *MalformedAccountError) Error() string {
	return fmt.Sprintf("malformed account path %q", string(e.Account))
}
