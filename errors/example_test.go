package errors_test

import (
	"fmt"

	"github.com/robinvdvleuten/beancount-household/ast"
	"github.com/robinvdvleuten/beancount-household/errors"
	"github.com/robinvdvleuten/beancount-household/ledger"
)

// Example showing how to use TextFormatter for CLI output
func ExampleTextFormatter() {
	date, _ := ast.NewDate("2024-01-31")
	balance := ast.NewBalance(date, "Assets:Francis:Bank", ast.NewAmount("562.00", "GBP"))
	balance.Pos = ast.Position{Filename: "journals/francis.beancount", Line: 7}
	balance.AddMetadata(ast.NewMetadata("statement", "statements/2024-03-01.pdf"))

	err := &ledger.Error{
		Kind:      ledger.KindInvalidBalanceAssertion,
		Pos:       balance.Pos,
		Date:      balance.Date,
		Message:   "Statement file must be date one month from the balance assertion date (2024-02-28.pdf), or a closing statement (_closing-statement.pdf)",
		Directive: balance,
	}

	fmt.Print(errors.NewTextFormatter().Format(err))
	// Output:
	// journals/francis.beancount:7: Statement file must be date one month from the balance assertion date (2024-02-28.pdf), or a closing statement (_closing-statement.pdf)
	//
	//    2024-01-31 balance Assets:Francis:Bank        562.00 GBP
	//      statement: "statements/2024-03-01.pdf"
}

// Example showing how to use JSONFormatter for editor or CI integrations
func ExampleJSONFormatter() {
	date, _ := ast.NewDate("2024-02-10")
	txn := ast.NewTransaction(date, "Groceries",
		ast.WithPostings(ast.NewPosting("Assets:Leyna:Bank")),
		ast.WithPosition("journals/leyna.beancount", 3),
	)

	err := &ledger.Error{
		Kind:      ledger.KindFirstPostingMismatch,
		Pos:       txn.Pos,
		Date:      txn.Date,
		Message:   "The first posting should be to the account: Assets:Leyna:Current",
		Directive: txn,
	}

	fmt.Println(errors.NewJSONFormatter().Format(err))
	// Output:
	// {"type":"FirstPostingMismatch","message":"The first posting should be to the account: Assets:Leyna:Current","position":{"filename":"journals/leyna.beancount","line":3,"column":1},"details":{"date":"2024-02-10","directive":"transaction"}}
}
