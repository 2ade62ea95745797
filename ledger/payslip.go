package ledger

import (
	"fmt"

	"github.com/robinvdvleuten/beancount-household/ast"
)

func salaryAccount(party string) ast.Account {
	return ast.Account(fmt.Sprintf("Income:%s:GrossPay:Salary", party))
}

func (v *validator) validatePayslip(txn *ast.Transaction, fc FileContext) []error {
	var errs []error

	if !txn.HasTag("payslip") {
		errs = append(errs, newError(KindInvalidPayslip, txn, "Missing required tag of 'payslip'"))
	}
	if !txn.HasMeta(metaPayslip) {
		errs = append(errs, newError(KindInvalidPayslip, txn, "Missing required metadata of 'payslip'"))
	}

	salary := salaryAccount(fc.Party)
	if len(txn.Postings) < 2 || txn.Postings[1].Account != salary {
		errs = append(errs, newError(KindInvalidPayslip, txn, "The second posting should be to the account: %s", salary))
	}

	return errs
}
