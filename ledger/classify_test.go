package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/beancount-household/ast"
)

func TestClassify(t *testing.T) {
	cfg := NewConfig()

	postings := func(accounts ...ast.Account) ast.TransactionOption {
		var ps []*ast.Posting
		for _, account := range accounts {
			ps = append(ps, ast.NewPosting(account))
		}
		return ast.WithPostings(ps...)
	}

	tests := []struct {
		name     string
		txn      *ast.Transaction
		expected Category
	}{
		{
			name: "opening balance wins over everything",
			txn: ast.NewTransaction(nil, "",
				ast.WithTags("journal-opening-balance", "transfer-to-self"),
				postings("Assets:Francis:Bank", "Equity:Francis:OpeningBalances"),
			),
			expected: CategoryOpeningBalance,
		},
		{
			name:     "transfer tag",
			txn:      ast.NewTransaction(nil, "", ast.WithTags("transfer-tag"), postings("Assets:Francis:Bank")),
			expected: CategoryTransfer,
		},
		{
			name:     "transfers account",
			txn:      ast.NewTransaction(nil, "", postings("Assets:Francis:Bank", "Assets:Francis:Transfers:Self")),
			expected: CategoryTransfer,
		},
		{
			name: "transfer before owed",
			txn: ast.NewTransaction(nil, "",
				ast.WithTags("owed-by-leyna"),
				postings("Assets:Francis:Bank", "Assets:Leyna:Transfers:FromFrancis"),
			),
			expected: CategoryTransfer,
		},
		{
			name:     "owed tag",
			txn:      ast.NewTransaction(nil, "", ast.WithTags("owed-by-leyna"), postings("Assets:Francis:Bank", "Expenses:Francis:Food")),
			expected: CategoryOwed,
		},
		{
			name:     "posting to another party",
			txn:      ast.NewTransaction(nil, "", postings("Assets:Francis:Bank", "Expenses:Shared:Food")),
			expected: CategoryOwed,
		},
		{
			name:     "default",
			txn:      ast.NewTransaction(nil, "", ast.WithTags("holiday"), postings("Assets:Francis:Bank", "Expenses:Francis:Food")),
			expected: CategoryDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.txn, "Francis", cfg))
		})
	}
}

func TestAddOns(t *testing.T) {
	receiptMeta := ast.WithPostingMetadata(ast.NewMetadata("receipt", "r.pdf"))
	payslipMeta := ast.NewMetadata("payslip", "p.pdf")

	assert.True(t, IsReceipt(ast.NewTransaction(nil, "", ast.WithTags("receipt"))))
	assert.True(t, IsReceipt(ast.NewTransaction(nil, "", ast.WithTags("valuables"))))
	assert.True(t, IsReceipt(ast.NewTransaction(nil, "", ast.WithPostings(ast.NewPosting("Expenses:Francis:Food", receiptMeta)))))
	assert.False(t, IsReceipt(ast.NewTransaction(nil, "", ast.WithTags("payslip"))))

	assert.True(t, IsPayslip(ast.NewTransaction(nil, "", ast.WithTags("payslip"))))
	assert.True(t, IsPayslip(ast.NewTransaction(nil, "", ast.WithTransactionMetadata(payslipMeta))))
	assert.True(t, IsPayslip(ast.NewTransaction(nil, "", ast.WithPostings(
		ast.NewPosting("Income:Francis:GrossPay:Salary", ast.WithPostingMetadata(payslipMeta)),
	))))
	assert.False(t, IsPayslip(ast.NewTransaction(nil, "", ast.WithTags("valuables"))))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "opening-balance", CategoryOpeningBalance.String())
	assert.Equal(t, "transfer", CategoryTransfer.String())
	assert.Equal(t, "owed", CategoryOwed.String())
	assert.Equal(t, "default", CategoryDefault.String())
}
