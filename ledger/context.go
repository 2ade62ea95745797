package ledger

import "github.com/robinvdvleuten/beancount-household/ast"

// FileContext is the owner of a journal file: the account every transaction
// in the file starts from and the party that account belongs to.
type FileContext struct {
	Account ast.Account
	Party   string
}

// contextTable maps journal filenames to their owner. One table lives for the
// duration of a single Process call.
type contextTable struct {
	files map[string]FileContext
}

func newContextTable() *contextTable {
	return &contextTable{files: make(map[string]FileContext)}
}

// set records the owner of file, replacing any earlier owner. It reports the
// previous owner when a different one was already recorded.
func (t *contextTable) set(file string, fc FileContext) (FileContext, bool) {
	prev, ok := t.files[file]
	t.files[file] = fc
	return prev, ok && prev != fc
}

func (t *contextTable) get(file string) (FileContext, bool) {
	fc, ok := t.files[file]
	return fc, ok
}
