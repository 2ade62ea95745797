package ledger

import (
	"os"
	"path/filepath"

	"github.com/robinvdvleuten/beancount-household/ast"
)

// documentRef is a supporting file referenced from an entry's metadata.
type documentRef struct {
	kind    string
	path    string
	account ast.Account
	pos     ast.Position
}

// documentRefs lists the documents referenced by a flagged entry, in the order
// they appear in it.
func documentRefs(directive ast.Directive) []documentRef {
	var refs []documentRef

	switch d := directive.(type) {
	case *ast.Balance:
		if value, ok := d.Meta(metaStatement); ok {
			refs = append(refs, documentRef{kind: metaStatement, path: value.String(), account: d.Account, pos: d.Pos})
		}

	case *ast.Transaction:
		if value, ok := d.Meta(metaPayslip); ok && len(d.Postings) > 0 {
			account := d.Postings[0].Account
			if len(d.Postings) > 1 {
				account = d.Postings[1].Account
			}
			refs = append(refs, documentRef{kind: metaPayslip, path: value.String(), account: account, pos: d.Pos})
		}
		for _, posting := range d.Postings {
			value, ok := posting.Meta(metaReceipt)
			if !ok {
				continue
			}
			pos := posting.Pos
			if pos.IsZero() {
				pos = d.Pos
			}
			refs = append(refs, documentRef{kind: metaReceipt, path: value.String(), account: posting.Account, pos: pos})
		}
	}

	return refs
}

// synthesizeDocuments creates a document entry for every file referenced by
// the flagged entries. A missing file is reported but still produces an entry.
func synthesizeDocuments(flagged []ast.Directive, root string) (ast.Directives, []error) {
	var (
		docs ast.Directives
		errs []error
	)

	for _, directive := range flagged {
		for _, ref := range documentRefs(directive) {
			path := resolveDocumentPath(root, ref.path)

			if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
				fileErr := newError(KindFileNotFound, directive, "File not found: %s", path)
				fileErr.Pos = ref.pos
				errs = append(errs, fileErr)
			}

			doc := ast.NewDocument(directive.GetDate(), ref.account, path, ref.kind)
			doc.Pos = ref.pos
			docs = append(docs, doc)
		}
	}

	return docs, errs
}

// resolveDocumentPath joins a metadata path onto root. Absolute paths are only
// cleaned.
func resolveDocumentPath(root, path string) string {
	path = filepath.Clean(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// documentRoot returns the absolute directory document paths are resolved
// against.
func documentRoot(configured string) (string, error) {
	if configured == "" {
		return os.Getwd()
	}
	return filepath.Abs(configured)
}
