// Package ast declares the types used to represent Beancount ledger entries.
//
// These types describe the already-parsed entries that the household validation
// rules operate on: transactions, balance assertions, custom directives, account
// openings and document attachments. Entries are produced by an external
// Beancount parser, or constructed programmatically with the builders in this
// package.
package ast

// Directives is an ordered list of ledger entries. The order is significant:
// entries are expected in file order, then source order within a file.
type Directives []Directive

// WithMetadata is an interface for entries and postings that carry metadata.
type WithMetadata interface {
	AddMetadata(...*Metadata)
	Meta(key string) (*MetadataValue, bool)
}

// withMetadata is an embeddable struct that implements WithMetadata.
type withMetadata struct {
	Metadata []*Metadata
}

func (w *withMetadata) AddMetadata(m ...*Metadata) {
	w.Metadata = append(w.Metadata, m...)
}

// Meta returns the value stored under key. When a key is present more than
// once the first occurrence wins.
func (w *withMetadata) Meta(key string) (*MetadataValue, bool) {
	for _, m := range w.Metadata {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// HasMeta reports whether a metadata entry with the given key is present.
func (w *withMetadata) HasMeta(key string) bool {
	_, ok := w.Meta(key)
	return ok
}

// Directive is the interface implemented by all ledger entry types.
type Directive interface {
	WithMetadata

	Position() Position
	GetDate() *Date
	Directive() string
}

// Filename returns the source file an entry was parsed from.
func Filename(d Directive) string {
	return d.Position().Filename
}
