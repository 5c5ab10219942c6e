// Package jsexp converts decoded JSON and YAML documents into S-expressions
// suitable for LISP-like consumers such as code generators. Documents are
// represented as ordered key-value collections so that field order in the
// source text survives into the output.
package jsexp

// D represents a document, defined as an ordered collection of key-value
// pairs. Each entry in the document is represented by an E. Field order is
// exactly the order the fields appeared in the source text; the encoder
// emits fields in that order, never sorted.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and
// an associated value of any type.
type E struct {
	Key   string
	Value any
}
