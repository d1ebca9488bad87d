// Package ir provides the in-memory value model shared by the explode and
// implode directions.
//
// # Overview
//
// A document is a tree of Values. Value is a closed sum type with exactly
// three variants:
//
//   - Scalar: a leaf, kept as its canonical TOML text ("hello" with quotes,
//     42, 3.5, true, 1979-05-27T07:32:00Z)
//   - Array: an ordered list of Values
//   - Table: an ordered list of uniquely keyed Values
//
// Scalars are never re-typed by this package. The text is whatever the
// parser produced or whatever a file on disk contained, and it is embedded
// back into a document verbatim by the encoder.
//
// Consumers switch on the concrete type:
//
//	switch v := v.(type) {
//	case ir.Scalar:
//	case ir.Array:
//	case *ir.Table:
//	}
//
// The unexported marker method keeps the set of variants closed to this
// package.
//
// # Tables
//
// For a Table, Fields[i] is the key for the value at Values[i], so there are
// always as many fields as values. Keys are unique. The root of every document
// is a Table.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation.
package ir
