// Package parse turns TOML text into an ir.Table.
//
// Validation and typed decoding are delegated to go-toml. Key order is
// recovered separately from go-toml's expression parser, since decoding into
// Go maps loses it. Every leaf becomes an ir.Scalar holding canonical text:
//
//   - strings: single line basic strings with escapes ("a\nb")
//   - integers: decimal (0x10 becomes 16, 1_000 becomes 1000)
//   - floats: as go-toml prints them (nan, inf, 2.0, 0.5)
//   - booleans: true, false
//   - date/times: RFC 3339 (1979-05-27T07:32:00Z, 1979-05-27, 07:32:00)
//
// Scalar and Canonical validate and normalize the text of a single leaf, as
// found in a file of an exploded tree.
package parse
