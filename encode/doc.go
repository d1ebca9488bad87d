// Package encode prints an ir.Table as TOML, JSON or YAML.
//
// # TOML
//
// Within a table, keys holding scalars and inline arrays are written first as
// key = value lines, then sub-tables as [a.b] sections, then arrays whose
// elements are all tables as [[a.b]] sections. This is the only reordering the
// encoder performs; it is required by the TOML grammar. Scalars are written
// verbatim. Arrays mixing tables with other values, and tables nested inside
// inline arrays, are written inline ({ k = v }).
//
// Unless disabled with EncodeVerify(false), TOML output is decoded again with
// go-toml before it is written, so scalar text taken from hand edited files
// cannot silently produce a broken document.
//
// # JSON and YAML
//
// Scalars are decoded with parse.Decode and written as native values. Dates
// and times are written as strings, non finite floats as "nan", "inf" and
// "-inf" in JSON. Key order is preserved in both.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := encode.Encode(doc, &buf, encode.EncodeFormat(format.YAMLFormat))
package encode
