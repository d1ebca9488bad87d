// Package implode reconstructs a TOML document from a directory tree written
// by package explode or by hand.
//
// Regular files are scalars. A directory whose entry names are exactly "0"
// through "N-1" is an array, any other directory is a table. The root of the
// tree is always a table. Directories that look almost like arrays, such as
// {"0", "2"} or {"0", "1", "x"}, become tables and are reported as
// ambiguous.
//
// Table keys come out in lexical order unless the directory holds a
// key-order manifest (see package keyorder). A directory with a manifest is
// always a table.
//
// Two shapes do not survive an explode and implode round trip on their own:
// an empty array comes back as an empty table, and a table whose keys are
// exactly "0" through "N-1" comes back as an array. Exploding with key order
// manifests fixes the second, since the manifest marks the directory as a
// table; nothing fixes the first.
package implode
