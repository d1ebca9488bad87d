// Package explode materializes a TOML document as a directory tree.
//
// Tables and arrays become directories, scalars become regular files holding
// their canonical TOML text. Array elements are stored under their decimal
// index, so the elements of a three element array live in "0", "1" and "2".
//
// Keys that cannot name a file are rejected with a *NamingError, as is the
// key ".keys.toml", which names the key-order manifest.
//
// The destination must be absent or an empty directory. A failed explode
// leaves whatever was written before the failure on disk.
package explode
