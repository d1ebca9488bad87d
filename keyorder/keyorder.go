// Package keyorder reads and writes the key-order manifest kept in table
// directories of an exploded tree.
//
// A manifest is a small TOML document:
//
//	keys = ["foo", "bar", "baz"]
//
// It lists the keys of the table in document order. Keys named in the
// manifest but absent from the directory are ignored, and entries missing
// from the manifest follow in lexical order.
package keyorder

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/explodesh/explodesh/debug"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the manifest inside a table directory.
const FileName = ".keys.toml"

// MinKeys is the smallest table that gets a manifest for its order alone.
const MinKeys = 2

var ErrManifest = errors.New("invalid key-order manifest")

type manifest struct {
	Keys []string `toml:"keys"`
}

// Marshal renders the manifest for keys.
func Marshal(keys []string) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := toml.NewEncoder(buf)
	if err := enc.Encode(&manifest{Keys: keys}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes manifest text.
func Unmarshal(d []byte) ([]string, error) {
	m := &manifest{}
	dec := toml.NewDecoder(bytes.NewReader(d))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return m.Keys, nil
}

// Write creates the manifest for keys in dir.
func Write(dir string, keys []string) error {
	d, err := Marshal(keys)
	if err != nil {
		return err
	}
	p := filepath.Join(dir, FileName)
	if debug.Order() {
		debug.Logf("write %s: %v\n", p, keys)
	}
	return os.WriteFile(p, d, 0644)
}

// Read returns the manifest keys of dir in fsys. The boolean result is false
// when dir has no manifest.
func Read(fsys fs.FS, dir string) ([]string, bool, error) {
	p := path.Join(dir, FileName)
	d, err := fs.ReadFile(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	keys, err := Unmarshal(d)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", p, err)
	}
	if debug.Order() {
		debug.Logf("read %s: %v\n", p, keys)
	}
	return keys, true, nil
}

// Numeric reports whether name consists of decimal digits only, the shape
// an imploder reads as a possible array index.
func Numeric(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// Needed reports whether a table with keys needs a manifest: to keep its
// order, or to keep it a table when some key looks like an array index.
func Needed(keys []string) bool {
	if len(keys) >= MinKeys {
		return true
	}
	for _, k := range keys {
		if Numeric(k) {
			return true
		}
	}
	return false
}

// Apply orders names by keys. names is sorted in place and returned.
func Apply(names, keys []string) []string {
	rank := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		ra, aok := rank[a]
		rb, bok := rank[b]
		switch {
		case aok && bok:
			return ra - rb
		case aok:
			return -1
		case bok:
			return 1
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return names
}
