package implode

import (
	"strconv"

	"github.com/explodesh/explodesh/keyorder"
)

type dirKind int

const (
	tableDir dirKind = iota
	arrayDir
	ambiguousDir
)

func (k dirKind) String() string {
	switch k {
	case tableDir:
		return "table"
	case arrayDir:
		return "array"
	case ambiguousDir:
		return "ambiguous"
	default:
		return "dirKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// classify decides the kind of a directory from its entry names. mixed is
// only meaningful for ambiguousDir.
func classify(names []string) (k dirKind, mixed bool) {
	if len(names) == 0 {
		return tableDir, false
	}
	seen := make([]bool, len(names))
	numeric, dense := 0, true
	for _, name := range names {
		if !keyorder.Numeric(name) {
			continue
		}
		numeric++
		i, ok := index(name)
		if !ok || i >= len(names) || seen[i] {
			dense = false
			continue
		}
		seen[i] = true
	}
	switch {
	case numeric == 0:
		return tableDir, false
	case numeric != len(names):
		return ambiguousDir, true
	case dense:
		return arrayDir, false
	default:
		return ambiguousDir, false
	}
}

// index parses a decimal array index without leading zeros.
func index(s string) (int, bool) {
	if !keyorder.Numeric(s) || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
