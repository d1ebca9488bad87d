package ir

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Tables compare field by field in order, so two tables holding the same
// entries in a different order are not equal. Use SortKeys on both sides for
// an order insensitive comparison.
func Compare(a, b Value) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch x := a.(type) {
	case Scalar:
		return strings.Compare(string(x), string(b.(Scalar)))
	case Array:
		return compareArrays(x, b.(Array))
	case *Table:
		return compareTables(x, b.(*Table))
	default:
		panic(fmt.Sprintf("ir: unexpected value %T", a))
	}
}

func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareArrays(a, b Array) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareTables(a, b *Table) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// SortKeys returns a copy of v with the keys of every table in lexical order.
func SortKeys(v Value) Value {
	switch v := v.(type) {
	case Scalar:
		return v
	case Array:
		res := make(Array, len(v))
		for i, e := range v {
			res[i] = SortKeys(e)
		}
		return res
	case *Table:
		idx := make([]int, v.Len())
		for i := range idx {
			idx[i] = i
		}
		slices.SortFunc(idx, func(i, j int) int {
			return strings.Compare(v.Fields[i], v.Fields[j])
		})
		res := &Table{
			Fields: make([]string, len(idx)),
			Values: make([]Value, len(idx)),
		}
		for i, j := range idx {
			res.Fields[i] = v.Fields[j]
			res.Values[i] = SortKeys(v.Values[j])
		}
		return res
	default:
		panic(fmt.Sprintf("ir: unexpected value %T", v))
	}
}
