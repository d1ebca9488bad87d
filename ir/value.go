package ir

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
)

type Value interface {
	Kind() Kind
	value()
}

// Scalar holds the canonical TOML text of a leaf value.
type Scalar string

type Array []Value

type Table struct {
	Fields []string
	Values []Value
}

func (Scalar) Kind() Kind { return ScalarKind }
func (Array) Kind() Kind  { return ArrayKind }
func (*Table) Kind() Kind { return TableKind }

func (Scalar) value() {}
func (Array) value()  {}
func (*Table) value() {}

func (s Scalar) Text() string { return string(s) }

func FromString(v string) Scalar {
	return Scalar(QuoteString(v))
}

func FromInt(v int64) Scalar {
	return Scalar(strconv.FormatInt(v, 10))
}

func FromFloat(f float64) Scalar {
	return Scalar(FormatFloat(f))
}

func FromBool(v bool) Scalar {
	return Scalar(strconv.FormatBool(v))
}

func FromSlice(vs []Value) Array {
	if vs == nil {
		return Array{}
	}
	return Array(vs)
}

type KeyVal struct {
	Key string
	Val Value
}

func FromKeyVals(kvs []KeyVal) (*Table, error) {
	t := NewTable()
	for _, kv := range kvs {
		if _, ok := t.Get(kv.Key); ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, kv.Key)
		}
		t.Set(kv.Key, kv.Val)
	}
	return t, nil
}

// MustKeyVals is FromKeyVals for literal tables known to have unique keys.
func MustKeyVals(kvs ...KeyVal) *Table {
	t, err := FromKeyVals(kvs)
	if err != nil {
		panic(err)
	}
	return t
}

func NewTable() *Table {
	return &Table{Fields: []string{}, Values: []Value{}}
}

func (t *Table) Len() int {
	return len(t.Fields)
}

func (t *Table) Get(key string) (Value, bool) {
	i := slices.Index(t.Fields, key)
	if i == -1 {
		return nil, false
	}
	return t.Values[i], true
}

// Set replaces the value under key in place, or appends key at the end.
func (t *Table) Set(key string, v Value) {
	i := slices.Index(t.Fields, key)
	if i != -1 {
		t.Values[i] = v
		return
	}
	t.Fields = append(t.Fields, key)
	t.Values = append(t.Values, v)
}

func (t *Table) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, f := range t.Fields {
			if !yield(f, t.Values[i]) {
				return
			}
		}
	}
}

func Clone(v Value) Value {
	switch v := v.(type) {
	case Scalar:
		return v
	case Array:
		res := make(Array, len(v))
		for i, e := range v {
			res[i] = Clone(e)
		}
		return res
	case *Table:
		res := &Table{
			Fields: slices.Clone(v.Fields),
			Values: make([]Value, len(v.Values)),
		}
		for i, e := range v.Values {
			res.Values[i] = Clone(e)
		}
		return res
	default:
		panic(fmt.Sprintf("ir: unexpected value %T", v))
	}
}

// Empty reports whether v is a container without children.
func Empty(v Value) bool {
	switch v := v.(type) {
	case Scalar:
		return false
	case Array:
		return len(v) == 0
	case *Table:
		return v.Len() == 0
	default:
		panic(fmt.Sprintf("ir: unexpected value %T", v))
	}
}

// FormatFloat renders f the way go-toml prints floats.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.Trunc(f) == f:
		return strconv.FormatFloat(f, 'f', 1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
