package parse

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/explodesh/explodesh/debug"
	"github.com/explodesh/explodesh/ir"

	"github.com/pelletier/go-toml/v2"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Table, error) {
	pOpts := &parseOpts{sourceOrder: true}
	for _, f := range opts {
		f(pOpts)
	}
	var doc map[string]any
	if err := toml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	var ranks keyRanks
	if pOpts.sourceOrder {
		var err error
		ranks, err = orderKeys(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
	res, err := fromMap(doc, nil, ranks)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d top level keys: %v\n", res.Len(), res.Fields)
	}
	return res, nil
}

func fromMap(m map[string]any, path []string, ranks keyRanks) (*ir.Table, error) {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		ra, aok := ranks.rank(path, a)
		rb, bok := ranks.rank(path, b)
		switch {
		case aok && bok:
			return cmp.Compare(ra, rb)
		case aok:
			return -1
		case bok:
			return 1
		}
		return cmp.Compare(a, b)
	})
	res := &ir.Table{
		Fields: make([]string, 0, len(keys)),
		Values: make([]ir.Value, 0, len(keys)),
	}
	for _, k := range keys {
		v, err := fromAny(m[k], append(slices.Clip(path), k), ranks)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, v)
	}
	return res, nil
}

func fromAny(x any, path []string, ranks keyRanks) (ir.Value, error) {
	switch v := x.(type) {
	case map[string]any:
		return fromMap(v, path, ranks)
	case []any:
		res := make(ir.Array, len(v))
		for i, e := range v {
			ev, err := fromAny(e, path, ranks)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	default:
		return scalarOf(x)
	}
}

// scalarOf renders a value decoded by go-toml as canonical scalar text.
func scalarOf(x any) (ir.Scalar, error) {
	switch v := x.(type) {
	case string:
		return ir.FromString(v), nil
	case int64:
		return ir.FromInt(v), nil
	case float64:
		return ir.FromFloat(v), nil
	case bool:
		return ir.FromBool(v), nil
	case time.Time:
		return ir.Scalar(v.Format(time.RFC3339Nano)), nil
	case toml.LocalDate:
		return ir.Scalar(v.String()), nil
	case toml.LocalTime:
		return ir.Scalar(v.String()), nil
	case toml.LocalDateTime:
		return ir.Scalar(v.String()), nil
	default:
		return "", fmt.Errorf("%w: unexpected decoded type %T", ErrScalar, x)
	}
}
