package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/parse"

	"github.com/goccy/go-yaml"
)

// orderedObject marshals to a JSON object with keys in table order.
type orderedObject []yaml.MapItem

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, item := range o {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Native converts v to plain Go values: yaml.MapSlice for tables, []any for
// arrays and the decoded scalar otherwise, with dates as strings.
func Native(v ir.Value) (any, error) {
	return native(v, false)
}

func native(v ir.Value, forJSON bool) (any, error) {
	switch v := v.(type) {
	case ir.Scalar:
		x, err := parse.Decode(v.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnencodable, err)
		}
		return nativeScalar(x, forJSON), nil
	case ir.Array:
		res := make([]any, len(v))
		for i, e := range v {
			x, err := native(e, forJSON)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case *ir.Table:
		res := make(yaml.MapSlice, 0, v.Len())
		for k, e := range v.All() {
			x, err := native(e, forJSON)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: k, Value: x})
		}
		if forJSON {
			return orderedObject(res), nil
		}
		return res, nil
	default:
		panic(fmt.Sprintf("encode: unexpected value %T", v))
	}
}

func nativeScalar(x any, forJSON bool) any {
	switch x := x.(type) {
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		// toml.LocalDate, toml.LocalTime, toml.LocalDateTime
		return x.String()
	case float64:
		if forJSON && (math.IsNaN(x) || math.IsInf(x, 0)) {
			return ir.FormatFloat(x)
		}
		return x
	default:
		return x
	}
}

func encodeJSON(t *ir.Table, w io.Writer, es *EncState) error {
	x, err := native(t, true)
	if err != nil {
		return err
	}
	indent := ""
	for range es.indent {
		indent += " "
	}
	d, err := json.MarshalIndent(x, "", indent)
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(t *ir.Table, w io.Writer, es *EncState) error {
	x, err := native(t, false)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(x, yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
