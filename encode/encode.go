package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/explodesh/explodesh/format"
	"github.com/explodesh/explodesh/ir"

	"github.com/pelletier/go-toml/v2"
)

type EncState struct {
	format format.Format
	verify bool
	indent int

	started bool
	Color   func(ir.Kind, ColorAttr, string) string
}

func Encode(t *ir.Table, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		verify: true,
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(t, w, es)
	case format.YAMLFormat:
		return encodeYAML(t, w, es)
	}
	buf := bytes.NewBuffer(nil)
	if err := es.table(buf, nil, t, false); err != nil {
		return err
	}
	if es.verify {
		// colors are applied while writing, so verify an uncolored rendering
		plain := buf.Bytes()
		if es.Color != nil {
			pb := bytes.NewBuffer(nil)
			pes := &EncState{}
			if err := pes.table(pb, nil, t, false); err != nil {
				return err
			}
			plain = pb.Bytes()
		}
		var m map[string]any
		if err := toml.Unmarshal(plain, &m); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOutput, err)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// MustString encodes t as TOML, or returns an error description.
func MustString(t *ir.Table) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, EncodeVerify(false)); err != nil {
		return fmt.Sprintf("<err: %v>", err)
	}
	return buf.String()
}

func (es *EncState) table(buf *bytes.Buffer, path []string, t *ir.Table, arrayElem bool) error {
	inline, nested := 0, 0
	for _, v := range t.Values {
		if isInline(v) {
			inline++
		} else {
			nested++
		}
	}
	switch {
	case arrayElem:
		es.header(buf, "[["+dotted(path)+"]]")
	case path == nil:
	case inline == 0 && nested != 0:
		// implicitly defined by its sub-tables
	default:
		es.header(buf, "["+dotted(path)+"]")
	}
	for i, k := range t.Fields {
		v := t.Values[i]
		if !isInline(v) {
			continue
		}
		buf.WriteString(es.color(ir.TableKind, KeyColor, QuoteKey(k)))
		buf.WriteString(es.color(ir.TableKind, SepColor, " = "))
		es.inline(buf, v)
		buf.WriteByte('\n')
		es.started = true
	}
	for i, k := range t.Fields {
		v := t.Values[i]
		sub := append(path[:len(path):len(path)], k)
		switch v := v.(type) {
		case *ir.Table:
			if err := es.table(buf, sub, v, false); err != nil {
				return err
			}
		case ir.Array:
			if !isTableArray(v) {
				continue
			}
			for _, e := range v {
				if err := es.table(buf, sub, e.(*ir.Table), true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (es *EncState) header(buf *bytes.Buffer, h string) {
	if es.started {
		buf.WriteByte('\n')
	}
	buf.WriteString(es.color(ir.TableKind, HeaderColor, h))
	buf.WriteByte('\n')
	es.started = true
}

func (es *EncState) inline(buf *bytes.Buffer, v ir.Value) {
	switch v := v.(type) {
	case ir.Scalar:
		buf.WriteString(es.color(ir.ScalarKind, scalarAttr(v), v.Text()))
	case ir.Array:
		buf.WriteString(es.color(ir.ArrayKind, SepColor, "["))
		for i, e := range v {
			if i != 0 {
				buf.WriteString(es.color(ir.ArrayKind, SepColor, ", "))
			}
			es.inline(buf, e)
		}
		buf.WriteString(es.color(ir.ArrayKind, SepColor, "]"))
	case *ir.Table:
		if v.Len() == 0 {
			buf.WriteString(es.color(ir.TableKind, SepColor, "{}"))
			return
		}
		buf.WriteString(es.color(ir.TableKind, SepColor, "{ "))
		for i, k := range v.Fields {
			if i != 0 {
				buf.WriteString(es.color(ir.TableKind, SepColor, ", "))
			}
			buf.WriteString(es.color(ir.TableKind, KeyColor, QuoteKey(k)))
			buf.WriteString(es.color(ir.TableKind, SepColor, " = "))
			es.inline(buf, v.Values[i])
		}
		buf.WriteString(es.color(ir.TableKind, SepColor, " }"))
	default:
		panic(fmt.Sprintf("encode: unexpected value %T", v))
	}
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func isInline(v ir.Value) bool {
	switch v := v.(type) {
	case ir.Scalar:
		return true
	case ir.Array:
		return !isTableArray(v)
	case *ir.Table:
		return false
	default:
		panic(fmt.Sprintf("encode: unexpected value %T", v))
	}
}

func isTableArray(a ir.Array) bool {
	if len(a) == 0 {
		return false
	}
	for _, e := range a {
		if _, ok := e.(*ir.Table); !ok {
			return false
		}
	}
	return true
}

func dotted(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = QuoteKey(p)
	}
	return strings.Join(parts, ".")
}

// QuoteKey returns k as a bare key when possible, otherwise as a basic string.
func QuoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '-':
		default:
			return ir.QuoteString(k)
		}
	}
	return k
}
