package encode

import (
	"strings"

	"github.com/explodesh/explodesh/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	HeaderColor
	SepColor
	StringColor
	NumberColor
	BoolColor
	DateColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.TableKind, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ir.TableKind, Attr: HeaderColor}] = color.RGB(196, 96, 16).SprintfFunc()

	able := Colorable{Kind: ir.ScalarKind}
	able.Attr = StringColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = NumberColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = BoolColor
	colors.Map[able] = color.CyanString
	able.Attr = DateColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// scalarAttr guesses the color class of a scalar from its text.
func scalarAttr(s ir.Scalar) ColorAttr {
	t := s.Text()
	switch {
	case t == "":
		return StringColor
	case t[0] == '"' || t[0] == '\'':
		return StringColor
	case t == "true" || t == "false":
		return BoolColor
	case len(t) >= 8 && (t[4] == '-' || t[2] == ':'):
		return DateColor
	default:
		return NumberColor
	}
}
