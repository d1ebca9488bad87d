package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/explodesh/explodesh/ir"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

const scalarKey = "v"

// Scalar checks that text is exactly one TOML scalar, with nothing but
// whitespace around it, and returns it unchanged as an ir.Scalar.
func Scalar(text string) (ir.Scalar, error) {
	if _, err := Decode(text); err != nil {
		return "", err
	}
	return ir.Scalar(strings.TrimSpace(text)), nil
}

// Canonical returns the canonical text of the scalar in text.
func Canonical(text string) (ir.Scalar, error) {
	x, err := Decode(text)
	if err != nil {
		return "", err
	}
	return scalarOf(x)
}

// Decode validates text as a single TOML scalar and returns the value go-toml
// decodes it to: string, int64, float64, bool, time.Time, toml.LocalDate,
// toml.LocalTime or toml.LocalDateTime.
func Decode(text string) (any, error) {
	doc := []byte(scalarKey + " = " + text)
	if err := checkShape(doc); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrScalar, text, err)
	}
	var m map[string]any
	if err := toml.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrScalar, text, err)
	}
	return m[scalarKey], nil
}

func checkShape(doc []byte) error {
	p := &unstable.Parser{}
	p.Reset(doc)
	if !p.NextExpression() {
		if err := p.Error(); err != nil {
			return err
		}
		return errors.New("empty value")
	}
	e := p.Expression()
	if e.Kind != unstable.KeyValue {
		return errors.New("not a value")
	}
	switch k := e.Value().Kind; k {
	case unstable.Array, unstable.InlineTable:
		return fmt.Errorf("%s is a container, not a scalar", strings.ToLower(k.String()))
	}
	end := e.Raw.Offset + e.Raw.Length
	if rest := strings.TrimSpace(string(doc[end:])); rest != "" {
		return fmt.Errorf("unexpected trailing content %q", rest)
	}
	return nil
}
