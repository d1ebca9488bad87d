// Package explodesh ties parsing, exploding, imploding and printing together
// into the operations of the explodesh command.
package explodesh

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/explodesh/explodesh/encode"
	"github.com/explodesh/explodesh/explode"
	"github.com/explodesh/explodesh/implode"
	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/libdiff"
	"github.com/explodesh/explodesh/parse"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Tool struct {
	ParseOpts   []parse.ParseOption
	ExplodeOpts []explode.ExplodeOption
	ImplodeOpts []implode.ImplodeOption
	EncodeOpts  []encode.EncodeOption
}

func DefaultTool() *Tool {
	return &Tool{}
}

// Explode parses the TOML document in r and explodes it into dest.
func (t *Tool) Explode(ctx context.Context, r io.Reader, dest string) error {
	d, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d, t.ParseOpts...)
	if err != nil {
		return err
	}
	return explode.Explode(ctx, doc, dest, t.ExplodeOpts...)
}

// ExplodeFile explodes the TOML file src into dest.
func (t *Tool) ExplodeFile(ctx context.Context, src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := t.Explode(ctx, f, dest); err != nil {
		return fmt.Errorf("error exploding %s: %w", src, err)
	}
	return nil
}

// Implode reads the exploded tree at src.
func (t *Tool) Implode(ctx context.Context, src string) (*ir.Table, error) {
	doc, err := implode.Dir(ctx, src, t.ImplodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("error imploding %s: %w", src, err)
	}
	return doc, nil
}

// ImplodeTo implodes src and writes the document to w.
func (t *Tool) ImplodeTo(ctx context.Context, src string, w io.Writer) error {
	doc, err := t.Implode(ctx, src)
	if err != nil {
		return err
	}
	return encode.Encode(doc, w, t.EncodeOpts...)
}

// Load reads p as an exploded tree if it is a directory and as a TOML file
// otherwise.
func (t *Tool) Load(ctx context.Context, p string) (*ir.Table, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return t.Implode(ctx, p)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, t.ParseOpts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", p, err)
	}
	return doc, nil
}

type CheckResult struct {
	Equal    bool
	Source   *ir.Table
	Imploded *ir.Table
	// Diff is a line diff of the key sorted TOML renderings, set when the
	// documents differ.
	Diff []diffpatch.Diff
}

// Check explodes src into a temporary directory, implodes it again and
// compares the result with the source.
func (t *Tool) Check(ctx context.Context, src string) (*CheckResult, error) {
	d, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, t.ParseOpts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", src, err)
	}
	tmp, err := os.MkdirTemp("", "explodesh-check-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)
	if err := explode.Explode(ctx, doc, tmp, t.ExplodeOpts...); err != nil {
		return nil, fmt.Errorf("error exploding %s: %w", src, err)
	}
	back, err := t.Implode(ctx, tmp)
	if err != nil {
		return nil, err
	}
	res := &CheckResult{Source: doc, Imploded: back}
	res.Equal, err = libdiff.Equal(doc, back)
	if err != nil {
		return nil, err
	}
	if !res.Equal {
		res.Diff = Diff(doc, back)
	}
	return res, nil
}

// Diff is a line diff of the TOML renderings of a and b with keys sorted.
func Diff(a, b *ir.Table) []diffpatch.Diff {
	return libdiff.Lines(normalized(a), normalized(b))
}

func normalized(t *ir.Table) string {
	return encode.MustString(ir.SortKeys(t).(*ir.Table))
}
