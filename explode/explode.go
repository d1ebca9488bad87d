package explode

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/explodesh/explodesh/debug"
	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/keyorder"
)

// entry is a pending value together with where it goes.
type entry struct {
	// dir is the directory the entry is created in, parent the document
	// path of the containing value.
	dir     string
	parent  string
	docPath string
	name    string
	key     bool
	val     ir.Value
}

type exploder struct {
	explodeOpts
}

// Explode writes root as a directory tree at dest.
func Explode(ctx context.Context, root *ir.Table, dest string, opts ...ExplodeOption) error {
	x := &exploder{explodeOpts: explodeOpts{log: slog.New(slog.DiscardHandler)}}
	for _, opt := range opts {
		opt(&x.explodeOpts)
	}
	if err := prepare(dest); err != nil {
		return err
	}
	x.log.Debug("explode", "dest", dest, "keys", root.Len())
	if err := x.table(dest, ir.RootPath, root); err != nil {
		return err
	}
	stack := x.children(nil, dest, ir.RootPath, root)
	for len(stack) != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.key {
			if err := x.checkName(e.parent, e.name); err != nil {
				return err
			}
		}
		p := filepath.Join(e.dir, e.name)
		if debug.Walk() {
			debug.Logf("explode %s -> %s (%s)\n", e.docPath, p, e.val.Kind())
		}
		switch v := e.val.(type) {
		case ir.Scalar:
			if err := x.scalar(p, v); err != nil {
				return err
			}
		case ir.Array:
			if err := x.mkdir(p); err != nil {
				return err
			}
			stack = x.children(stack, p, e.docPath, v)
		case *ir.Table:
			if err := x.mkdir(p); err != nil {
				return err
			}
			if err := x.table(p, e.docPath, v); err != nil {
				return err
			}
			stack = x.children(stack, p, e.docPath, v)
		default:
			panic(fmt.Sprintf("explode: unexpected value %T", v))
		}
	}
	return nil
}

// prepare makes sure dest is an empty directory.
func prepare(dest string) error {
	st, err := os.Stat(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.MkdirAll(dest, 0755)
		}
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, dest)
	}
	ents, err := os.ReadDir(dest)
	if err != nil {
		return err
	}
	if len(ents) != 0 {
		return fmt.Errorf("%w: %s", ErrDestNotEmpty, dest)
	}
	return nil
}

// children pushes the children of v so that they pop in order.
func (x *exploder) children(stack []entry, dir, docPath string, v ir.Value) []entry {
	start := len(stack)
	switch v := v.(type) {
	case ir.Array:
		for i, e := range v {
			stack = append(stack, entry{
				dir:     dir,
				parent:  docPath,
				docPath: ir.IndexPath(docPath, i),
				name:    strconv.Itoa(i),
				val:     e,
			})
		}
	case *ir.Table:
		for k, e := range v.All() {
			stack = append(stack, entry{
				dir:     dir,
				parent:  docPath,
				docPath: ir.FieldPath(docPath, k),
				name:    k,
				key:     true,
				val:     e,
			})
		}
	}
	slices.Reverse(stack[start:])
	return stack
}

func (x *exploder) checkName(docPath, key string) error {
	bad := key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, "/\x00") ||
		key == keyorder.FileName
	if bad {
		return &NamingError{Path: docPath, Key: key}
	}
	return nil
}

func (x *exploder) mkdir(p string) error {
	x.log.Debug("mkdir", "path", p)
	return os.Mkdir(p, 0755)
}

// table writes the key-order manifest of t into dir when enabled.
func (x *exploder) table(dir, docPath string, t *ir.Table) error {
	if !x.keyOrder || !keyorder.Needed(t.Fields) {
		return nil
	}
	// names are checked before the manifest mentions them
	for _, k := range t.Fields {
		if err := x.checkName(docPath, k); err != nil {
			return err
		}
	}
	x.log.Debug("manifest", "dir", dir, "keys", t.Len())
	return keyorder.Write(dir, t.Fields)
}

func (x *exploder) scalar(p string, s ir.Scalar) error {
	x.log.Debug("write", "path", p)
	f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(s.Text()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
