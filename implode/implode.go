package implode

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/explodesh/explodesh/debug"
	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/keyorder"
	"github.com/explodesh/explodesh/parse"
)

// job is a directory entry waiting to be read. set stores the result in the
// parent container.
type job struct {
	path string
	set  func(ir.Value)
}

type imploder struct {
	implodeOpts
	fsys fs.FS
}

// Dir implodes the directory tree rooted at dir on the local filesystem.
func Dir(ctx context.Context, dir string, opts ...ImplodeOption) (*ir.Table, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}
	return Implode(ctx, os.DirFS(dir), ".", opts...)
}

// Implode reads the tree rooted at root in fsys.
func Implode(ctx context.Context, fsys fs.FS, root string, opts ...ImplodeOption) (*ir.Table, error) {
	im := &imploder{
		implodeOpts: implodeOpts{log: slog.New(slog.DiscardHandler)},
		fsys:        fsys,
	}
	for _, opt := range opts {
		opt(&im.implodeOpts)
	}
	st, err := fs.Stat(fsys, root)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, root)
	}
	names, keys, err := im.list(root)
	if err != nil {
		return nil, err
	}
	res := im.table(root, names, keys)
	stack := im.push(nil, root, names, res)
	for len(stack) != 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st, err := im.stat(j.path)
		if err != nil {
			return nil, err
		}
		switch {
		case st.Mode().IsRegular():
			s, err := im.scalar(j.path)
			if err != nil {
				return nil, err
			}
			j.set(s)
		case st.IsDir():
			names, keys, err := im.list(j.path)
			if err != nil {
				return nil, err
			}
			v, err := im.dir(j.path, names, keys)
			if err != nil {
				return nil, err
			}
			j.set(v)
			stack = im.push(stack, j.path, names, v)
		default:
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedEntry, j.path, st.Mode().Type())
		}
	}
	return res, nil
}

// stat follows symbolic links; a dangling link is unsupported.
func (im *imploder) stat(p string) (fs.FileInfo, error) {
	st, err := fs.Stat(im.fsys, p)
	if err != nil {
		if lst, lerr := fs.Lstat(im.fsys, p); lerr == nil && lst.Mode()&fs.ModeSymlink != 0 {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedEntry, p, err)
		}
		return nil, err
	}
	return st, nil
}

// list returns the entry names of dir without the manifest, and the manifest
// keys when there is one.
func (im *imploder) list(dir string) ([]string, []string, error) {
	ents, err := fs.ReadDir(im.fsys, dir)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(ents))
	manifest := false
	for _, ent := range ents {
		name := ent.Name()
		if name == keyorder.FileName && ent.Type().IsRegular() {
			manifest = true
			continue
		}
		if !utf8.ValidString(name) {
			return nil, nil, fmt.Errorf("%w: %q in %s", ErrBadName, name, dir)
		}
		names = append(names, name)
	}
	if !manifest {
		return names, nil, nil
	}
	keys, _, err := keyorder.Read(im.fsys, dir)
	if err != nil {
		return nil, nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return names, keys, nil
}

func (im *imploder) dir(p string, names, keys []string) (ir.Value, error) {
	if keys != nil {
		return im.table(p, names, keys), nil
	}
	kind, mixed := classify(names)
	if debug.Walk() {
		debug.Logf("implode %s: %d names, %s\n", p, len(names), kind)
	}
	switch kind {
	case arrayDir:
		im.log.Debug("array", "path", p, "len", len(names))
		slices.SortFunc(names, func(a, b string) int {
			i, _ := index(a)
			j, _ := index(b)
			return i - j
		})
		return make(ir.Array, len(names)), nil
	case ambiguousDir:
		a := &Ambiguity{Path: p, Names: slices.Sorted(slices.Values(names)), Mixed: mixed}
		if im.strict {
			return nil, a
		}
		if im.warn != nil {
			im.warn(a)
		}
	}
	return im.table(p, names, nil), nil
}

// table orders names and returns a table with those keys and no values yet.
func (im *imploder) table(p string, names, keys []string) *ir.Table {
	im.log.Debug("table", "path", p, "keys", len(names))
	keyorder.Apply(names, keys)
	return &ir.Table{
		Fields: slices.Clone(names),
		Values: make([]ir.Value, len(names)),
	}
}

// push adds jobs for the entries of dir so they pop in order.
func (im *imploder) push(stack []job, dir string, names []string, v ir.Value) []job {
	start := len(stack)
	for i, name := range names {
		j := job{path: path.Join(dir, name)}
		switch v := v.(type) {
		case ir.Array:
			j.set = func(x ir.Value) { v[i] = x }
		case *ir.Table:
			j.set = func(x ir.Value) { v.Values[i] = x }
		default:
			panic(fmt.Sprintf("implode: unexpected value %T", v))
		}
		stack = append(stack, j)
	}
	slices.Reverse(stack[start:])
	return stack
}

func (im *imploder) scalar(p string) (ir.Scalar, error) {
	d, err := fs.ReadFile(im.fsys, p)
	if err != nil {
		return "", err
	}
	im.log.Debug("scalar", "path", p, "size", len(d))
	text := strings.TrimRightFunc(string(d), unicode.IsSpace)
	var s ir.Scalar
	if im.canonical {
		s, err = parse.Canonical(text)
	} else {
		s, err = parse.Scalar(text)
	}
	if err == nil {
		return s, nil
	}
	if im.bare && utf8.ValidString(text) {
		return ir.FromString(text), nil
	}
	return "", fmt.Errorf("%s: %w", p, err)
}
