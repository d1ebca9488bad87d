package explode

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/keyorder"
	"github.com/explodesh/explodesh/parse"

	"github.com/google/go-cmp/cmp"
)

const browsersDoc = `
foo = "hello"
bar = 1
baz = true

[[browsers]]
id = "firefox"

[[browsers]]
id = "chrome"

[table]
field1 = "value1"
field2 = "value2"
`

func mustParse(t *testing.T, doc string) *ir.Table {
	t.Helper()
	tbl, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

// tree lists dest as slash separated paths mapped to file content, with
// directories mapped to "/".
func tree(t *testing.T, dest string) map[string]string {
	t.Helper()
	res := map[string]string{}
	err := filepath.WalkDir(dest, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dest, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			res[rel] = "/"
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		res[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestExplodeExample(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	if err := Explode(context.Background(), mustParse(t, browsersDoc), dest); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"foo":           `"hello"`,
		"bar":           "1",
		"baz":           "true",
		"browsers":      "/",
		"browsers/0":    "/",
		"browsers/0/id": `"firefox"`,
		"browsers/1":    "/",
		"browsers/1/id": `"chrome"`,
		"table":         "/",
		"table/field1":  `"value1"`,
		"table/field2":  `"value2"`,
	}
	if diff := cmp.Diff(want, tree(t, dest)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestExplodeScalarFidelity(t *testing.T) {
	doc := `
s = "tab\there \"q\""
lit = 'C:\path'
n = -17
f = 6.5e-3
inf = -inf
d = 1979-05-27T07:32:00-08:00
ld = 1979-05-27
lt = 07:32:00.5
arr = [1, "two", 3.0]
`
	root := mustParse(t, doc)
	dest := t.TempDir()
	if err := Explode(context.Background(), root, dest); err != nil {
		t.Fatal(err)
	}
	got := tree(t, dest)
	for k, v := range root.All() {
		switch v := v.(type) {
		case ir.Scalar:
			if got[k] != v.Text() {
				t.Errorf("%s: file holds %q, want %q", k, got[k], v.Text())
			}
		case ir.Array:
			for i, e := range v {
				name := k + "/" + string(rune('0'+i))
				if got[name] != e.(ir.Scalar).Text() {
					t.Errorf("%s: file holds %q, want %q", name, got[name], e)
				}
			}
		}
	}
}

func TestExplodeNaming(t *testing.T) {
	tests := []struct {
		key  string
		path string
	}{
		{"a/b", "$"},
		{"", "$"},
		{".", "$"},
		{"..", "$"},
		{"nul\x00", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			root := ir.MustKeyVals(
				ir.KeyVal{Key: "first", Val: ir.FromInt(1)},
				ir.KeyVal{Key: tt.key, Val: ir.FromInt(2)},
				ir.KeyVal{Key: "last", Val: ir.FromInt(3)},
			)
			dest := t.TempDir()
			err := Explode(context.Background(), root, dest)
			if !errors.Is(err, ErrNaming) {
				t.Fatalf("expected ErrNaming, got %v", err)
			}
			var ne *NamingError
			if !errors.As(err, &ne) {
				t.Fatalf("expected *NamingError, got %T", err)
			}
			if ne.Key != tt.key || ne.Path != tt.path {
				t.Errorf("NamingError = %+v", ne)
			}
			got := tree(t, dest)
			if got["first"] != "1" {
				t.Errorf("entry written before the bad key is gone: %v", got)
			}
			if _, ok := got["last"]; ok {
				t.Errorf("entry after the bad key was written")
			}
		})
	}
}

func TestExplodeNestedNamingPath(t *testing.T) {
	root := mustParse(t, `[t]
"x/y" = 1
`)
	err := Explode(context.Background(), root, t.TempDir())
	var ne *NamingError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *NamingError, got %v", err)
	}
	if ne.Path != "$.t" {
		t.Errorf("path = %s", ne.Path)
	}
}

func TestExplodeEmptyContainers(t *testing.T) {
	root := mustParse(t, "a = []\n[t]\n")
	dest := t.TempDir()
	if err := Explode(context.Background(), root, dest); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"a": "/", "t": "/"}
	if diff := cmp.Diff(want, tree(t, dest)); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
}

func TestExplodeDest(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	t.Run("not empty", func(t *testing.T) {
		dest := t.TempDir()
		if err := os.WriteFile(filepath.Join(dest, "x"), nil, 0644); err != nil {
			t.Fatal(err)
		}
		if err := Explode(context.Background(), root, dest); !errors.Is(err, ErrDestNotEmpty) {
			t.Errorf("expected ErrDestNotEmpty, got %v", err)
		}
	})
	t.Run("file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "f")
		if err := os.WriteFile(dest, nil, 0644); err != nil {
			t.Fatal(err)
		}
		if err := Explode(context.Background(), root, dest); !errors.Is(err, ErrNotDir) {
			t.Errorf("expected ErrNotDir, got %v", err)
		}
	})
	t.Run("missing parents", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "p", "q")
		if err := Explode(context.Background(), root, dest); err != nil {
			t.Fatal(err)
		}
		if got := tree(t, dest)["a"]; got != "1" {
			t.Errorf("a = %q", got)
		}
	})
}

func TestExplodeKeyOrder(t *testing.T) {
	root := mustParse(t, "z = 1\na = 2\n[t]\nonly = 1\n")
	dest := t.TempDir()
	if err := Explode(context.Background(), root, dest, WithKeyOrder(true)); err != nil {
		t.Fatal(err)
	}
	keys, ok, err := keyorder.Read(os.DirFS(dest), ".")
	if err != nil || !ok {
		t.Fatalf("root manifest: %v %v", ok, err)
	}
	if !slices.Equal(keys, []string{"z", "a", "t"}) {
		t.Errorf("root manifest keys = %v", keys)
	}
	if _, ok, _ := keyorder.Read(os.DirFS(dest), "t"); ok {
		t.Error("single key table has a manifest")
	}
}

func TestExplodeReservedManifestName(t *testing.T) {
	root := ir.MustKeyVals(
		ir.KeyVal{Key: keyorder.FileName, Val: ir.FromInt(1)},
		ir.KeyVal{Key: "b", Val: ir.FromInt(2)},
	)
	for _, ordered := range []bool{false, true} {
		err := Explode(context.Background(), root, t.TempDir(), WithKeyOrder(ordered))
		if !errors.Is(err, ErrNaming) {
			t.Errorf("ordered=%t: expected ErrNaming, got %v", ordered, err)
		}
	}
}

func TestExplodeNumericKeyManifest(t *testing.T) {
	root := mustParse(t, `[t]
0 = 1
[u]
x = 1
`)
	dest := t.TempDir()
	if err := Explode(context.Background(), root, dest, WithKeyOrder(true)); err != nil {
		t.Fatal(err)
	}
	keys, ok, err := keyorder.Read(os.DirFS(dest), "t")
	if err != nil || !ok {
		t.Fatalf("t manifest: %v %v", ok, err)
	}
	if !slices.Equal(keys, []string{"0"}) {
		t.Errorf("t manifest keys = %v", keys)
	}
	if _, ok, _ := keyorder.Read(os.DirFS(dest), "u"); ok {
		t.Error("single non-numeric key table has a manifest")
	}
}

func TestExplodeDeep(t *testing.T) {
	const depth = 500
	var v ir.Value = ir.FromInt(1)
	for range depth {
		v = ir.MustKeyVals(ir.KeyVal{Key: "a", Val: v})
	}
	dest := t.TempDir()
	if err := Explode(context.Background(), v.(*ir.Table), dest); err != nil {
		t.Fatal(err)
	}
	p := dest + strings.Repeat("/a", depth)
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "1" {
		t.Errorf("deepest file holds %q", d)
	}
}

func TestExplodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Explode(ctx, mustParse(t, browsersDoc), t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
