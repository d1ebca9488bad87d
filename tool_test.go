package explodesh

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/explodesh/explodesh/explode"
	"github.com/explodesh/explodesh/implode"
	"github.com/explodesh/explodesh/libdiff"
	"github.com/explodesh/explodesh/parse"

	"github.com/google/go-cmp/cmp"
)

const example = `foo = "hello"
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

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestExplodeImplodeOrdered(t *testing.T) {
	src := writeFile(t, "doc.toml", example)
	dest := filepath.Join(t.TempDir(), "out")
	tool := &Tool{ExplodeOpts: []explode.ExplodeOption{explode.WithKeyOrder(true)}}
	if err := tool.ExplodeFile(context.Background(), src, dest); err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := tool.ImplodeTo(context.Background(), dest, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(example, buf.String()); diff != "" {
		t.Errorf("implode (-want +got):\n%s", diff)
	}
}

func TestExplodeParseError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out")
	err := DefaultTool().Explode(context.Background(), strings.NewReader("a = = 1"), dest)
	if !errors.Is(err, parse.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if _, err := os.Stat(dest); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("destination created for invalid input: %v", err)
	}
}

func TestLoad(t *testing.T) {
	src := writeFile(t, "doc.toml", example)
	dest := filepath.Join(t.TempDir(), "out")
	tool := DefaultTool()
	if err := tool.ExplodeFile(context.Background(), src, dest); err != nil {
		t.Fatal(err)
	}
	a, err := tool.Load(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := tool.Load(context.Background(), dest)
	if err != nil {
		t.Fatal(err)
	}
	if eq, err := libdiff.Equal(a, b); err != nil || !eq {
		t.Errorf("file and tree differ: %v %v", eq, err)
	}
	if libdiff.Changed(Diff(a, b)) {
		t.Error("normalized renderings differ")
	}
}

func TestCheck(t *testing.T) {
	tool := DefaultTool()
	res, err := tool.Check(context.Background(), writeFile(t, "ok.toml", example))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Equal || res.Diff != nil {
		t.Errorf("check reported a difference: %+v", res.Diff)
	}

	res, err = tool.Check(context.Background(), writeFile(t, "lossy.toml", "a = []\nb = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Equal {
		t.Fatal("empty array survived the round trip")
	}
	if !libdiff.Changed(res.Diff) {
		t.Error("no diff for a changed document")
	}
}

func TestCheckStrict(t *testing.T) {
	tool := &Tool{ImplodeOpts: []implode.ImplodeOption{implode.Strict(true)}}
	res, err := tool.Check(context.Background(), writeFile(t, "doc.toml", "[t]\n0 = 1\n2 = 2\n"))
	if err == nil {
		t.Fatalf("expected an ambiguity error, got %+v", res)
	}
	if !errors.Is(err, implode.ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}
