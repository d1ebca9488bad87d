package libdiff

import (
	"bytes"
	"testing"

	"github.com/explodesh/explodesh/ir"
	"github.com/explodesh/explodesh/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, doc string) *ir.Table {
	t.Helper()
	tbl, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestLines(t *testing.T) {
	from := "a = 1\nb = 2\nc = 3\n"
	to := "a = 1\nb = 20\nc = 3\n"
	diffs := Lines(from, to)
	if !Changed(diffs) {
		t.Fatal("no change found")
	}
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, diffs, -1, false); err != nil {
		t.Fatal(err)
	}
	want := "  a = 1\n- b = 2\n+ b = 20\n  c = 3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteLines (-want +got):\n%s", diff)
	}
	if Changed(Lines(from, from)) {
		t.Error("identical texts reported as changed")
	}
}

func TestWriteLinesContext(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n"
	to := "1\n2\n3\nfour\n5\n6\n7\n"
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, Lines(from, to), 1, false); err != nil {
		t.Fatal(err)
	}
	want := "@@\n  3\n- 4\n+ four\n  5\n@@\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteLines (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "x = 1\ny = [1, 2]\n")
	b := mustParse(t, "y = [1, 2]\nx = 1\n")
	c := mustParse(t, "y = [2, 1]\nx = 1\n")
	if eq, err := Equal(a, b); err != nil || !eq {
		t.Errorf("Equal(a, b) = %v, %v", eq, err)
	}
	if eq, err := Equal(a, c); err != nil || eq {
		t.Errorf("Equal(a, c) = %v, %v", eq, err)
	}
}

func TestMergePatch(t *testing.T) {
	from := mustParse(t, "keep = 1\ndrop = 2\n[t]\nv = \"a\"\n")
	to := mustParse(t, "keep = 1\nadd = true\n[t]\nv = \"b\"\n")
	patch, err := MergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"add":true,"drop":null,"t":{"v":"b"}}`
	if !jsonpatch.Equal(patch, []byte(want)) {
		t.Errorf("patch = %s, want %s", patch, want)
	}
	got, err := ApplyMergePatch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	jt, err := JSON(to)
	if err != nil {
		t.Fatal(err)
	}
	if !jsonpatch.Equal(got, jt) {
		t.Errorf("patched = %s, want %s", got, jt)
	}
}
