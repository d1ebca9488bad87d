package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs from and to a line at a time.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Changed reports whether diffs contains an insertion or a deletion.
func Changed(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// WriteLines renders diffs with one prefixed output line per input line.
// Unchanged lines more than context lines away from a change are elided;
// a negative context keeps everything.
func WriteLines(w io.Writer, diffs []diffpatch.Diff, context int, colored bool) error {
	del, ins := fmtFunc(colored, color.FgRed), fmtFunc(colored, color.FgGreen)
	buf := bytes.NewBuffer(nil)
	for i := range diffs {
		diff := &diffs[i]
		lines := splitLines(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, ln := range lines {
				buf.WriteString(del(DeletePrefix + ln))
				buf.WriteByte('\n')
			}
		case diffpatch.DiffInsert:
			for _, ln := range lines {
				buf.WriteString(ins(InsertPrefix + ln))
				buf.WriteByte('\n')
			}
		case diffpatch.DiffEqual:
			writeEqual(buf, lines, context, i != 0, i != len(diffs)-1)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeEqual(buf *bytes.Buffer, lines []string, context int, before, after bool) {
	if context < 0 || len(lines) <= 2*context {
		for _, ln := range lines {
			buf.WriteString(EqualPrefix + ln + "\n")
		}
		return
	}
	head, tail := 0, 0
	if before {
		head = context
	}
	if after {
		tail = context
	}
	for _, ln := range lines[:head] {
		buf.WriteString(EqualPrefix + ln + "\n")
	}
	if len(lines) > head+tail {
		buf.WriteString("@@\n")
	}
	for _, ln := range lines[len(lines)-tail:] {
		buf.WriteString(EqualPrefix + ln + "\n")
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func fmtFunc(colored bool, attr color.Attribute) func(string) string {
	if !colored {
		return func(s string) string { return s }
	}
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}
