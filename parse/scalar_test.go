package parse

import (
	"errors"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func TestScalarValid(t *testing.T) {
	for in, want := range map[string]string{
		`"hello"`:                   `"hello"`,
		"\"hello\"\n":               `"hello"`,
		"42":                        "42",
		"0x2A":                      "0x2A",
		"true":                      "true",
		"3.14":                      "3.14",
		"1979-05-27T07:32:00-08:00": "1979-05-27T07:32:00-08:00",
		`'literal'`:                 `'literal'`,
	} {
		got, err := Scalar(in)
		if err != nil {
			t.Errorf("Scalar(%q): %v", in, err)
			continue
		}
		if got.Text() != want {
			t.Errorf("Scalar(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestScalarInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		`"unterminated`,
		"[1, 2]",
		"{ a = 1 }",
		"1 # comment",
		"1\nx = 2",
		"99999999999999999999",
	} {
		if _, err := Scalar(in); !errors.Is(err, ErrScalar) {
			t.Errorf("Scalar(%q): expected ErrScalar, got %v", in, err)
		}
	}
}

func TestCanonical(t *testing.T) {
	for in, want := range map[string]string{
		"0x2A":                             "42",
		"+7":                               "7",
		"'x'":                              `"x"`,
		"1e3":                              "1000.0",
		"+inf":                             "inf",
		"1979-05-27 07:32:00Z":             "1979-05-27T07:32:00Z",
		"1979-05-27T00:32:00.999999-07:00": "1979-05-27T00:32:00.999999-07:00",
	} {
		got, err := Canonical(in)
		if err != nil {
			t.Errorf("Canonical(%q): %v", in, err)
			continue
		}
		if got.Text() != want {
			t.Errorf("Canonical(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`"a"`, "a"},
		{"1", int64(1)},
		{"1.5", 1.5},
		{"false", false},
		{"1979-05-27", toml.LocalDate{Year: 1979, Month: 5, Day: 27}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Decode(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
	got, err := Decode("1979-05-27T07:32:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(time.Time); !ok {
		t.Errorf("offset date-time decoded to %T", got)
	}
}
