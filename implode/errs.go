package implode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/explodesh/explodesh/parse"
)

var (
	ErrAmbiguous        = errors.New("ambiguous directory")
	ErrUnsupportedEntry = errors.New("unsupported entry")
	ErrNotDir           = errors.New("not a directory")
	ErrBadName          = errors.New("entry name is not valid UTF-8")

	// ErrScalar is returned for file content that is not one TOML scalar.
	ErrScalar = parse.ErrScalar
)

// Ambiguity describes a directory whose names partially look like array
// indices. It is imploded as a table.
type Ambiguity struct {
	Path  string
	Names []string
	// Mixed is set when some names are not numeric at all; otherwise the
	// numeric names have gaps or leading zeros.
	Mixed bool
}

func (a *Ambiguity) Error() string {
	why := "numeric names are not a dense index range"
	if a.Mixed {
		why = "numeric and non-numeric names"
	}
	return fmt.Sprintf("%s %s: %s [%s], read as table", ErrAmbiguous, a.Path, why, strings.Join(a.Names, " "))
}

func (a *Ambiguity) Unwrap() error {
	return ErrAmbiguous
}
