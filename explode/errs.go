package explode

import (
	"errors"
	"fmt"
)

var (
	ErrDestNotEmpty = errors.New("destination is not empty")
	ErrNotDir       = errors.New("not a directory")
	ErrNaming       = errors.New("invalid entry name")
)

// NamingError reports a table key that cannot be used as a file name.
type NamingError struct {
	// Path is the document path of the table holding Key.
	Path string
	Key  string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("%s: key %q in %s", ErrNaming, e.Key, e.Path)
}

func (e *NamingError) Unwrap() error {
	return ErrNaming
}
