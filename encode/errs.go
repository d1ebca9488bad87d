package encode

import "errors"

var (
	ErrInvalidOutput = errors.New("encoded document does not decode")
	ErrUnencodable   = errors.New("value cannot be encoded")
)
