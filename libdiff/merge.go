package libdiff

import (
	"bytes"
	"fmt"

	"github.com/explodesh/explodesh/encode"
	"github.com/explodesh/explodesh/format"
	"github.com/explodesh/explodesh/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSON renders t as JSON with keys in table order.
func JSON(t *ir.Table) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(0)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Equal compares the JSON renderings of a and b, ignoring key order.
func Equal(a, b *ir.Table) (bool, error) {
	ja, err := JSON(a)
	if err != nil {
		return false, err
	}
	jb, err := JSON(b)
	if err != nil {
		return false, err
	}
	return jsonpatch.Equal(ja, jb), nil
}

// MergePatch returns the RFC 7386 merge patch taking from to to.
func MergePatch(from, to *ir.Table) ([]byte, error) {
	jf, err := JSON(from)
	if err != nil {
		return nil, err
	}
	jt, err := JSON(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(jf, jt)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies a merge patch to the JSON rendering of doc and
// returns the resulting JSON.
func ApplyMergePatch(doc *ir.Table, patch []byte) ([]byte, error) {
	jd, err := JSON(doc)
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(jd, patch)
}
