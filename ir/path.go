package ir

import (
	"strconv"
	"strings"
)

// RootPath is the path of a document's root table.
const RootPath = "$"

// FieldPath extends a JSONPath style path with a table key.
func FieldPath(parent, field string) string {
	prefix := parent + "."
	if field != "" && strings.IndexAny(field, "'.*$[] ") == -1 {
		return prefix + field
	}
	return prefix + "'" + strings.ReplaceAll(field, "'", "\\'") + "'"
}

// IndexPath extends a JSONPath style path with an array index.
func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
