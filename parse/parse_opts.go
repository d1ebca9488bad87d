package parse

type parseOpts struct {
	sourceOrder bool
}

type ParseOption func(*parseOpts)

// SourceOrder keeps table keys in the order they first appear in the source
// text. It is on by default; when off, keys are sorted lexically.
func SourceOrder(v bool) ParseOption {
	return func(o *parseOpts) { o.sourceOrder = v }
}
