package explode

import "log/slog"

type explodeOpts struct {
	keyOrder bool
	log      *slog.Logger
}

type ExplodeOption func(*explodeOpts)

// WithKeyOrder causes a key-order manifest to be written into every table
// directory with at least two keys.
func WithKeyOrder(v bool) ExplodeOption {
	return func(o *explodeOpts) { o.keyOrder = v }
}

// WithLogger logs each created entry at debug level.
func WithLogger(l *slog.Logger) ExplodeOption {
	return func(o *explodeOpts) { o.log = l }
}
