package implode

import "log/slog"

type implodeOpts struct {
	warn      func(*Ambiguity)
	strict    bool
	bare      bool
	canonical bool
	log       *slog.Logger
}

type ImplodeOption func(*implodeOpts)

// Warn sets the function called for each ambiguous directory.
func Warn(f func(*Ambiguity)) ImplodeOption {
	return func(o *implodeOpts) { o.warn = f }
}

// Strict makes ambiguous directories an error.
func Strict(v bool) ImplodeOption {
	return func(o *implodeOpts) { o.strict = v }
}

// Bare reads file content that is not a TOML scalar as a plain string.
func Bare(v bool) ImplodeOption {
	return func(o *implodeOpts) { o.bare = v }
}

// Canonical rewrites every scalar to its canonical text.
func Canonical(v bool) ImplodeOption {
	return func(o *implodeOpts) { o.canonical = v }
}

// WithLogger logs each entry read at debug level.
func WithLogger(l *slog.Logger) ImplodeOption {
	return func(o *implodeOpts) { o.log = l }
}
