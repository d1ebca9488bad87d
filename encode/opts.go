package encode

import "github.com/explodesh/explodesh/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeVerify re-decodes TOML output before writing it. On by default.
func EncodeVerify(v bool) EncodeOption {
	return func(es *EncState) { es.verify = v }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
