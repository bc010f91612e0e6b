package encode

import "github.com/confindent/go-confindent/format"

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

// Depth sets the depth the first level is written at.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeIndent replaces the canonical tab indent unit. Text written
// with another unit still parses as long as the unit is all spaces or
// all tabs.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
