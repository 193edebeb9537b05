package compactbitset

type codecOptions struct {
	zero   byte
	one    byte
	offset int
	limit  int // -1 means "until the end of the source"
}

func defaultCodecOptions() codecOptions {
	return codecOptions{zero: '0', one: '1', limit: -1}
}

// CodecOption configures the textual codec: the zero/one alphabet and,
// for parsing, the window of the source string to read.
type CodecOption func(*codecOptions)

// WithAlphabet overrides the characters representing an unset and a set
// bit. The defaults are '0' and '1'.
func WithAlphabet(zero, one byte) CodecOption {
	return func(o *codecOptions) {
		o.zero = zero
		o.one = one
	}
}

// WithOffset starts parsing at the given position of the source string
// instead of position 0.
func WithOffset(pos int) CodecOption {
	return func(o *codecOptions) {
		o.offset = pos
	}
}

// WithLimit caps the number of characters consumed from the source string.
func WithLimit(n int) CodecOption {
	return func(o *codecOptions) {
		o.limit = n
	}
}
