package compactbitset

import (
	"io"
)

// FromString returns a BitSet of capacity n parsed from s. Character j of
// the parsed window populates bit j; characters are consumed until the
// window, the source or the capacity runs out, and any bit beyond the last
// consumed character stays 0.
//
// It returns *ErrOutOfRange when the offset lies past the end of s (skipped
// for capacity 0) and *ErrInvalidCharacter on the first character outside
// the zero/one alphabet.
func FromString(n int, s string, opts ...CodecOption) (*BitSet, error) {
	o := defaultCodecOptions()
	for _, fn := range opts {
		fn(&o)
	}

	b := New(n)
	if n == 0 {
		return b, nil
	}
	if o.offset >= len(s) {
		return nil, &ErrOutOfRange{Pos: o.offset, Len: len(s)}
	}

	count := len(s) - o.offset
	if o.limit >= 0 && o.limit < count {
		count = o.limit
	}
	if n < count {
		count = n
	}

	for j := 0; j < count; j++ {
		switch ch := s[o.offset+j]; ch {
		case o.one:
			b.data[j>>3] |= 1 << (j & 7)
		case o.zero:
			// already 0
		default:
			return nil, &ErrInvalidCharacter{Char: ch, Pos: o.offset + j}
		}
	}
	return b, nil
}

// Format renders the set as exactly Len() characters, character i encoding
// bit i. Offset and limit options are parsing concerns and ignored here.
func (b *BitSet) Format(opts ...CodecOption) string {
	o := defaultCodecOptions()
	for _, fn := range opts {
		fn(&o)
	}

	buf := make([]byte, b.n)
	for i := range buf {
		buf[i] = o.zero
	}
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		buf[i] = o.one
	}
	return string(buf)
}

// String implements fmt.Stringer using the default '0'/'1' alphabet.
func (b *BitSet) String() string { return b.Format() }

// MarshalText implements encoding.TextMarshaler using the default alphabet.
func (b *BitSet) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is
// reinitialized with capacity len(text); every character must belong to the
// default alphabet.
func (b *BitSet) UnmarshalText(text []byte) error {
	parsed, err := FromString(len(text), string(text))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

// ScanFrom resets b and then greedily consumes bit characters from r,
// assigning them positionally starting at bit 0. It stops at end of input,
// at capacity, or at the first byte outside the alphabet — that byte is
// unread and stays available on the stream.
//
// It returns the number of bits consumed. Consuming nothing while the
// capacity is non-zero returns ErrNoInput; a partial read is not an error,
// the remaining bits simply stay 0.
func (b *BitSet) ScanFrom(r io.ByteScanner, opts ...CodecOption) (int, error) {
	o := defaultCodecOptions()
	for _, fn := range opts {
		fn(&o)
	}

	b.ClearAll()
	i := 0
	for i < b.n {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return i, err
		}
		if c != o.zero && c != o.one {
			// Leave the mismatching byte on the stream.
			if err := r.UnreadByte(); err != nil {
				return i, err
			}
			break
		}
		if c == o.one {
			b.data[i>>3] |= 1 << (i & 7)
		}
		i++
	}
	if b.n > 0 && i == 0 {
		return 0, ErrNoInput
	}
	return i, nil
}
