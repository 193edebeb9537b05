package compactbitset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_PositionalMapping(t *testing.T) {
	// Character i encodes bit i: lowest position first.
	b := New(11)
	require.NoError(t, b.Set(10))
	require.NoError(t, b.Set(0))

	assert.Equal(t, "10000000001", b.String())
}

func TestFormat_Alphabet(t *testing.T) {
	b := FromUint(5, 0b10101)
	assert.Equal(t, "10101", b.String())
	assert.Equal(t, "x.x.x", b.Format(WithAlphabet('.', 'x')))
}

func TestFromString(t *testing.T) {
	t.Run("round trip padded to capacity", func(t *testing.T) {
		for _, s := range []string{"", "1", "0110", "10000000001"} {
			for _, n := range []int{len(s), len(s) + 1, len(s) + 9, 64} {
				b, err := FromString(n, s)
				if len(s) == 0 && n > 0 {
					// Empty source with non-zero capacity: offset 0 is
					// already past the end.
					require.Error(t, err, "s=%q n=%d", s, n)
					continue
				}
				require.NoError(t, err, "s=%q n=%d", s, n)

				want := s + strings.Repeat("0", n-len(s))
				assert.Equal(t, want, b.String(), "s=%q n=%d", s, n)
			}
		}
	})

	t.Run("capacity truncates the source", func(t *testing.T) {
		b, err := FromString(3, "11111")
		require.NoError(t, err)
		assert.Equal(t, "111", b.String())
	})

	t.Run("offset past source fails", func(t *testing.T) {
		_, err := FromString(4, "01", WithOffset(2))
		require.Error(t, err)

		var oor *ErrOutOfRange
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, 2, oor.Pos)
		assert.Equal(t, 2, oor.Len)
	})

	t.Run("offset check skipped at capacity 0", func(t *testing.T) {
		b, err := FromString(0, "01", WithOffset(99))
		require.NoError(t, err)
		assert.Zero(t, b.Len())
	})

	t.Run("offset and limit select a window", func(t *testing.T) {
		b, err := FromString(4, "xx0110", WithOffset(2), WithLimit(3))
		require.NoError(t, err)
		assert.Equal(t, "0110", b.String()) // "011" copied, bit 3 stays 0
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := FromString(8, "0102")
		require.Error(t, err)

		var inv *ErrInvalidCharacter
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, byte('2'), inv.Char)
		assert.Equal(t, 3, inv.Pos)
	})

	t.Run("custom alphabet", func(t *testing.T) {
		b, err := FromString(4, "xx..", WithAlphabet('.', 'x'))
		require.NoError(t, err)
		assert.Equal(t, "1100", b.String())

		_, err = FromString(4, "x0..", WithAlphabet('.', 'x'))
		assert.Error(t, err, "'0' is outside the configured alphabet")
	})
}

func TestScanFrom(t *testing.T) {
	t.Run("partial input leaves high bits clear", func(t *testing.T) {
		b := New(20)
		r := strings.NewReader("01010100110")

		n, err := b.ScanFrom(r)
		require.NoError(t, err)
		assert.Equal(t, 11, n)

		assert.Equal(t, "01010100110"+strings.Repeat("0", 9), b.String())
		for i := 11; i < 20; i++ {
			assert.False(t, b.Bit(i), "bit %d", i)
		}
	})

	t.Run("stops at mismatch without consuming it", func(t *testing.T) {
		b := New(8)
		r := strings.NewReader("101x01")

		n, err := b.ScanFrom(r)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, "10100000", b.String())

		c, err := r.ReadByte()
		require.NoError(t, err)
		assert.Equal(t, byte('x'), c, "the mismatching byte stays on the stream")
	})

	t.Run("stops at capacity", func(t *testing.T) {
		b := New(4)
		r := strings.NewReader("111111")

		n, err := b.ScanFrom(r)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		c, err := r.ReadByte()
		require.NoError(t, err)
		assert.Equal(t, byte('1'), c)
	})

	t.Run("zero consumed fails", func(t *testing.T) {
		b := New(8)

		n, err := b.ScanFrom(strings.NewReader("x1010"))
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, ErrNoInput)

		n, err = b.ScanFrom(strings.NewReader(""))
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("single character is a valid partial read", func(t *testing.T) {
		// The failure rule is "zero consumed", not "first mismatch":
		// one good character followed by garbage succeeds.
		b := New(8)
		n, err := b.ScanFrom(strings.NewReader("1x"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, b.Bit(0))
	})

	t.Run("zero capacity consumes nothing and succeeds", func(t *testing.T) {
		b := New(0)
		r := strings.NewReader("101")

		n, err := b.ScanFrom(r)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 3, r.Len(), "stream untouched")
	})

	t.Run("resets previous contents", func(t *testing.T) {
		b := New(8)
		b.SetAll()

		_, err := b.ScanFrom(strings.NewReader("10"))
		require.NoError(t, err)
		assert.Equal(t, "10000000", b.String())
	})

	t.Run("custom alphabet", func(t *testing.T) {
		b := New(4)
		n, err := b.ScanFrom(strings.NewReader("x.x1"), WithAlphabet('.', 'x'))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, "1010", b.String())
	})
}

func TestTextMarshaling(t *testing.T) {
	b := FromUint(12, 0xA5F)

	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, b.String(), string(text))

	var back BitSet
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, b.Equal(&back))

	assert.Error(t, back.UnmarshalText([]byte("01x")))
}
