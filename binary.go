package compactbitset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteTo writes the set to w as a little-endian uint64 capacity header
// followed by the backing word bytes. It implements io.WriterTo.
func (b *BitSet) WriteTo(w io.Writer) (int64, error) {
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(b.n))

	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, err
	}

	n, err = w.Write(b.data)
	return written + int64(n), err
}

// ReadFrom reinitializes the set from the serialized form produced by
// WriteTo: the capacity is taken from the header and the geometry rebuilt
// from it, so the receiver's previous capacity does not matter. The padding
// invariant is re-established after reading, so a corrupted tail cannot
// leak into All, Equal or Hash. It implements io.ReaderFrom.
func (b *BitSet) ReadFrom(r io.Reader) (int64, error) {
	var hdr [8]byte
	n, err := io.ReadFull(r, hdr[:])
	read := int64(n)
	if err != nil {
		return read, err
	}

	size := binary.LittleEndian.Uint64(hdr[:])
	if size > uint64(math.MaxInt) {
		return read, fmt.Errorf("capacity %d does not fit the platform int", size)
	}

	fresh := New(int(size))
	n, err = io.ReadFull(r, fresh.data)
	read += int64(n)
	if err != nil {
		return read, err
	}
	fresh.maskTail()

	*b = *fresh
	return read, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the WriteTo wire
// form.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(8 + len(b.data))
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}
