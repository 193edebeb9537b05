package compactbitset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned by ScanFrom when the capacity is non-zero and
	// not a single bit character could be consumed from the stream. Partial
	// reads are not an error; only a completely empty read is.
	ErrNoInput = errors.New("no bit characters consumed")
)

// ErrOutOfRange indicates a position beyond the valid range: a bit index
// >= Len() passed to a checked accessor, or a string offset past the end of
// the source during parsing.
type ErrOutOfRange struct {
	Pos int
	Len int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("position %d out of range for length %d", e.Pos, e.Len)
}

// ErrOverflow indicates an integer conversion on a BitSet whose capacity
// exceeds the destination width. The check runs before any extraction; no
// silent truncation happens.
type ErrOverflow struct {
	Len   int
	Width int
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("bitset of length %d cannot be represented in %d bits", e.Len, e.Width)
}

// ErrInvalidCharacter indicates a character outside the configured
// zero/one alphabet during eager string parsing.
type ErrInvalidCharacter struct {
	Char byte
	Pos  int
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}
