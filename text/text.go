package text

import (
	"errors"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrInvalidUTF8 is returned by FromString and FromBytes when the input
	// is not a valid UTF-8 encoding of Unicode scalar values.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrEmptyText is returned by Head, Last, Tail, and Init on empty input.
	ErrEmptyText = errors.New("empty text")
)

// Text is an immutable sequence of Unicode scalar values backed by a
// validated UTF-8 buffer. The zero value is the empty text.
//
// Every Text is valid UTF-8 by construction: the only constructors that
// accept arbitrary bytes (FromString, FromBytes) validate, and every other
// producer either encodes scalar values or slices an existing Text at rune
// boundaries.
type Text struct {
	s string
}

// Empty is the canonical empty Text. Operations whose result is logically
// empty return Empty itself, never a distinct-but-equal value, so that
// identity-based fast paths (see Filter) stay effective.
var Empty = Text{}

// FromString creates a Text from s.
// Returns ErrInvalidUTF8 if s is not valid UTF-8.
func FromString(s string) (Text, error) {
	if !utf8.ValidString(s) {
		return Empty, ErrInvalidUTF8
	}
	if len(s) == 0 {
		return Empty, nil
	}
	return Text{s: s}, nil
}

// FromBytes creates a Text from a copy of b.
// Returns ErrInvalidUTF8 if b is not valid UTF-8.
func FromBytes(b []byte) (Text, error) {
	if !utf8.Valid(b) {
		return Empty, ErrInvalidUTF8
	}
	if len(b) == 0 {
		return Empty, nil
	}
	return Text{s: string(b)}, nil
}

// Len returns the byte length of the text.
func (t Text) Len() int {
	return len(t.s)
}

// IsEmpty returns true if the text contains no scalar values.
func (t Text) IsEmpty() bool {
	return len(t.s) == 0
}

// String returns the text as a string. The string shares the text's
// storage; no copy is made.
func (t Text) String() string {
	return t.s
}

// Bytes returns a copy of the underlying bytes.
func (t Text) Bytes() []byte {
	return []byte(t.s)
}

// Equal returns true if two texts contain the same bytes.
func (t Text) Equal(other Text) bool {
	return t.s == other.s
}

// Concat concatenates two texts.
// Either operand is returned unchanged when the other is empty.
func (t Text) Concat(other Text) Text {
	if t.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return t
	}
	return Text{s: t.s + other.s}
}

// takeBytes returns the first n bytes as a zero-copy sub-slice.
// n must be a rune boundary; callers only derive it from decode steps.
func (t Text) takeBytes(n int) Text {
	if n <= 0 {
		return Empty
	}
	if n >= len(t.s) {
		return t
	}
	return Text{s: t.s[:n]}
}

// dropBytes removes the first n bytes, returning the zero-copy remainder.
// n must be a rune boundary; callers only derive it from decode steps.
func (t Text) dropBytes(n int) Text {
	if n <= 0 {
		return t
	}
	if n >= len(t.s) {
		return Empty
	}
	return Text{s: t.s[n:]}
}

// sealBytes wraps b as a Text without copying. The caller must hand over
// ownership: b is never mutated again once sealed.
func sealBytes(b []byte) Text {
	if len(b) == 0 {
		return Empty
	}
	return Text{s: unsafe.String(unsafe.SliceData(b), len(b))}
}
