package text

import "unicode/utf8"

// RuneIterator iterates over the scalar values of a Text front to back.
type RuneIterator struct {
	t       Text
	offset  int
	current rune
	size    int
}

// Runes returns an iterator over all scalar values in the text.
func (t Text) Runes() *RuneIterator {
	return &RuneIterator{t: t}
}

// Next advances to the next scalar value.
// Returns true if there is one, false if iteration is complete.
func (it *RuneIterator) Next() bool {
	it.offset += it.size
	if it.offset >= len(it.t.s) {
		return false
	}
	it.current, it.size = utf8.DecodeRuneInString(it.t.s[it.offset:])
	return true
}

// Rune returns the current scalar value.
func (it *RuneIterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current scalar value's encoding.
func (it *RuneIterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the current scalar value.
func (it *RuneIterator) Offset() int {
	return it.offset
}

// ReverseRuneIterator iterates over scalar values in reverse order.
type ReverseRuneIterator struct {
	t       Text
	offset  int
	current rune
	size    int
}

// ReverseRunes returns an iterator over scalar values back to front.
func (t Text) ReverseRunes() *ReverseRuneIterator {
	return &ReverseRuneIterator{t: t, offset: len(t.s)}
}

// Next moves to the previous scalar value (advances the reverse iteration).
// Returns true if there is one, false if iteration is complete.
func (it *ReverseRuneIterator) Next() bool {
	if it.offset == 0 {
		return false
	}
	it.current, it.size = utf8.DecodeLastRuneInString(it.t.s[:it.offset])
	it.offset -= it.size
	return true
}

// Rune returns the current scalar value.
func (it *ReverseRuneIterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current scalar value's encoding.
func (it *ReverseRuneIterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the start of the current scalar value.
func (it *ReverseRuneIterator) Offset() int {
	return it.offset
}
