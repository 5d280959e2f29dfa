// Package text provides a codepoint-level view over immutable, validated
// UTF-8 byte buffers.
//
// A Text is a sequence of Unicode scalar values backed by a flat UTF-8
// buffer. Callers index, slice, fold, filter, and reverse at rune
// granularity while storage stays byte-addressed: sub-slices share their
// origin's storage and no operation ever produces an invalid encoding.
//
// Key properties:
//   - Validation happens once, at construction; everything downstream
//     slices only at rune boundaries already known to be valid
//   - Slicing is zero-copy; complementary halves concatenate back to the
//     original byte-for-byte
//   - All values are immutable and safe for concurrent readers
//   - Count arguments saturate instead of failing out of range
//
// Basic usage:
//
//	t, _ := text.FromString("hello")
//	prefix, suffix := t.SplitAt(2) // "he", "llo"
//	r := t.Reverse()               // "olleh"
//
// Operations work on scalar values, not grapheme clusters: Reverse and
// Filter can separate a combining mark from its base character, changing
// how the result renders even though it remains valid UTF-8.
package text
