package text

import "unicode/utf8"

// DecodeFront decodes the first scalar value, returning it together with
// the remainder of the text. The remainder shares storage with t.
// Returns ok=false on empty input.
func (t Text) DecodeFront() (r rune, rest Text, ok bool) {
	if len(t.s) == 0 {
		return 0, Empty, false
	}
	r, size := utf8.DecodeRuneInString(t.s)
	return r, t.dropBytes(size), true
}

// DecodeBack decodes the last scalar value, returning the remainder of the
// text together with it. The remainder shares storage with t.
// Returns ok=false on empty input.
func (t Text) DecodeBack() (rest Text, r rune, ok bool) {
	if len(t.s) == 0 {
		return Empty, 0, false
	}
	r, size := utf8.DecodeLastRuneInString(t.s)
	return t.takeBytes(len(t.s) - size), r, true
}

// encodedRune is a single scalar value packed into its 1-4 byte UTF-8
// encoding. The byte count matches UTF-8's length classes: 1 byte for
// U+0000-U+007F, 2 for U+0080-U+07FF, 3 for U+0800-U+FFFF excluding
// surrogates, 4 for U+10000-U+10FFFF.
type encodedRune struct {
	buf [utf8.UTFMax]byte
	n   int
}

// encodeRune packs r. Values that are not scalar values (surrogate halves,
// out-of-range runes) encode as U+FFFD, matching utf8.EncodeRune.
func encodeRune(r rune) encodedRune {
	var e encodedRune
	e.n = utf8.EncodeRune(e.buf[:], r)
	return e
}

// Singleton returns a Text containing exactly one scalar value.
//
// The fixed-size encoding is wrapped directly; the streaming Builder is
// bypassed since its overhead dominates at this size. Non-scalar input
// yields the text for U+FFFD.
func Singleton(r rune) Text {
	e := encodeRune(r)
	return Text{s: string(e.buf[:e.n])}
}
