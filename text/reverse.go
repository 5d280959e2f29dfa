package text

// Reverse returns a Text with the same scalar values in reverse order.
//
// Reversal is rune-granular, not byte-granular: each value's own
// multi-byte encoding is emitted intact, only the order of values flips.
// The output is assembled in a single forward pass that fills a buffer of
// the already-known total byte length from the back, so no reallocation
// occurs during assembly.
//
// Known hazard: reversal can move a combining mark ahead of the base
// character it followed, changing how the result renders. The output is
// still valid UTF-8; this is rune-level reversal working as documented.
func (t Text) Reverse() Text {
	if len(t.s) < 2 {
		return t
	}

	out := make([]byte, len(t.s))
	i := len(out)
	it := t.Runes()
	for it.Next() {
		i -= it.Size()
		copy(out[i:], t.s[it.Offset():it.Offset()+it.Size()])
	}
	return sealBytes(out)
}
