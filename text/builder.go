package text

import "unicode/utf8"

// Builder provides efficient incremental construction of a Text from
// already-validated fragments.
//
// A Builder has a single owner and is strictly sequential: it is not safe
// for concurrent use, and Build seals it exactly once. Any write after
// Build panics. Because the only inputs are Texts and scalar values, the
// accumulated bytes are valid UTF-8 by construction and sealing performs
// no validation.
type Builder struct {
	buf    []byte
	sealed bool
}

// NewBuilder creates an empty builder. Call Grow to pre-size it when the
// final byte length is known or estimable.
func NewBuilder() *Builder {
	return &Builder{}
}

// Grow reserves capacity for at least n more bytes.
func (b *Builder) Grow(n int) {
	b.check()
	if n <= 0 {
		return
	}
	if cap(b.buf)-len(b.buf) < n {
		next := make([]byte, len(b.buf), len(b.buf)+n)
		copy(next, b.buf)
		b.buf = next
	}
}

// WriteText appends the bytes of t.
func (b *Builder) WriteText(t Text) {
	b.check()
	b.buf = append(b.buf, t.s...)
}

// WriteRune appends the encoding of a single scalar value.
// Non-scalar input appends U+FFFD, matching Singleton.
func (b *Builder) WriteRune(r rune) {
	b.check()
	b.buf = utf8.AppendRune(b.buf, r)
}

// Append concatenates the contents of other onto b. The other builder is
// left untouched and still usable.
func (b *Builder) Append(other *Builder) {
	b.check()
	b.buf = append(b.buf, other.buf...)
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Build seals the builder into an immutable Text. The builder must not be
// used afterwards; any further call panics.
func (b *Builder) Build() Text {
	b.check()
	b.sealed = true
	buf := b.buf
	b.buf = nil
	return sealBytes(buf)
}

func (b *Builder) check() {
	if b.sealed {
		panic("text: Builder used after Build")
	}
}
