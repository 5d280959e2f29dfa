package text

// Span splits the text into its maximal front run of scalar values
// satisfying p and the remainder, which begins at the first failing value.
// Concatenating the two halves reproduces t byte-for-byte.
//
// The remainder is computed first by consuming from the front; the
// matching prefix is then the complementary zero-copy byte range.
func (t Text) Span(p func(rune) bool) (Text, Text) {
	rest := t.DropWhile(p)
	return t.takeBytes(t.Len() - rest.Len()), rest
}

// TakeWhile returns the maximal front run of scalar values satisfying p.
func (t Text) TakeWhile(p func(rune) bool) Text {
	prefix, _ := t.Span(p)
	return prefix
}

// DropWhile removes the maximal front run of scalar values satisfying p.
// Exhaustion yields the canonical Empty.
func (t Text) DropWhile(p func(rune) bool) Text {
	for {
		r, rest, ok := t.DecodeFront()
		if !ok {
			return Empty
		}
		if !p(r) {
			return t
		}
		t = rest
	}
}

// DropWhileEnd removes the maximal trailing run of scalar values
// satisfying p. Exhaustion yields the canonical Empty.
func (t Text) DropWhileEnd(p func(rune) bool) Text {
	for {
		rest, r, ok := t.DecodeBack()
		if !ok {
			return Empty
		}
		if !p(r) {
			return t
		}
		t = rest
	}
}

// TakeWhileEnd returns the maximal suffix of scalar values all satisfying
// p, as the byte-range complement of DropWhileEnd.
//
// A single failing value at the very end collapses the result to Empty no
// matter how much of the text matches earlier.
func (t Text) TakeWhileEnd(p func(rune) bool) Text {
	kept := t.DropWhileEnd(p)
	return t.dropBytes(kept.Len())
}

// Filter keeps the scalar values satisfying p, in order.
//
// When every value satisfies p the receiver itself is returned: no
// allocation, and the result is the same value as the input, not merely an
// equal one. Otherwise the result is rebuilt by alternately appending the
// next maximal matching run and skipping exactly one failing value.
func (t Text) Filter(p func(rune) bool) Text {
	match, rest := t.Span(p)
	if rest.IsEmpty() {
		return t
	}

	b := NewBuilder()
	// Sized for the common case of removing a handful of values.
	b.Grow(t.Len() - 1)
	b.WriteText(match)
	for {
		// rest starts with a value failing p; skip exactly one.
		_, after, _ := rest.DecodeFront()
		match, rest = after.Span(p)
		b.WriteText(match)
		if rest.IsEmpty() {
			return b.Build()
		}
	}
}

// ConcatMap maps every scalar value through f and concatenates the
// resulting fragments in original order.
func (t Text) ConcatMap(f func(rune) Text) Text {
	b := NewBuilder()
	b.Grow(t.Len())
	rest := t
	for {
		r, next, ok := rest.DecodeFront()
		if !ok {
			return b.Build()
		}
		b.WriteText(f(r))
		rest = next
	}
}
