package text

// RuneCount returns the number of scalar values in the text.
// O(n) in the byte length; nothing is cached.
func (t Text) RuneCount() int {
	return Fold(t, 0, func(n int, _ rune) int { return n + 1 })
}

// CompareRuneCount compares the text's rune count against n, returning
// -1, 0, or +1, without necessarily decoding the whole text.
//
// At most min(RuneCount(t), n)+1 scalar values are read, which is the
// point over computing RuneCount directly when n is small.
func (t Text) CompareRuneCount(n int) int {
	for {
		if t.IsEmpty() {
			switch {
			case n > 0:
				return -1
			case n < 0:
				return 1
			}
			return 0
		}
		if n <= 0 {
			return 1
		}
		_, rest, _ := t.DecodeFront()
		t = rest
		n--
	}
}

// SplitAt splits the text after the first n scalar values.
// Concatenating the two halves reproduces t byte-for-byte.
//
// The suffix is computed first by consuming from the front; the prefix is
// then the complementary zero-copy byte range, so its bytes are never
// re-decoded.
func (t Text) SplitAt(n int) (Text, Text) {
	suffix := t.Drop(n)
	prefix := t.takeBytes(t.Len() - suffix.Len())
	return prefix, suffix
}

// Take returns the first n scalar values.
// n <= 0 yields Empty; n beyond the rune count yields t unchanged.
func (t Text) Take(n int) Text {
	prefix, _ := t.SplitAt(n)
	return prefix
}

// Drop removes the first n scalar values.
// n <= 0 yields t unchanged; exhaustion yields the canonical Empty.
func (t Text) Drop(n int) Text {
	for ; n > 0; n-- {
		if t.IsEmpty() {
			return Empty
		}
		_, rest, _ := t.DecodeFront()
		t = rest
	}
	return t
}

// DropEnd removes the last n scalar values.
// n <= 0 yields t unchanged; exhaustion yields the canonical Empty.
func (t Text) DropEnd(n int) Text {
	for ; n > 0; n-- {
		if t.IsEmpty() {
			return Empty
		}
		rest, _, _ := t.DecodeBack()
		t = rest
	}
	return t
}

// TakeEnd returns the last n scalar values, derived as the byte-range
// complement of DropEnd so the kept bytes are never re-decoded.
func (t Text) TakeEnd(n int) Text {
	kept := t.DropEnd(n)
	return t.dropBytes(kept.Len())
}

// Head returns the first scalar value.
// Returns ErrEmptyText on empty input.
func (t Text) Head() (rune, error) {
	r, _, ok := t.DecodeFront()
	if !ok {
		return 0, ErrEmptyText
	}
	return r, nil
}

// Last returns the final scalar value.
// Returns ErrEmptyText on empty input.
func (t Text) Last() (rune, error) {
	_, r, ok := t.DecodeBack()
	if !ok {
		return 0, ErrEmptyText
	}
	return r, nil
}

// Tail returns the text without its first scalar value.
// Returns ErrEmptyText on empty input.
func (t Text) Tail() (Text, error) {
	_, rest, ok := t.DecodeFront()
	if !ok {
		return Empty, ErrEmptyText
	}
	return rest, nil
}

// Init returns the text without its final scalar value.
// Returns ErrEmptyText on empty input.
func (t Text) Init() (Text, error) {
	rest, _, ok := t.DecodeBack()
	if !ok {
		return Empty, ErrEmptyText
	}
	return rest, nil
}
