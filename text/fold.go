package text

// Fold reduces the text's scalar values front to back, combining each into
// the accumulator with fn.
//
// Reduction is eager: each accumulator is fully computed before the next
// scalar value is decoded, so no deferred work accumulates regardless of
// input size. A lazily-accumulating reduction would produce the same
// result with different memory behavior; only the eager form is provided.
func Fold[A any](t Text, seed A, fn func(A, rune) A) A {
	acc := seed
	for {
		r, rest, ok := t.DecodeFront()
		if !ok {
			return acc
		}
		acc = fn(acc, r)
		t = rest
	}
}

// FoldBack reduces the text's scalar values back to front.
// Like Fold, reduction is eager.
func FoldBack[A any](t Text, seed A, fn func(rune, A) A) A {
	acc := seed
	for {
		rest, r, ok := t.DecodeBack()
		if !ok {
			return acc
		}
		acc = fn(r, acc)
		t = rest
	}
}
