package fast

// Map2 collects f(a, b) for each aligned pair, stopping at the shorter
// sequence.
func Map2[A, B, R any](as []A, bs []B, f func(A, B) R) []R {
	n := min(len(as), len(bs))
	out := make([]R, n)
	for j := 0; j < n; j++ {
		out[j] = f(as[j], bs[j])
	}
	return out
}

// Map3 collects f(a, b, c) for each aligned triple.
func Map3[A, B, C, R any](as []A, bs []B, cs []C, f func(A, B, C) R) []R {
	n := min(len(as), len(bs), len(cs))
	out := make([]R, n)
	for j := 0; j < n; j++ {
		out[j] = f(as[j], bs[j], cs[j])
	}
	return out
}

// Map4 collects f(a, b, c, d) for each aligned quadruple.
func Map4[A, B, C, D, R any](as []A, bs []B, cs []C, ds []D, f func(A, B, C, D) R) []R {
	n := min(len(as), len(bs), len(cs), len(ds))
	out := make([]R, n)
	for j := 0; j < n; j++ {
		out[j] = f(as[j], bs[j], cs[j], ds[j])
	}
	return out
}

// Reduce2 left-folds f over the aligned pairs.
func Reduce2[A, B, Acc any](as []A, bs []B, acc Acc, f func(A, B, Acc) Acc) Acc {
	n := min(len(as), len(bs))
	for j := 0; j < n; j++ {
		acc = f(as[j], bs[j], acc)
	}
	return acc
}

// Reduce3 left-folds f over the aligned triples.
func Reduce3[A, B, C, Acc any](as []A, bs []B, cs []C, acc Acc, f func(A, B, C, Acc) Acc) Acc {
	n := min(len(as), len(bs), len(cs))
	for j := 0; j < n; j++ {
		acc = f(as[j], bs[j], cs[j], acc)
	}
	return acc
}

// Reduce4 left-folds f over the aligned quadruples.
func Reduce4[A, B, C, D, Acc any](as []A, bs []B, cs []C, ds []D, acc Acc, f func(A, B, C, D, Acc) Acc) Acc {
	n := min(len(as), len(bs), len(cs), len(ds))
	for j := 0; j < n; j++ {
		acc = f(as[j], bs[j], cs[j], ds[j], acc)
	}
	return acc
}

// Each2 invokes f per aligned pair for its side effects.
func Each2[A, B any](as []A, bs []B, f func(A, B)) {
	n := min(len(as), len(bs))
	for j := 0; j < n; j++ {
		f(as[j], bs[j])
	}
}

// Each3 invokes f per aligned triple for its side effects.
func Each3[A, B, C any](as []A, bs []B, cs []C, f func(A, B, C)) {
	n := min(len(as), len(bs), len(cs))
	for j := 0; j < n; j++ {
		f(as[j], bs[j], cs[j])
	}
}

// Each4 invokes f per aligned quadruple for its side effects.
func Each4[A, B, C, D any](as []A, bs []B, cs []C, ds []D, f func(A, B, C, D)) {
	n := min(len(as), len(bs), len(cs), len(ds))
	for j := 0; j < n; j++ {
		f(as[j], bs[j], cs[j], ds[j])
	}
}
