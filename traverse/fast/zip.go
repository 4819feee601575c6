package fast

// Zip2 pairs the aligned elements of two sequences, stopping at the
// shorter one.
func Zip2[A, B any](as []A, bs []B) []Tuple2[A, B] {
	return Map2(as, bs, T2[A, B])
}

// Zip3 groups the aligned elements of three sequences.
func Zip3[A, B, C any](as []A, bs []B, cs []C) []Tuple3[A, B, C] {
	return Map3(as, bs, cs, T3[A, B, C])
}

// Zip4 groups the aligned elements of four sequences.
func Zip4[A, B, C, D any](as []A, bs []B, cs []C, ds []D) []Tuple4[A, B, C, D] {
	return Map4(as, bs, cs, ds, T4[A, B, C, D])
}

// Unzip2 splits a sequence of pairs into two sequences, preserving
// order. Zip2 followed by Unzip2 is the identity on equal-length
// inputs.
func Unzip2[A, B any](ts []Tuple2[A, B]) ([]A, []B) {
	as := make([]A, len(ts))
	bs := make([]B, len(ts))
	for j, t := range ts {
		as[j] = t.A
		bs[j] = t.B
	}
	return as, bs
}

// Unzip3 splits a sequence of triples into three sequences.
func Unzip3[A, B, C any](ts []Tuple3[A, B, C]) ([]A, []B, []C) {
	as := make([]A, len(ts))
	bs := make([]B, len(ts))
	cs := make([]C, len(ts))
	for j, t := range ts {
		as[j] = t.A
		bs[j] = t.B
		cs[j] = t.C
	}
	return as, bs, cs
}

// Unzip4 splits a sequence of quadruples into four sequences.
func Unzip4[A, B, C, D any](ts []Tuple4[A, B, C, D]) ([]A, []B, []C, []D) {
	as := make([]A, len(ts))
	bs := make([]B, len(ts))
	cs := make([]C, len(ts))
	ds := make([]D, len(ts))
	for j, t := range ts {
		as[j] = t.A
		bs[j] = t.B
		cs[j] = t.C
		ds[j] = t.D
	}
	return as, bs, cs, ds
}
