package fast

// Tuple2 is a typed pair produced by Zip2.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 is a typed triple produced by Zip3.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 is a typed quadruple produced by Zip4.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// T2 creates a tuple from two values.
func T2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{A: a, B: b}
}

// T3 creates a tuple from three values.
func T3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{A: a, B: b, C: c}
}

// T4 creates a tuple from four values.
func T4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d}
}

// Unpack2 returns the values contained in the tuple.
func Unpack2[A, B any](t Tuple2[A, B]) (A, B) {
	return t.A, t.B
}

// Unpack3 returns the values contained in the tuple.
func Unpack3[A, B, C any](t Tuple3[A, B, C]) (A, B, C) {
	return t.A, t.B, t.C
}

// Unpack4 returns the values contained in the tuple.
func Unpack4[A, B, C, D any](t Tuple4[A, B, C, D]) (A, B, C, D) {
	return t.A, t.B, t.C, t.D
}
