package core

// Split returns the first clamp(n, 0, len(s)) elements of s and the
// remainder. Concatenating the halves always reproduces s. n <= 0
// yields an empty prefix and all of s; n >= len(s) yields all of s and
// an empty suffix.
//
// The halves are subslices sharing s's backing array; the engine never
// mutates them.
func Split[T any](s []T, n int) (prefix, suffix []T) {
	switch {
	case n <= 0:
		return s[:0], s
	case n >= len(s):
		return s, s[len(s):]
	default:
		return s[:n], s[n:]
	}
}
