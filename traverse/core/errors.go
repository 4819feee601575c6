package core

import "fmt"

// NotApplicableError reports a call whose shape no traversal supports:
// the number of sequences lies outside [1, MaxArity()]. No combinator
// is invoked when this error is returned.
type NotApplicableError struct {
	Arity int // number of sequences the caller supplied
	Max   int // ceiling in effect at the call
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("traverse: %d sequences outside the supported arity range [1, %d]", e.Arity, e.Max)
}

// UnknownOptionError reports an option key that the template does not
// name. Option templates are closed sets: unexpected keys are rejected,
// never silently dropped or passed through.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("traverse: unknown option %q", e.Key)
}

// ArityMismatchError reports a row whose width differs from the arity
// inferred from the first row of an Unzip or FlatUnzip input.
type ArityMismatchError struct {
	Row  int // index of the offending row
	Got  int // its width
	Want int // width of the first row
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("traverse: row %d has arity %d, want %d", e.Row, e.Got, e.Want)
}
