package core

import (
	"os"
	"strconv"
	"sync"
)

// DefaultMaxArity is the ceiling on how many sequences one call may
// traverse together when no override is configured.
const DefaultMaxArity = 25

// maxArityEnv names the environment variable that overrides the ceiling.
const maxArityEnv = "LOCKSTEP_MAX_ARITY"

// maxArity resolves the ceiling exactly once per process. There is no
// way to change it afterwards; it is the only process-wide state in
// this package.
var maxArity = sync.OnceValue(func() int {
	raw := os.Getenv(maxArityEnv)
	if raw == "" {
		return DefaultMaxArity
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultMaxArity
	}
	return n
})

// MaxArity returns the configured arity ceiling, fixed for the process
// lifetime. Defaults to DefaultMaxArity; set LOCKSTEP_MAX_ARITY before
// the first traversal to override it.
func MaxArity() int {
	return maxArity()
}

// Applicable reports whether the given sequences form a valid call
// shape: at least one sequence and no more than MaxArity().
func Applicable[T any](seqs [][]T) bool {
	n := len(seqs)
	return n >= 1 && n <= MaxArity()
}
