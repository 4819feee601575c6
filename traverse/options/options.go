// Package options provides ordered association lists of option values
// and closed templates for projecting them. A template names every key
// a caller may supply along with its default; Take rejects keys the
// template does not name rather than dropping or forwarding them.
package options

import (
	"github.com/lguimbarda/lockstep/traverse/core"
)

// Option is one ordered key/value pair in an association list.
type Option[V any] struct {
	Key   string
	Value V
}

// Template is an ordered association list of keys and their default
// values. It defines the closed set of keys Take will accept.
type Template[V any] []Option[V]

// Has reports whether the template names the given key.
func (t Template[V]) Has(key string) bool {
	for _, o := range t {
		if o.Key == key {
			return true
		}
	}
	return false
}

// Get returns the value of the first entry with the given key.
// When a key appears more than once, the first occurrence wins.
func Get[V any](opts []Option[V], key string) (V, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o.Value, true
		}
	}
	var zero V
	return zero, false
}

// Take projects opts onto template: the result has exactly one entry
// per template key, in template order, carrying the opts value when the
// key appears in opts and the template default otherwise. Any opts key
// the template does not name is an UnknownOptionError; nothing is
// projected in that case.
func Take[V any](opts []Option[V], template Template[V]) ([]Option[V], error) {
	for _, o := range opts {
		if !template.Has(o.Key) {
			return nil, &core.UnknownOptionError{Key: o.Key}
		}
	}
	out := make([]Option[V], len(template))
	for i, entry := range template {
		out[i] = entry
		if v, ok := Get(opts, entry.Key); ok {
			out[i].Value = v
		}
	}
	return out, nil
}
