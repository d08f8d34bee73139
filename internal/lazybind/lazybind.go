// Package lazybind resolves optional process-wide capabilities at most
// once, tolerating racing first callers.
package lazybind

import (
	"fmt"
	"sync/atomic"
)

// State describes how far a Binding's resolution has progressed.
type State int32

const (
	// Unresolved means no resolution attempt has completed yet.
	Unresolved State = iota

	// Bound means resolution succeeded; Value returns the result.
	Bound

	// Unavailable means resolution failed once and the failure is
	// cached; it will not be retried.
	Unavailable
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Bound:
		return "Bound"
	case Unavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Binding holds a value of type T that is resolved at most logically
// once for the life of the process.
//
// The first caller of Value runs the resolver. Concurrent first
// callers may each run it, but a single compare-and-swap decides which
// outcome is installed; the losers release whatever they acquired and
// adopt the installed result. A binding is never torn down: process
// exit reclaims whatever the winning resolution holds.
type Binding[T any] struct {
	resolve func() (T, func(), error)
	out     atomic.Pointer[outcome[T]]
}

// outcome is the immutable result installed by the winning resolution.
type outcome[T any] struct {
	value T
	ok    bool
}

// New returns an unresolved binding over resolve. The release function
// resolve hands back is called only when that particular resolution
// loses the installation race; it may be nil when there is nothing to
// free.
func New[T any](resolve func() (T, func(), error)) *Binding[T] {
	return &Binding[T]{resolve: resolve}
}

// Value resolves the binding if no outcome is installed yet and
// returns the bound value. ok is false when the capability is
// unavailable on this system.
func (b *Binding[T]) Value() (value T, ok bool) {
	if out := b.out.Load(); out != nil {
		return out.value, out.ok
	}

	v, release, err := b.resolve()
	next := &outcome[T]{}
	if err == nil {
		next.value = v
		next.ok = true
	}

	if !b.out.CompareAndSwap(nil, next) && release != nil {
		// Lost the race: the installed resolution stands and this
		// one's resources go back.
		release()
	}

	out := b.out.Load()
	return out.value, out.ok
}

// State reports the binding's resolution state without resolving it.
func (b *Binding[T]) State() State {
	out := b.out.Load()
	switch {
	case out == nil:
		return Unresolved
	case out.ok:
		return Bound
	default:
		return Unavailable
	}
}
