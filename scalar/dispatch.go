// SPDX-License-Identifier: MIT

// Package scalar - kernel dispatch by type signature.
//
// Purpose:
//   - Map (operator name, left tag, right tag) to a concrete Func.
//   - Keep the lookup explicit: a table plus a four-step wildcard matcher,
//     never per-element reflection.
//
// Matching order (first hit wins):
//
//	(a, b) -> (a, Any) -> (Any, b) -> (Any, Any)
//
// Concurrency:
//   - Registry is safe for concurrent Register/Resolve. All registrations
//     should complete before the first hot-path Resolve.

package scalar

import (
	"fmt"
	"sort"
	"sync"
)

// Func is a binary scalar kernel. It must be pure: no mutation of its
// arguments and the same result for the same inputs.
type Func func(a, b any) (any, error)

// Entry is a resolved kernel together with its declared result tag.
// Out is Mixed when the result type depends on the inputs.
type Entry struct {
	Fn  Func
	Out Type
}

// Dispatcher resolves a scalar kernel for an operator and two type tags.
type Dispatcher interface {
	Resolve(op string, a, b Type) (Entry, error)
}

// signature is the key of one registered kernel.
type signature struct {
	a, b Type
}

// Registry is the default Dispatcher: an in-memory table of kernels.
type Registry struct {
	mu    sync.RWMutex
	table map[string]map[signature]Entry
}

// Compile-time assertion.
var _ Dispatcher = (*Registry)(nil)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{table: make(map[string]map[signature]Entry)}
}

// Register adds (or replaces) the kernel for op over tags (a, b).
// Use Any on either side to register a fallback.
//
// Errors:
//   - Panics on an empty op name, a nil fn or a Mixed tag (programmer error).
//
// Complexity:
//   - Time O(1) amortized.
func (r *Registry) Register(op string, a, b, out Type, fn Func) {
	if op == "" {
		panic("scalar: Register: empty operator name")
	}
	if fn == nil {
		panic("scalar: Register: nil kernel for " + op)
	}
	if a == Mixed || b == Mixed {
		panic("scalar: Register: Mixed is not a signature tag, use Any")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sigs, ok := r.table[op]
	if !ok {
		sigs = make(map[signature]Entry)
		r.table[op] = sigs
	}
	sigs[signature{a, b}] = Entry{Fn: fn, Out: out}
}

// Resolve returns the best matching kernel for op over tags (a, b).
//
// Implementation:
//   - Stage 1: exact signature.
//   - Stage 2: one-sided wildcards, left tag first.
//   - Stage 3: (Any, Any).
//
// Errors:
//   - ErrKernelNotFound (wrapped with op and tags) when nothing matches.
//
// Complexity:
//   - Time O(1), Space O(1).
func (r *Registry) Resolve(op string, a, b Type) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sigs := r.table[op]
	for _, sig := range [...]signature{{a, b}, {a, Any}, {Any, b}, {Any, Any}} {
		if e, ok := sigs[sig]; ok {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%s(%s, %s): %w", op, a, b, ErrKernelNotFound)
}

// Ops returns the registered operator names in ascending order.
func (r *Registry) Ops() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
