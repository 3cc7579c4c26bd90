// SPDX-License-Identifier: MIT

package scalar

// Bind returns the scalar kernel for op over operands tagged a and b.
//
// MAIN DESCRIPTION:
//   - Homogeneous operands (both tags concrete) resolve exactly once, here,
//     and the concrete Func is returned as is. Resolution errors surface
//     before any traversal starts.
//   - Otherwise the returned Func resolves lazily by the runtime tags of each
//     argument pair and caches every resolved signature, so the dispatcher is
//     queried at most once per type pair for the lifetime of the Func.
//
// Returns:
//   - Func: kernel to call per element.
//   - Type: declared result tag (Mixed when not known up front).
//
// Notes:
//   - The lazy Func owns an unsynchronized cache: use it from one goroutine,
//     one top-level call.
func Bind(d Dispatcher, op string, a, b Type) (Func, Type, error) {
	if concrete(a) && concrete(b) {
		e, err := d.Resolve(op, a, b)
		if err != nil {
			return nil, Mixed, err
		}
		return e.Fn, e.Out, nil
	}

	cache := make(map[signature]Func, 4)
	fn := func(x, y any) (any, error) {
		sig := signature{TypeOf(x), TypeOf(y)}
		f, ok := cache[sig]
		if !ok {
			e, err := d.Resolve(op, sig.a, sig.b)
			if err != nil {
				return nil, err
			}
			f = e.Fn
			cache[sig] = f
		}
		return f(x, y)
	}

	return fn, Mixed, nil
}

// concrete reports whether t names a real element type.
func concrete(t Type) bool {
	return t != Mixed && t != Any
}
