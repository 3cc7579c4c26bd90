// SPDX-License-Identifier: MIT

// Package scalar holds everything the elementwise engine needs to know about
// a single element value.
//
// The package provides:
//
//   - Type, a runtime tag for element values (float64, int64, bool, ...)
//     with Mixed meaning "not provably homogeneous".
//   - Tolerance, the tolerant zero test used to decide whether a freshly
//     computed value must be dropped from a sparse result.
//   - Registry, an explicit (op, Type, Type) -> Func table with a small
//     wildcard matcher, and Bind, which resolves a kernel once per call.
//
// Values are plain `any`. Opaque element types (big decimals, fractions,
// units, ...) are supported by registering kernels against the Any wildcard
// and, optionally, implementing Zeroer.
package scalar
