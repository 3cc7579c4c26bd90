// Package ops provides the ready-made elementwise operators of lvmatrix.
//
// Every operator is an elementwise.Operator backed by the package's default
// scalar.Registry, plus a one-call convenience function:
//
//	res, err := ops.Or(a, b)          // Identity: sparse union
//	res, err := ops.And(a, b)         // ZeroPreserving: sparse intersection
//	res, err := ops.Larger(d, s)      // Full: every cell visited
//
// Operators:
//
//	Logical:    Or, Xor (Identity), And (ZeroPreserving)
//	Arithmetic: Add (Identity), Subtract (General), DotMultiply (ZeroPreserving),
//	            Mod, LeftShift (LeftIdentity)
//	Comparison: Unequal (General), Equal, Larger, Smaller, LargerEq, SmallerEq (Full)
//
// The registry holds float64, int64, bool and complex128 kernels and a
// promoting fallback for mixed operands. Register additional signatures
// through Registry() to teach the operators about opaque element types.
package ops
