// Package elementwise is the entry point of the engine: it picks and runs the
// kernel for a binary elementwise operator.
//
// An Operator names its zero-behavior class (Identity, ZeroPreserving,
// General, Full, LeftIdentity) and its scalar kernel, either directly (Fn) or
// through a scalar.Dispatcher. Apply classifies both operands as scalar,
// dense or sparse, checks or broadcasts their shapes, binds the scalar kernel
// once and runs the kernel chosen by Select:
//
//	res, err := elementwise.Apply(op, a, b)
//
// Sparse structure is preserved whenever the class allows it: logical OR of
// two sparse matrices visits only stored entries, AND visits only the
// intersection, while a comparison like == must visit every cell.
//
// Configuration uses functional options (WithRelTol, WithSparseStorage,
// WithLogger, ...); each Apply emits one slog Debug record describing the
// chosen kernel.
package elementwise
