// Package lvmatrix is a small numeric toolkit for elementwise binary
// operators over scalars, dense matrices and compressed sparse column (CSC)
// matrices.
//
// What is inside:
//
//	scalar/      - type tags, tolerant zero test, (op, type, type) kernel registry
//	matrix/      - Dense (row-major) and Sparse (CSC) values, builders, converters
//	kernel/      - the column-scatter kernels (sparse×sparse, dense×sparse, scalar)
//	elementwise/ - zero-behavior classes, kernel selection, Apply
//	ops/         - ready-made operators: Or, And, Xor, Add, Subtract,
//	               DotMultiply, Mod, LeftShift, Equal, Unequal, Larger, ...
//
// Why sparsity needs care:
//
//	A = [1 0]   B = [0 3]      A AND B  -> intersection of patterns (nnz 0)
//	    [0 2]       [4 0]      A OR  B  -> union of patterns       (nnz 4)
//	                           A  >  B  -> every cell evaluated    (dense)
//
// Each operator declares how it behaves when one side is the structural zero
// (its zero-behavior class). The selector uses that class plus the storage
// formats of both operands to pick a kernel that never does O(rows×cols)
// work when the math does not require it.
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
