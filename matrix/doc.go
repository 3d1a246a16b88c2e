// Package matrix provides the dense, row-major storage and the fixed-order
// kernels that the distributed matrix-vector pipeline is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix over a single flat buffer. The flat
//     layout is what collective operations move between participants: a
//     contiguous range of rows is a contiguous range of the buffer.
//   - RowBlock and StackRows to cut a matrix into row-blocks and reassemble it.
//   - MatVec / MatVecInto, the dense matrix-vector product with a fixed
//     left-to-right accumulation order, so repeated calls are bit-identical.
//   - Central validators (ValidateNotNil, ValidateVecLen, ValidateRowRange, ...)
//     returning the sentinel errors declared in errors.go.
//
// Dense is best for the fully populated operands this module deals with;
// there is no sparse representation.
package matrix
