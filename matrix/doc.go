// Package matrix offers a small dense matrix value type and its operators.
//
// The matrix package provides:
//
//   - Row: an owned, fixed-length sequence of float64 with bounds-checked
//     access (At, Set, Ref).
//   - Matrix: an owned sequence of Rows with bounds-checked Row/At/Set and
//     O(1) shape queries.
//   - Pure operators returning fresh matrices: AddScalar, Add, Sub, Scale,
//     Mul, Transpose, plus approximate Equal/NotEqual.
//   - Text rendering (String, Sprint, Fprint) and a YAML codec (Encode, Decode).
//
// Indexing errors wrap ErrOutOfRange. Operators validate their operands and
// wrap ErrNilMatrix, ErrRaggedRows or ErrDimensionMismatch; match them with
// errors.Is.
//
// Matrices are not safe for concurrent mutation; serialize writers.
//
// See the examples in this package for usage patterns.
package matrix
