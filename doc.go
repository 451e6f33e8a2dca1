// Package rowmat is a small dense-matrix toolkit: a Row/Matrix value type
// with bounds-checked access and a pure operator set.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/     — Row and Matrix, operators (Add, Mul, Transpose, ...), printing, YAML codec
//	feq/        — approximate float64 equality used by matrix.Equal
//	floatfmt/   — fixed-width float rendering used by matrix printing
//	cmd/matcalc — command-line calculator over YAML matrix files
//
// Quick example:
//
//	A := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	B := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
//	C, _ := matrix.Mul(A, B)
//	fmt.Println(C)
//	// [[      19       22]
//	//  [      43       50]]
package rowmat
