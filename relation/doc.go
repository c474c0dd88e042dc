// Package relation stores a binary constraint relation R(i,j) ⊆
// D0(i)×D0(j) as a dense boolean compatibility matrix over the two
// variables' origin-domain value indices.
//
// Table is adapted from the teacher library's matrix.Dense: the same
// flat, row-major backing slice and bounds-checked accessors, with
// float64 cells replaced by single bits (a constraint pair is either
// allowed or it isn't) and row/column indices replaced by value tokens
// looked up through a per-table index, since constraint relations are
// keyed by opaque domain values rather than by integer matrix
// coordinates.
package relation
