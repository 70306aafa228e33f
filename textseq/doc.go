// Package textseq defines the canonical text representation shared by
// every metric in lvlstr: an ordered, immutable sequence of Unicode
// scalar values.
//
// All engines compare text element-wise by scalar value, never by byte,
// so a multi-byte glyph such as 'é' or 'こ' always counts as a single
// element. Len reports the element count, not the byte count of the
// originating string.
//
// The package also hosts the two comparisons the engines share:
//
//   - Compare — lexicographic scalar-value ordering, used by the
//     ranking layer to break score ties deterministically
//   - CommonPrefix — capped element-wise prefix length, used by the
//     Winkler boost
package textseq
