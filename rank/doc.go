// Package rank provides the generic top-K ranking layer shared by every
// lvlstr metric: score a candidate collection against a query, keep the
// scores inside an inclusive range, order them, and truncate.
//
// 🚀 Contract
//
//	Top(candidates, scorer, opts...) =
//	  score every candidate → keep score ∈ [MinScore, MaxScore]
//	  → sort by score descending, ties by ascending scalar-value
//	    lexicographic order of the candidate
//	  → first Limit entries
//
// Top is a pure function: the candidate slice is never mutated and the
// result is freshly allocated. Limit 0 yields an empty result without
// error. Invalid bounds (min > max, values outside [0,1]) and negative
// limits are surfaced as sentinel errors, never silently clamped or
// swapped.
//
// Metric packages feed Top a Scorer closure; levenshtein additionally
// passes MinScore back into its own cutoff machinery, which never
// changes the filtered set (only how fast rejected candidates are
// rejected).
package rank
