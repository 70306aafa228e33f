// Package levenshtein computes edit distances and normalized
// similarities between Unicode strings, with cutoff-bounded early exit
// and top-K fuzzy matching.
//
// 🚀 What is Levenshtein distance?
//
//	The minimum number of single-element insertions, deletions, and
//	substitutions transforming one sequence into another. Elements are
//	Unicode scalar values, never bytes. It's widely used in:
//	  • Spell checking & suggestion ranking
//	  • Record linkage / deduplication
//	  • Command-line "did you mean" hints
//	  • Fuzzy lookup over word lists
//
// ✨ Key features:
//   - rolling two-row DP: O(n·m) time, O(min(n,m)) memory
//   - optional cutoff: report cutoff+1 the moment the true distance
//     provably exceeds the bound (length pre-check + per-row abort)
//   - Similarity = 1 - d/max(n,m), clamped to [0,1], with a
//     similarity-domain cutoff converted via ceil so it is never too strict
//   - Match: top-K ranking over a candidate list, feeding the minimum
//     score back in as a cutoff for free pruning
//   - host-lock gate: calls with inputs of ReleaseThreshold or more
//     elements release the shared host lock while they crunch
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstr/levenshtein"
//
//	d, err := levenshtein.Distance("kitten", "sitting")             // 3
//	s, err := levenshtein.Similarity("kitten", "sitting")           // 1 - 3/7
//	d, err = levenshtein.Distance("saturday", "sunday",
//	  levenshtein.WithCutoff(2))                                    // 3 == cutoff+1
//	top, err := levenshtein.Match("kitten", words,
//	  levenshtein.WithScoreRange(0.5, 1), levenshtein.WithLimit(3))
//
// Performance:
//
//   - Time:   O(n·m), sharply less with a tight cutoff
//   - Memory: O(min(n,m))
//
// See example_test.go for runnable walkthroughs and bench_test.go for
// the gate's parallel-throughput check.
package levenshtein
