// Package jarowinkler computes Jaro and Jaro-Winkler similarity between
// Unicode strings, plus the complementary distance and top-K fuzzy
// matching.
//
// 🚀 What is Jaro-Winkler?
//
//	Jaro similarity counts elements of one string matched within a
//	bounded window of the other, discounted by transpositions. The
//	Winkler variant boosts pairs sharing a common prefix — tuned for
//	the short name/identifier strings it was designed around:
//	  • Record linkage on person & place names
//	  • Typo-tolerant identifier lookup
//	  • Duplicate detection in short-string catalogs
//
// ✨ Key features:
//   - greedy, order-preserving window matching — the standard Jaro
//     procedure, reproduced exactly (deliberately NOT an optimal
//     bipartite assignment, which would change scores on ambiguous input)
//   - transpositions = mismatching ranks between the two
//     position-sorted match sequences, halved in the score term
//   - Winkler boost jaro + l·w·(1-jaro), clamped to 1.0 against
//     adversarial weight/prefix combinations
//   - Match: top-K ranking over a candidate list
//   - host-lock gate at ReleaseThreshold elements (no cutoff machinery:
//     the algorithm is already near-linear and window-bounded)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstr/jarowinkler"
//
//	j := jarowinkler.Jaro("MARTHA", "MARHTA")                 // ≈ 0.9444
//	s, err := jarowinkler.Similarity("MARTHA", "MARHTA")      // ≈ 0.9611
//	d, err := jarowinkler.Distance("MARTHA", "MARHTA")        // 1 - s
//	top, err := jarowinkler.Match("apple", words,
//	  jarowinkler.WithLimit(3))
//
// Performance:
//
//   - Time:   O(max(n,m) · window) matching + O(m) transposition scan
//   - Memory: O(min(n,m)) match bookkeeping
//
// See example_test.go for runnable walkthroughs.
package jarowinkler
