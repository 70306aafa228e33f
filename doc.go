// Package lvlstr is your in-memory toolkit for measuring, comparing,
// and ranking strings — from raw edit distances to phonetic-style
// similarity scores and top-K fuzzy matching.
//
// 🚀 What is lvlstr?
//
//	A modern, concurrency-aware, pure-Go library that brings together:
//		• Sequence model: Unicode-scalar text sequences shared by every metric
//		• Edit distance: Levenshtein with cutoff-bounded early exit
//		• Jaro & Jaro-Winkler: windowed matching with prefix boost
//		• Ranking: generic filter/sort/limit over any similarity scorer
//		• Gate: size-based release of a shared host execution lock
//
// ✨ Why choose lvlstr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Unicode-correct – multi-byte glyphs count as one element, always
//   - Pure Go – no cgo, no hidden deps
//   - Host-friendly – long calls release the shared lock, short calls stay fast
//
// Under the hood, everything is organized under five subpackages:
//
//	textseq/     — canonical Unicode-scalar sequence type & comparisons
//	levenshtein/ — edit distance, normalized similarity, fuzzy Match
//	jarowinkler/ — Jaro similarity, Winkler prefix boost, fuzzy Match
//	rank/        — generic top-K score/filter/sort/limit layer
//	gate/        — per-call hold-or-release policy for a shared lock
//
// Quick ASCII example:
//
//	"kitten" ──distance───▶ "sitting" = 3
//	"kitten" ──similarity─▶ "sitting" = 1 - 3/7 ≈ 0.571
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, invariants, and benchmark notes.
//
//	go get github.com/katalvlaran/lvlstr
package lvlstr
