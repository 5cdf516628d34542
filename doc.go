// Package trvlmatch is an in-memory engine for scoring traveler
// compatibility and partitioning a pool of travelers into groups —
// from per-trait scoring curves to full multi-strategy clustering.
//
// 🚀 What is trvlmatch?
//
//	A pure, deterministic, zero-I/O library that brings together:
//		• Trait curves: per-trait non-linear compatibility scoring
//		• Pair scoring: weighted multi-dimension scores with modifiers
//		• Group dynamics: averages, diversity, conflict pairs, advice
//		• Clustering: greedy, k-means, hierarchical and affinity methods
//		• Conflict detection: a seven-type taxonomy with severity levels
//		• Success prediction: a single [0,100] outlook per proposed group
//
// ✨ Why choose trvlmatch?
//
//   - Pure computation – no fetching, persisting or streaming; callers
//     supply participant snapshots and consume results
//   - Deterministic – seedable randomness, fixed iteration orders,
//     documented tie-breaks
//   - Pure Go – no cgo, no hidden deps
//   - Auditable – every threshold and weight is a named constant
//
// Everything is organized under five subpackages:
//
//	traits/   — personality vectors, participants & curved trait scoring
//	compat/   — pairwise compatibility scoring (linear & weighted modes)
//	group/    — group aggregation, dynamics analysis & recommendations
//	cluster/  — partitioning strategies + a heuristic hybrid selector
//	conflict/ — conflict detection, risk levels & success prediction
//
// Quick data flow:
//
//	[]traits.Participant ──► compat.ScorePair ──► group.Score
//	                     └─► cluster.Cluster  ──► []cluster.Group
//	                     └─► conflict.Detect  ──► conflict.PredictSuccess
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/liam-jons/trvlmatch
package trvlmatch
