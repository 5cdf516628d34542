// Package group aggregates pairwise compatibility into group-level
// metrics and a dynamics analysis for an arbitrary-size group.
//
// 🚀 What Score produces
//
//	For a participant list, Score computes every unordered pair's
//	advanced compatibility score, averages them, and attaches a
//	Dynamics analysis:
//	  • the group's average trait vector and per-trait level labels
//	  • the dominant traits (averages in the high bands)
//	  • the low-scoring pairs (below LowPairThreshold) — the group's
//	    friction points
//	  • a diversity score: normalized average variance across the
//	    four core traits, scaled to roughly [0,100]
//	  • size/balance recommendations (too small, too large, too much
//	    friction, extreme energy)
//
// Contracts:
//
//   - Groups smaller than 2 yield a neutral zero Metrics with a nil
//     Dynamics, never an error.
//   - Participants without trait data are skipped by pairwise
//     computation; if fewer than two participants carry data the
//     result degrades to the neutral Metrics.
//   - Deterministic: pairs are scored in input order (i<j), so the
//     Pairwise slice ordering is stable.
//
// Complexity: O(n²) pairs, O(n) dynamics.
package group
