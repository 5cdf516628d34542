// Package compat scores pairwise traveler compatibility on a [0,100]
// scale, in two deliberately distinct modes:
//
//   - ScoreDimension — a simple linear similarity for one dimension,
//     100 at identical values, decreasing by one point per point of
//     difference. Used for general dimension comparison and as the
//     per-dimension kernel of the weighted scorer.
//   - ScorePair — the advanced scorer: a weighted sum over six trait
//     dimensions (weights configurable, see Weights), plus three
//     additive modifiers applied at reduced influence — experience
//     gap, age gap (tolerance scales with average age) and leadership
//     complementarity.
//
// Both modes exist on purpose; the curved per-trait matrix lives in
// package traits and serves context-weighted single-trait scoring,
// while this package aggregates whole personalities.
//
// Contracts:
//
//   - score(A,B) == score(B,A): every kernel depends only on |a−b|
//     or on symmetric pair statistics.
//   - The final ScorePair result is clamped to [0,100] and rounded to
//     the nearest integer; sub-scores in the breakdown are raw.
//   - No function here errors or panics; out-of-range inputs are used
//     as given and clamped at the end.
//
// Complexity: O(1) per pair; O(n²) when a caller scores all pairs.
package compat
