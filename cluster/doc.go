// Package cluster partitions a pool of travelers into compatible
// groups using four interchangeable strategies plus a heuristic
// selector, all consuming the pairwise scorer from package compat.
//
// 🚀 The strategies
//
//   - Greedy   — builds one optimal group at a time: tries several
//     seed participants, repeatedly appends whichever remaining
//     participant maximizes the group's average score, keeps the best
//     seed's group, then repeats on the remaining pool. Remainders
//     smaller than the target size come back in Result.Leftover.
//   - KMeans   — centroid-based partitioning over the four core
//     traits: random centroid initialization within each trait's
//     observed range (seedable, deterministic per seed), nearest-
//     centroid assignment by Euclidean distance, mean recomputation,
//     until movement drops below the tolerance or the iteration cap.
//   - Hierarchical — agglomerative clustering over the distance
//     matrix (distance = 100 − compatibility) under a selectable
//     linkage (single / complete / average), cut to groups near the
//     target size.
//   - Affinity — a Gaussian-kernel affinity heuristic: travelers are
//     grouped around high-affinity seeds. This is a deliberate
//     approximation by affinity similarity, NOT a spectral
//     eigendecomposition; the approximation is the documented
//     contract.
//   - Hybrid   — inspects the pool first: k-means for high-diversity
//     pools, hierarchical for dense (naturally clustered) pools,
//     affinity otherwise, greedy when the pool is too small to judge.
//
// Contracts:
//
//   - Partition exactness: the multiset union of all returned groups
//     plus Result.Leftover equals the input pool — no participant is
//     dropped or duplicated. Participants without trait data cannot be
//     placed and are returned in Leftover, never silently discarded.
//   - k ≥ pool size (or pool ≤ target size, for hierarchical)
//     degrades to a single group holding everyone.
//   - Determinism: identical inputs and an identical Options.Seed
//     reproduce identical output; every tie-break is
//     first-in-input-order.
//   - Every strategy is stateless per call; the iterative centroid /
//     dendrogram state lives only inside one invocation.
//
// Complexity: O(n²) pairwise work for every strategy; the greedy
// builder's repeated full-group rescoring is O(n³) in the worst case,
// acceptable for the tens-to-low-hundreds pools of a travel context.
package cluster
