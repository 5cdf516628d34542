// Package cluster - centroid-based (k-means-style) partitioning.
package cluster

import (
	"math/rand"

	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// centroid is a synthetic core-trait point representing a cluster's
// mean. Never persisted; recomputed every iteration and discarded on
// return.
type centroid [4]float64

// KMeans partitions the pool into k clusters over the four core
// traits.
//
// Algorithm:
//  1. k = Options.K, or ⌈pool/TargetGroupSize⌉ when K==0. k ≤ 1 or
//     k ≥ pool size degrades to a single group holding everyone.
//  2. Initialize k centroids at random points within each trait's
//     observed [min,max] range, from the seeded RNG (same Seed ⇒ same
//     clustering; Seed 0 ⇒ fixed default seed).
//  3. Assign every participant to its nearest centroid by Euclidean
//     distance (first centroid wins ties); re-seat any emptied cluster
//     on the participant farthest from its current assignment.
//  4. Recompute centroids as per-cluster trait means; stop once the
//     largest centroid movement drops below Tolerance or after
//     MaxIterations.
//
// Output clusters are converted to Groups with full metrics attached,
// members in input order. Participants without trait data go to
// Result.Leftover.
//
// Errors: ErrBadOptions / ErrUnknownLinkage from option validation.
//
// Complexity: O(iterations · k · n) assignment plus O(g²) metrics per
// group.
func KMeans(pool []traits.Participant, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	scored, unscored := splitPool(pool)
	res := Result{Strategy: StrategyKMeans, Leftover: unscored}
	n := len(scored)
	if n == 0 {
		return res, nil
	}

	k := opts.K
	if k == 0 {
		k = ceilDiv(n, opts.TargetGroupSize)
	}
	if k <= 1 || k >= n {
		res.Groups = []Group{{Members: scored, Metrics: group.Score(scored)}}
		return res, nil
	}

	points := make([]centroid, n)
	for i, p := range scored {
		points[i] = p.Traits.Core()
	}

	rng := rngFromSeed(opts.Seed)
	centroids := initCentroids(points, k, rng)
	assign := make([]int, n)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		assignNearest(points, centroids, assign)
		reseatEmptyClusters(points, centroids, assign, k)

		moved := recomputeCentroids(points, centroids, assign, k)
		if moved < opts.Tolerance {
			break
		}
	}

	for c := 0; c < k; c++ {
		var members []traits.Participant
		for i, a := range assign {
			if a == c {
				members = append(members, scored[i])
			}
		}
		if len(members) == 0 {
			continue
		}
		res.Groups = append(res.Groups, Group{
			Members: members,
			Metrics: group.Score(members),
		})
	}
	return res, nil
}

// initCentroids samples each trait's observed range independently per
// cluster.
func initCentroids(points []centroid, k int, rng *rand.Rand) []centroid {
	var lo, hi centroid
	lo = points[0]
	hi = points[0]
	for _, p := range points[1:] {
		for t := 0; t < 4; t++ {
			if p[t] < lo[t] {
				lo[t] = p[t]
			}
			if p[t] > hi[t] {
				hi[t] = p[t]
			}
		}
	}

	centroids := make([]centroid, k)
	for c := range centroids {
		for t := 0; t < 4; t++ {
			centroids[c][t] = rangeFloat(rng, lo[t], hi[t])
		}
	}
	return centroids
}

// assignNearest writes each point's nearest centroid index into
// assign; the first centroid wins distance ties.
func assignNearest(points, centroids []centroid, assign []int) {
	for i, p := range points {
		best := 0
		bestDist := euclidCore(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			if d := euclidCore(p, centroids[c]); d < bestDist {
				bestDist = d
				best = c
			}
		}
		assign[i] = best
	}
}

// reseatEmptyClusters moves, for every empty cluster, the participant
// farthest from its current centroid into it. Keeps every cluster
// non-empty so the refinement cannot collapse below k clusters;
// deterministic (first-farthest wins, clusters fixed in index order).
func reseatEmptyClusters(points, centroids []centroid, assign []int, k int) {
	size := make([]int, k)
	for _, a := range assign {
		size[a]++
	}

	for c := 0; c < k; c++ {
		if size[c] > 0 {
			continue
		}
		farthest := -1
		farthestDist := -1.0
		for i, a := range assign {
			if size[a] <= 1 {
				continue // never empty another cluster
			}
			if d := euclidCore(points[i], centroids[a]); d > farthestDist {
				farthestDist = d
				farthest = i
			}
		}
		if farthest < 0 {
			continue
		}
		size[assign[farthest]]--
		assign[farthest] = c
		size[c]++
	}
}

// recomputeCentroids sets each centroid to its cluster's mean point
// and returns the largest centroid movement. Empty clusters keep
// their previous centroid.
func recomputeCentroids(points []centroid, centroids []centroid, assign []int, k int) float64 {
	sums := make([]centroid, k)
	counts := make([]int, k)
	for i, a := range assign {
		for t := 0; t < 4; t++ {
			sums[a][t] += points[i][t]
		}
		counts[a]++
	}

	var moved float64
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		var next centroid
		for t := 0; t < 4; t++ {
			next[t] = sums[c][t] / float64(counts[c])
		}
		if d := euclidCore(centroids[c], next); d > moved {
			moved = d
		}
		centroids[c] = next
	}
	return moved
}
