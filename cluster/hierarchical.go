// Package cluster - agglomerative (hierarchical) partitioning.
package cluster

import (
	"math"
	"sort"

	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// Hierarchical clusters the pool bottom-up over the compatibility
// distance matrix (distance = 100 − advanced score).
//
// Algorithm:
//  1. Every participant starts as a singleton cluster.
//  2. Repeatedly merge the closest pair of clusters under
//     Options.Linkage (single = nearest members, complete = farthest
//     members, average = mean over all cross pairs), first-found pair
//     winning ties, until ⌈pool/TargetGroupSize⌉ clusters remain —
//     the dendrogram cut nearest the target group size.
//  3. Convert clusters to Groups with metrics, members in input order.
//
// A pool no larger than TargetGroupSize returns a single group
// containing everyone. Participants without trait data go to
// Result.Leftover.
//
// Errors: ErrBadOptions / ErrUnknownLinkage from option validation.
//
// Complexity: O(n²) distances + O(n³) naive merge scans; fine at
// travel-pool scale.
func Hierarchical(pool []traits.Participant, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	scored, unscored := splitPool(pool)
	res := Result{Strategy: StrategyHierarchical, Leftover: unscored}
	n := len(scored)
	if n == 0 {
		return res, nil
	}
	if n <= opts.TargetGroupSize {
		res.Groups = []Group{{Members: scored, Metrics: group.Score(scored)}}
		return res, nil
	}

	dist := DistanceMatrix(scored)

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	want := ceilDiv(n, opts.TargetGroupSize)
	for len(clusters) > want {
		a, b := closestClusters(clusters, dist, opts.Linkage)
		clusters[a] = append(clusters[a], clusters[b]...)
		clusters = append(clusters[:b], clusters[b+1:]...)
	}

	for _, members := range clusters {
		sort.Ints(members) // input order within the group
		ps := make([]traits.Participant, len(members))
		for i, idx := range members {
			ps[i] = scored[idx]
		}
		res.Groups = append(res.Groups, Group{Members: ps, Metrics: group.Score(ps)})
	}
	return res, nil
}

// closestClusters returns the index pair (a < b) with minimal linkage
// distance; the first pair reaching the minimum wins.
func closestClusters(clusters [][]int, dist [][]float64, linkage Linkage) (int, int) {
	bestA, bestB := 0, 1
	bestDist := math.Inf(1)
	for a := 0; a < len(clusters); a++ {
		for b := a + 1; b < len(clusters); b++ {
			if d := linkageDistance(clusters[a], clusters[b], dist, linkage); d < bestDist {
				bestDist = d
				bestA, bestB = a, b
			}
		}
	}
	return bestA, bestB
}

// linkageDistance applies the selected rule across all cross pairs.
func linkageDistance(a, b []int, dist [][]float64, linkage Linkage) float64 {
	switch linkage {
	case LinkageSingle:
		best := math.Inf(1)
		for _, i := range a {
			for _, j := range b {
				if dist[i][j] < best {
					best = dist[i][j]
				}
			}
		}
		return best
	case LinkageComplete:
		worst := math.Inf(-1)
		for _, i := range a {
			for _, j := range b {
				if dist[i][j] > worst {
					worst = dist[i][j]
				}
			}
		}
		return worst
	default: // LinkageAverage; validated upstream
		var sum float64
		for _, i := range a {
			for _, j := range b {
				sum += dist[i][j]
			}
		}
		return sum / float64(len(a)*len(b))
	}
}
