// Package cluster - affinity (similarity-kernel) partitioning.
//
// Deliberately an approximation: the strategy groups travelers by
// Gaussian-kernel affinity similarity rather than performing a
// spectral eigendecomposition of a graph Laplacian. The approximation
// is the documented contract; callers wanting true spectral clustering
// need a different tool.
package cluster

import (
	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// Affinity partitions the pool by affinity similarity.
//
// Algorithm:
//  1. Build the Gaussian affinity matrix exp(−d²/2σ²) from pairwise
//     compatibility distances (σ = Options.Sigma).
//  2. For each of ⌈pool/TargetGroupSize⌉ groups: seed with the
//     unassigned participant carrying the highest total affinity to
//     the other unassigned participants, then grow by repeatedly
//     attaching the unassigned participant with the highest average
//     affinity to the current members. First-in-input-order wins all
//     ties; the last group absorbs the remainder sizing.
//  3. Convert to Groups with metrics.
//
// A pool no larger than TargetGroupSize returns a single group.
// Participants without trait data go to Result.Leftover.
//
// Errors: ErrBadOptions / ErrUnknownLinkage from option validation.
//
// Complexity: O(n²) matrix + O(n² · g) growth.
func Affinity(pool []traits.Participant, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	scored, unscored := splitPool(pool)
	res := Result{Strategy: StrategyAffinity, Leftover: unscored}
	n := len(scored)
	if n == 0 {
		return res, nil
	}
	if n <= opts.TargetGroupSize {
		res.Groups = []Group{{Members: scored, Metrics: group.Score(scored)}}
		return res, nil
	}

	aff := AffinityMatrix(scored, opts.Sigma)
	assigned := make([]bool, n)
	remaining := n

	count := ceilDiv(n, opts.TargetGroupSize)
	for g := 0; g < count && remaining > 0; g++ {
		size := ceilDiv(remaining, count-g)

		members := []int{affinitySeed(aff, assigned)}
		assigned[members[0]] = true
		remaining--

		for len(members) < size && remaining > 0 {
			next := mostAffine(aff, assigned, members)
			members = append(members, next)
			assigned[next] = true
			remaining--
		}

		ps := make([]traits.Participant, len(members))
		for i, idx := range members {
			ps[i] = scored[idx]
		}
		res.Groups = append(res.Groups, Group{Members: ps, Metrics: group.Score(ps)})
	}
	return res, nil
}

// affinitySeed picks the unassigned participant with the highest total
// affinity to the other unassigned participants; first-max wins.
func affinitySeed(aff [][]float64, assigned []bool) int {
	best := -1
	bestTotal := -1.0
	for i := range aff {
		if assigned[i] {
			continue
		}
		var total float64
		for j := range aff {
			if j != i && !assigned[j] {
				total += aff[i][j]
			}
		}
		if total > bestTotal {
			bestTotal = total
			best = i
		}
	}
	return best
}

// mostAffine picks the unassigned participant with the highest average
// affinity to the current members; first-max wins.
func mostAffine(aff [][]float64, assigned []bool, members []int) int {
	best := -1
	bestAvg := -1.0
	for i := range aff {
		if assigned[i] {
			continue
		}
		var sum float64
		for _, m := range members {
			sum += aff[i][m]
		}
		if avg := sum / float64(len(members)); avg > bestAvg {
			bestAvg = avg
			best = i
		}
	}
	return best
}
