// Package cluster - pairwise score, distance and affinity matrices.
//
// The hierarchical and affinity strategies consume these; they are
// exported because presentation layers frequently want the same
// matrices for rendering heatmaps.
package cluster

import (
	"math"

	"github.com/liam-jons/trvlmatch/compat"
	"github.com/liam-jons/trvlmatch/traits"
)

// ScoreMatrix returns the symmetric n×n pairwise compatibility matrix
// under the advanced scorer with default weights. The diagonal is 100
// (perfect self-compatibility); entries involving a participant
// without trait data are 0.
//
// Complexity: O(n²).
func ScoreMatrix(participants []traits.Participant) [][]float64 {
	n := len(participants)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 100
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var s float64
			if participants[i].HasTraits() && participants[j].HasTraits() {
				s = compat.ScorePair(*participants[i].Traits, *participants[j].Traits, nil).Score
			}
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m
}

// DistanceMatrix is the complement of ScoreMatrix: distance =
// 100 − score, so perfectly compatible pairs are at distance 0.
//
// Complexity: O(n²).
func DistanceMatrix(participants []traits.Participant) [][]float64 {
	m := ScoreMatrix(participants)
	for i := range m {
		for j := range m[i] {
			m[i][j] = 100 - m[i][j]
		}
	}
	return m
}

// AffinityMatrix applies a Gaussian kernel to the distance matrix:
// affinity = exp(−d² / 2σ²), yielding 1 for identical travelers and
// decaying toward 0 as the pair grows less compatible.
//
// sigma must be positive; the exported strategies validate it via
// Options before calling here.
//
// Complexity: O(n²).
func AffinityMatrix(participants []traits.Participant, sigma float64) [][]float64 {
	m := DistanceMatrix(participants)
	denom := 2 * sigma * sigma
	for i := range m {
		for j := range m[i] {
			d := m[i][j]
			m[i][j] = math.Exp(-(d * d) / denom)
		}
	}
	return m
}

// splitPool separates participants with trait data (placeable) from
// those without (returned through Result.Leftover), both in input
// order.
func splitPool(pool []traits.Participant) (scored, unscored []traits.Participant) {
	for _, p := range pool {
		if p.HasTraits() {
			scored = append(scored, p)
		} else {
			unscored = append(unscored, p)
		}
	}
	return scored, unscored
}

// euclidCore is the Euclidean distance between two four-dimensional
// core-trait points.
func euclidCore(a, b [4]float64) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ceilDiv is ⌈a/b⌉ for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
