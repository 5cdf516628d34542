// Package cluster - the unified dispatcher and the hybrid strategy
// selector.
package cluster

import (
	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// Hybrid selector thresholds.
const (
	// hybridDiversityMin: pools at or above this diversity score are
	// heterogeneous enough that centroid partitioning separates them
	// cleanly.
	hybridDiversityMin = 65

	// hybridDensityMin / hybridDensityScale: density maps the raw core
	// variance onto [0,100] via scale/(scale+variance); dense pools
	// (low variance, naturally clustered) suit agglomerative merging.
	hybridDensityMin   = 60
	hybridDensityScale = 100
)

// Cluster is the canonical entry point: it validates Options and
// routes the pool to the strategy named by Options.Strategy.
//
// Result.Strategy reports the algorithm that actually ran — for
// StrategyHybrid that is the selector's choice, so callers can see
// which method produced their grouping.
//
// Errors: ErrUnknownStrategy for an unrecognized Options.Strategy;
// ErrBadOptions / ErrUnknownLinkage from option validation.
func Cluster(pool []traits.Participant, opts Options) (Result, error) {
	switch opts.Strategy {
	case StrategyGreedy:
		return Greedy(pool, opts)
	case StrategyKMeans:
		return KMeans(pool, opts)
	case StrategyHierarchical:
		return Hierarchical(pool, opts)
	case StrategyAffinity:
		return Affinity(pool, opts)
	case StrategyHybrid:
		return Hybrid(pool, opts)
	default:
		return Result{}, ErrUnknownStrategy
	}
}

// Hybrid inspects the pool and delegates to the strategy its shape
// suits best:
//
//   - pools too small to judge (fewer than two target-size groups of
//     trait-carrying members) → Greedy, whose leftover semantics
//     handle small pools gracefully;
//   - high diversity (diversity score ≥ 65) → KMeans: heterogeneous
//     pools separate cleanly around centroids;
//   - high density (density score ≥ 60, i.e. low trait variance) →
//     Hierarchical: naturally clustered pools merge well bottom-up;
//   - otherwise → Affinity.
//
// The two upper branches are mutually exclusive by construction: the
// diversity and density scores are both driven by the same core-trait
// variance, in opposite directions.
//
// Errors: ErrBadOptions / ErrUnknownLinkage from option validation.
func Hybrid(pool []traits.Participant, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	scored, _ := splitPool(pool)
	if len(scored) < 2*opts.TargetGroupSize {
		return Greedy(pool, opts)
	}

	if group.Diversity(scored) >= hybridDiversityMin {
		return KMeans(pool, opts)
	}
	if densityScore(scored) >= hybridDensityMin {
		return Hierarchical(pool, opts)
	}
	return Affinity(pool, opts)
}

// densityScore maps the pool's raw core-trait variance onto [0,100]:
// 100 for a perfectly uniform pool, decaying as variance grows.
func densityScore(scored []traits.Participant) float64 {
	v := group.CoreVariance(scored)
	return 100 * hybridDensityScale / (hybridDensityScale + v)
}
