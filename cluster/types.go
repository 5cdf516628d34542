package cluster

import (
	"errors"

	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// Sentinel errors. Algorithms return these and tests match them via
// errors.Is; degenerate-but-valid inputs (empty pool, k ≥ pool size)
// degrade to documented results instead of erroring.
var (
	// ErrUnknownStrategy is returned by Cluster for a Strategy outside
	// the documented set.
	ErrUnknownStrategy = errors.New("cluster: unknown strategy")

	// ErrUnknownLinkage is returned for a Linkage outside
	// single/complete/average.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")

	// ErrBadOptions is returned when option values are nonsensical
	// (non-positive target size, negative k, non-positive sigma, ...).
	ErrBadOptions = errors.New("cluster: invalid options")
)

// Strategy selects a partitioning algorithm.
type Strategy string

const (
	StrategyGreedy       Strategy = "greedy"
	StrategyKMeans       Strategy = "kmeans"
	StrategyHierarchical Strategy = "hierarchical"
	StrategyAffinity     Strategy = "affinity"
	StrategyHybrid       Strategy = "hybrid"
)

// Linkage is the hierarchical inter-cluster distance rule.
type Linkage string

const (
	LinkageSingle   Linkage = "single"   // nearest members
	LinkageComplete Linkage = "complete" // farthest members
	LinkageAverage  Linkage = "average"  // mean over all cross pairs
)

// Documented option defaults.
const (
	DefaultTargetGroupSize = 4
	DefaultMaxGroups       = 10
	DefaultMaxIterations   = 50
	DefaultTolerance       = 0.5
	DefaultSigma           = 30
	DefaultLinkage         = LinkageAverage

	// greedySeedCandidates bounds how many seed participants the
	// greedy builder tries per group.
	greedySeedCandidates = 5
)

// Options configures every strategy; each field is consumed only by
// the strategies that document it. Start from DefaultOptions and
// override what you need.
type Options struct {
	// Strategy routes the Cluster dispatcher. Direct entry points
	// (KMeans, Hierarchical, ...) ignore it.
	Strategy Strategy

	// TargetGroupSize is the intended group size for greedy,
	// hierarchical and affinity, and derives K for k-means when K==0.
	TargetGroupSize int

	// K is the k-means cluster count. 0 means ⌈pool/TargetGroupSize⌉.
	K int

	// MaxGroups caps how many groups the greedy builder produces.
	MaxGroups int

	// MaxIterations caps the k-means refinement loop.
	MaxIterations int

	// Tolerance is the centroid-movement threshold (Euclidean, over
	// the four core traits) below which k-means stops.
	Tolerance float64

	// Linkage selects the hierarchical inter-cluster distance rule.
	Linkage Linkage

	// Sigma is the Gaussian kernel width for the affinity strategy.
	Sigma float64

	// Seed drives k-means centroid initialization. The same seed
	// reproduces the same clustering; 0 selects a fixed default seed,
	// so the zero value is still deterministic.
	Seed int64
}

// DefaultOptions returns the documented defaults with the hybrid
// selector as the strategy.
func DefaultOptions() Options {
	return Options{
		Strategy:        StrategyHybrid,
		TargetGroupSize: DefaultTargetGroupSize,
		MaxGroups:       DefaultMaxGroups,
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		Linkage:         DefaultLinkage,
		Sigma:           DefaultSigma,
	}
}

// validate rejects nonsensical option values. Strategy is checked by
// the dispatcher only, so direct entry points stay usable with a
// zero-value Strategy field.
func (o Options) validate() error {
	if o.TargetGroupSize < 2 {
		return ErrBadOptions
	}
	if o.K < 0 || o.MaxGroups < 1 || o.MaxIterations < 1 {
		return ErrBadOptions
	}
	if o.Tolerance < 0 || o.Sigma <= 0 {
		return ErrBadOptions
	}
	switch o.Linkage {
	case LinkageSingle, LinkageComplete, LinkageAverage:
	default:
		return ErrUnknownLinkage
	}
	return nil
}

// Group is one produced travel group with its full metrics attached.
type Group struct {
	Members []traits.Participant
	Metrics group.Metrics
}

// Result is the outcome of one clustering invocation.
type Result struct {
	// Groups partition the placeable pool.
	Groups []Group

	// Leftover holds participants no strategy placed: the greedy
	// remainder smaller than the target size, plus any participant
	// without trait data (unplaceable by every strategy).
	Leftover []traits.Participant

	// Strategy is the algorithm that actually ran — for hybrid, the
	// selector's choice rather than "hybrid".
	Strategy Strategy
}
