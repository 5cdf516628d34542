package group

import (
	"github.com/liam-jons/trvlmatch/compat"
	"github.com/liam-jons/trvlmatch/traits"
)

// Thresholds for the dynamics analysis. Centralized so the advisory
// behavior stays auditable.
const (
	// LowPairThreshold marks a pairwise score as a friction point.
	LowPairThreshold = 60

	// MinComfortableSize / MaxComfortableSize bound the group sizes
	// that need no size recommendation.
	MinComfortableSize = 3
	MaxComfortableSize = 8

	// dominantTraitMin is the average-trait floor for a trait to be
	// reported as dominant.
	dominantTraitMin = 70

	// Energy averages outside (EnergyLowExtreme, EnergyHighExtreme)
	// trigger the activity-intensity recommendation.
	EnergyLowExtreme  = 25
	EnergyHighExtreme = 75

	// diversityVarianceScale converts the average core-trait variance
	// into a roughly [0,100] diversity score (clamped).
	diversityVarianceScale = 10
)

// Metrics is the aggregate result for one candidate group.
type Metrics struct {
	// AverageScore is the mean of all computed pairwise scores, 0 when
	// no pair could be scored.
	AverageScore float64

	// Pairwise lists every scored unordered pair in input order (i<j),
	// with participant IDs filled in.
	Pairwise []compat.PairwiseScore

	// Dynamics is nil for degenerate groups (fewer than two
	// participants with trait data).
	Dynamics *Dynamics
}

// Dynamics describes the group beyond the single average number.
type Dynamics struct {
	// AverageTraits is the mean personality vector across members with
	// trait data (age included).
	AverageTraits traits.PersonalityVector

	// TraitLevels labels each averaged trait dimension with its
	// 20-point band.
	TraitLevels map[traits.TraitName]traits.Level

	// Dominant lists the dimensions whose average reaches the high
	// bands, in canonical trait order.
	Dominant []traits.TraitName

	// LowPairs is the subset of Pairwise scoring below
	// LowPairThreshold.
	LowPairs []compat.PairwiseScore

	// Recommendations holds human-readable size/balance advice.
	Recommendations []string

	// DiversityScore is the normalized average variance across the
	// four core traits, clamped to [0,100].
	DiversityScore float64
}
