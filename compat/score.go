// Package compat - linear dimension kernel and the advanced weighted
// pair scorer.
package compat

import (
	"math"

	"github.com/liam-jons/trvlmatch/traits"
)

// Experience-gap modifier bands: small gaps help, large gaps hurt.
const (
	experienceGapClose   = 10 // gap ≤ 10 → +10
	experienceGapNear    = 20 // gap ≤ 20 → +5
	experienceGapNeutral = 30 // gap ≤ 30 → 0, beyond → −5

	experienceBonusClose  = 10
	experienceBonusNear   = 5
	experiencePenaltyWide = -5
)

// Age modifier: the tolerated gap scales with the pair's average age —
// a 10-year gap reads very differently at 22 than at 45.
const (
	ageBandYoung  = 30 // average age < 30
	ageBandMiddle = 50 // average age < 50

	ageToleranceYoung  = 5
	ageToleranceMiddle = 8
	ageToleranceOlder  = 12

	ageBonusWithin   = 5
	agePenaltyBeyond = -3
)

// Leadership modifier: two dominant leaders clash, two passive members
// drift, a clear complement helps.
const (
	leadershipHighBar  = 70 // both above → too many leaders
	leadershipLowBar   = 30 // both below → no leadership
	leadershipSpreadOK = 40 // difference above → good complement

	leadershipPenaltyClash = -5
	leadershipPenaltyVoid  = -3
	leadershipBonusSpread  = 5
)

// ScoreDimension is the generic linear similarity for one dimension:
// 100 at identical values, minus one point per point of |a−b|, floored
// at 0. Distinct from the curved traits.ScoreTrait matrix on purpose —
// the system keeps both scoring modes.
//
// Properties: ScoreDimension(x,x) == 100 for any x; monotonically
// decreasing in |a−b|; symmetric.
func ScoreDimension(a, b float64) float64 {
	s := (100 - math.Abs(a-b)) / 100 * 100
	if s < 0 {
		return 0
	}
	return s
}

// ScorePair computes the advanced weighted compatibility score for two
// personality vectors.
//
// Stages:
//  1. Weighted dimension sum: each of the six dimensions is scored via
//     ScoreDimension and combined under w (nil w ⇒ DefaultWeights),
//     normalized by the weight total.
//  2. Additive modifiers at reduced influence: experience gap ×0.10,
//     age gap ×0.05 (tolerance band scales with average age),
//     leadership complementarity ×0.05.
//  3. Clamp to [0,100] and round to the nearest integer.
//
// A zero weight total skips stage 1 (base 0) rather than dividing by
// zero; the modifiers still apply.
//
// Complexity: O(1).
func ScorePair(p1, p2 traits.PersonalityVector, w *Weights) PairwiseScore {
	var weights Weights
	if w != nil {
		weights = *w
	} else {
		weights = DefaultWeights()
	}

	breakdown := make(map[traits.TraitName]float64, 6)

	var weighted float64
	weights.forEach(p1, p2, func(dim traits.TraitName, weight, a, b float64) {
		s := ScoreDimension(a, b)
		breakdown[dim] = s
		weighted += weight * s
	})

	var base float64
	if total := weights.total(); total > 0 {
		base = weighted / total
	}

	score := base +
		experienceModifier(p1.ExperienceLevel, p2.ExperienceLevel)*experienceModifierInfluence +
		ageModifier(p1.Age, p2.Age)*ageModifierInfluence +
		leadershipModifier(p1.LeadershipStyle, p2.LeadershipStyle)*leadershipModifierInfluence

	return PairwiseScore{
		Score:     math.Round(Clamp(score)),
		Breakdown: breakdown,
	}
}

// Clamp bounds a score to [0,100].
func Clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func experienceModifier(a, b float64) float64 {
	gap := math.Abs(a - b)
	switch {
	case gap <= experienceGapClose:
		return experienceBonusClose
	case gap <= experienceGapNear:
		return experienceBonusNear
	case gap <= experienceGapNeutral:
		return 0
	default:
		return experiencePenaltyWide
	}
}

// AgeGapTolerance returns the tolerated age gap for a pair with the
// given average age. Shared with the conflict detector's age-gap
// scaling rationale, but with the scorer's tighter bands.
func AgeGapTolerance(avgAge float64) float64 {
	switch {
	case avgAge < ageBandYoung:
		return ageToleranceYoung
	case avgAge < ageBandMiddle:
		return ageToleranceMiddle
	default:
		return ageToleranceOlder
	}
}

func ageModifier(a, b float64) float64 {
	gap := math.Abs(a - b)
	tol := AgeGapTolerance((a + b) / 2)
	switch {
	case gap <= tol:
		return ageBonusWithin
	case gap <= 2*tol:
		return 0
	default:
		return agePenaltyBeyond
	}
}

func leadershipModifier(a, b float64) float64 {
	switch {
	case a > leadershipHighBar && b > leadershipHighBar:
		return leadershipPenaltyClash
	case a < leadershipLowBar && b < leadershipLowBar:
		return leadershipPenaltyVoid
	case math.Abs(a-b) > leadershipSpreadOK:
		return leadershipBonusSpread
	default:
		return 0
	}
}
