// Package traits - the trait compatibility matrix.
//
// Each core trait maps |a−b| onto a [0,1] curve value through its own
// banded, non-linear curve. All band edges and values are named
// constants below; no thresholds hide inside the logic.
package traits

import "math"

// NeutralTraitScore is returned for trait names with no curve.
const NeutralTraitScore = 0.5

// NeutralTypeWeight is the multiplier for unknown adventure types.
const NeutralTypeWeight = 1.0

// Social curve: monotonically decreasing with difference. Extreme
// introvert/extrovert pairings are the worst case, so no band rewards
// difference.
const (
	socialBand1Diff = 10
	socialBand2Diff = 25
	socialBand3Diff = 40
	socialBand4Diff = 60

	socialBand1Score = 1.00
	socialBand2Score = 0.85
	socialBand3Score = 0.65
	socialBand4Score = 0.40
	socialTailScore  = 0.20
)

// Adventure-style curve: non-monotonic. Near-identical tastes score
// well (0.85) but a moderate 5–15 point gap scores *best* (0.90):
// complementary variety beats sameness.
const (
	adventureBand1Diff = 5
	adventureBand2Diff = 15
	adventureBand3Diff = 30
	adventureBand4Diff = 50

	adventureBand1Score = 0.85
	adventureBand2Score = 0.90 // the peak
	adventureBand3Score = 0.75
	adventureBand4Score = 0.50
	adventureTailScore  = 0.25
)

// Planning-style curve: the same complementary-reward shape as
// adventure, peaking in the 8–20 point band.
const (
	planningBand1Diff = 8
	planningBand2Diff = 20
	planningBand3Diff = 35
	planningBand4Diff = 55

	planningBand1Score = 0.80
	planningBand2Score = 0.90 // the peak
	planningBand3Score = 0.70
	planningBand4Score = 0.45
	planningTailScore  = 0.20
)

// Risk-tolerance curve: monotonically decreasing base score, then
// multiplied by the adventure-type weight for the risk dimension.
const (
	riskBand1Diff = 10
	riskBand2Diff = 25
	riskBand3Diff = 40
	riskBand4Diff = 60

	riskBand1Score = 0.95
	riskBand2Score = 0.80
	riskBand3Score = 0.60
	riskBand4Score = 0.35
	riskTailScore  = 0.15
)

// adventureTypeWeights is the fixed table keyed by
// (adventure type, trait dimension). Missing entries weigh
// NeutralTypeWeight. Only the risk curve consults the table today;
// keeping the dimension key makes extra entries additive, not breaking.
var adventureTypeWeights = map[string]map[TraitName]float64{
	"extreme-sports": {
		TraitRisk:      1.3,
		TraitAdventure: 1.2,
	},
	"family-friendly": {
		TraitRisk:      0.6,
		TraitAdventure: 0.8,
	},
	"wellness-retreat": {
		TraitRisk:   0.7,
		TraitSocial: 1.1,
	},
	"cultural": {
		TraitPlanning: 1.2,
	},
}

// TypeWeight returns the multiplier for the given adventure type and
// trait dimension, or NeutralTypeWeight when either key is unknown.
func TypeWeight(adventureType string, dim TraitName) float64 {
	dims, ok := adventureTypeWeights[adventureType]
	if !ok {
		return NeutralTypeWeight
	}
	w, ok := dims[dim]
	if !ok {
		return NeutralTypeWeight
	}
	return w
}

// ScoreTrait maps a pair of values for the named trait onto its curve.
//
// Contracts:
//   - The result is the raw curve value, nominally in [0,1]; the risk
//     curve's adventure-type weight may push it above 1 (e.g. ×1.3 for
//     extreme-sports). Consumers scale to [0,100] and clamp.
//   - Unknown trait names return NeutralTraitScore.
//   - adventureType only influences the risk curve; pass "" when no
//     context tag applies.
//
// Complexity: O(1).
func ScoreTrait(trait TraitName, a, b float64, adventureType string) float64 {
	diff := math.Abs(a - b)

	switch trait {
	case TraitSocial:
		return scoreSocial(diff)
	case TraitAdventure:
		return scoreAdventure(diff)
	case TraitPlanning:
		return scorePlanning(diff)
	case TraitRisk:
		return scoreRisk(diff) * TypeWeight(adventureType, TraitRisk)
	default:
		return NeutralTraitScore
	}
}

func scoreSocial(diff float64) float64 {
	switch {
	case diff <= socialBand1Diff:
		return socialBand1Score
	case diff <= socialBand2Diff:
		return socialBand2Score
	case diff <= socialBand3Diff:
		return socialBand3Score
	case diff <= socialBand4Diff:
		return socialBand4Score
	default:
		return socialTailScore
	}
}

func scoreAdventure(diff float64) float64 {
	switch {
	case diff <= adventureBand1Diff:
		return adventureBand1Score
	case diff <= adventureBand2Diff:
		return adventureBand2Score
	case diff <= adventureBand3Diff:
		return adventureBand3Score
	case diff <= adventureBand4Diff:
		return adventureBand4Score
	default:
		return adventureTailScore
	}
}

func scorePlanning(diff float64) float64 {
	switch {
	case diff <= planningBand1Diff:
		return planningBand1Score
	case diff <= planningBand2Diff:
		return planningBand2Score
	case diff <= planningBand3Diff:
		return planningBand3Score
	case diff <= planningBand4Diff:
		return planningBand4Score
	default:
		return planningTailScore
	}
}

func scoreRisk(diff float64) float64 {
	switch {
	case diff <= riskBand1Diff:
		return riskBand1Score
	case diff <= riskBand2Diff:
		return riskBand2Score
	case diff <= riskBand3Diff:
		return riskBand3Score
	case diff <= riskBand4Diff:
		return riskBand4Score
	default:
		return riskTailScore
	}
}
