// Package conflict - success prediction from a conflict roll-up.
package conflict

import "github.com/liam-jons/trvlmatch/traits"

// Success-score formula constants.
const (
	successBaseline = 85

	criticalPenalty = 15
	majorPenalty    = 8
	minorPenalty    = 3

	// Diversity in the sweet spot earns a bonus: enough variety to be
	// interesting, not enough to splinter.
	diversitySweetLow  = 60
	diversitySweetHigh = 85
	diversityBonus     = 5

	// Sized-right groups earn a smaller bonus.
	sizeBonusMin = 4
	sizeBonusMax = 8
	sizeBonus    = 3
)

// Prediction label floors.
const (
	predictionExcellentMin   = 80
	predictionGoodMin        = 70
	predictionFairMin        = 60
	predictionChallengingMin = 50
)

// PredictSuccess turns a group, its conflict report and its diversity
// score into a success outlook.
//
// Formula: start at 85; subtract 15 per critical, 8 per major and 3
// per minor conflict; add 5 when the diversity score sits in the
// 60–85 sweet spot and 3 when the group size is in [4,8]; clamp to
// [0,100]. The label bands the score (excellent ≥ 80, good ≥ 70,
// fair ≥ 60, challenging ≥ 50, high_risk below). Confidence is high
// unless any critical conflict drops it to medium.
//
// diversity is the group's diversity score as computed by
// group.Diversity; passing it in avoids recomputing the dynamics the
// caller usually already has.
//
// Complexity: O(1).
func PredictSuccess(participants []traits.Participant, rep Report, diversity float64) SuccessPrediction {
	groupSize := len(participants)

	score := float64(successBaseline) -
		float64(criticalPenalty*rep.CriticalCount) -
		float64(majorPenalty*rep.MajorCount) -
		float64(minorPenalty*rep.MinorCount)

	if diversity >= diversitySweetLow && diversity <= diversitySweetHigh {
		score += diversityBonus
	}
	if groupSize >= sizeBonusMin && groupSize <= sizeBonusMax {
		score += sizeBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	confidence := ConfidenceHigh
	if rep.CriticalCount > 0 {
		confidence = ConfidenceMedium
	}

	return SuccessPrediction{
		SuccessScore: score,
		Prediction:   predictionLabel(score),
		Confidence:   confidence,
	}
}

func predictionLabel(score float64) Prediction {
	switch {
	case score >= predictionExcellentMin:
		return PredictionExcellent
	case score >= predictionGoodMin:
		return PredictionGood
	case score >= predictionFairMin:
		return PredictionFair
	case score >= predictionChallengingMin:
		return PredictionChallenging
	default:
		return PredictionHighRisk
	}
}
