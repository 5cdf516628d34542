package compat

import "github.com/liam-jons/trvlmatch/traits"

// PairwiseScore is one scored pair. Symmetric by construction:
// swapping AID/BID never changes Score or Breakdown.
type PairwiseScore struct {
	// AID and BID identify the scored participants. Left empty when a
	// score is computed from bare PersonalityVectors; the group
	// aggregator fills them in.
	AID string
	BID string

	// Score is the final compatibility score, clamped to [0,100] and
	// rounded to the nearest integer.
	Score float64

	// Breakdown maps each weighted dimension to its raw (unweighted)
	// linear similarity sub-score in [0,100].
	Breakdown map[traits.TraitName]float64
}

// Quality is a qualitative band for a [0,100] compatibility score,
// matching how presentation layers bin scores.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
	QualityNone      Quality = "none"
)

// Quality band floors.
const (
	qualityExcellentMin = 80
	qualityGoodMin      = 60
	qualityFairMin      = 40
	qualityPoorMin      = 20
)

// QualityOf maps a compatibility score onto its band.
func QualityOf(score float64) Quality {
	switch {
	case score >= qualityExcellentMin:
		return QualityExcellent
	case score >= qualityGoodMin:
		return QualityGood
	case score >= qualityFairMin:
		return QualityFair
	case score >= qualityPoorMin:
		return QualityPoor
	default:
		return QualityNone
	}
}
