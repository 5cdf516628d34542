package conflict

// Type identifies one kind of pairwise conflict.
type Type string

// The seven-type conflict taxonomy, in detection order.
const (
	TypeEnergyMismatch Type = "energy_mismatch"
	TypeSocialExtremes Type = "social_extremes"
	TypeRiskTolerance  Type = "risk_tolerance_conflict"
	TypeExperienceGap  Type = "experience_gap"
	TypeAgeGap         Type = "age_gap"
	TypeLeadership     Type = "leadership_conflict"
	TypeCommunication  Type = "communication_gap"
)

// Types lists the taxonomy in canonical order, handy for deterministic
// iteration over Report.ByType.
var Types = [7]Type{
	TypeEnergyMismatch, TypeSocialExtremes, TypeRiskTolerance,
	TypeExperienceGap, TypeAgeGap, TypeLeadership, TypeCommunication,
}

// Severity classifies one conflict record.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Risk is the aggregated risk level for a whole group.
type Risk string

const (
	RiskLow      Risk = "low"
	RiskMedium   Risk = "medium"
	RiskHigh     Risk = "high"
	RiskCritical Risk = "critical"
)

// Record is one detected pairwise conflict.
type Record struct {
	Type     Type
	AID, BID string
	Severity Severity

	// Description states what was detected; Recommendation suggests a
	// mitigation. Both are presentation-ready prose.
	Description    string
	Recommendation string

	// Values holds the two raw trait values the detector compared
	// (A's first), so callers can render the underlying numbers.
	Values [2]float64
}

// Report aggregates all records for one group.
type Report struct {
	// ByType buckets every record under its conflict type. Types with
	// no records are absent from the map.
	ByType map[Type][]Record

	// CriticalCount/MajorCount/MinorCount tally records by severity.
	CriticalCount int
	MajorCount    int
	MinorCount    int

	// OverallRisk is the roll-up: critical if any critical record
	// exists; high if more than two majors; medium if at least one
	// major or more than three minors; low otherwise.
	OverallRisk Risk
}

// Total returns the number of detected records across all types.
func (r Report) Total() int {
	return r.CriticalCount + r.MajorCount + r.MinorCount
}

// SuccessPrediction is the engine's outlook for a proposed group.
type SuccessPrediction struct {
	// SuccessScore ∈ [0,100].
	SuccessScore float64

	// Prediction is the label band for SuccessScore.
	Prediction Prediction

	// Confidence is high unless a critical conflict exists.
	Confidence Confidence
}

// Prediction labels a success score band.
type Prediction string

const (
	PredictionExcellent   Prediction = "excellent"
	PredictionGood        Prediction = "good"
	PredictionFair        Prediction = "fair"
	PredictionChallenging Prediction = "challenging"
	PredictionHighRisk    Prediction = "high_risk"
)

// Confidence qualifies a SuccessPrediction.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)
