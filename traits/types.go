// Package traits - core personality types consumed across trvlmatch.
package traits

// TraitName identifies one dimension of a PersonalityVector.
type TraitName string

// Canonical trait dimension names. The four "core" traits (energy,
// social, adventure, risk) drive clustering distance and diversity;
// the remaining dimensions feed the weighted pair scorer and the
// conflict detectors.
const (
	TraitEnergy        TraitName = "energy_level"
	TraitSocial        TraitName = "social_preference"
	TraitAdventure     TraitName = "adventure_style"
	TraitRisk          TraitName = "risk_tolerance"
	TraitPlanning      TraitName = "planning_style"
	TraitCommunication TraitName = "communication_style"
	TraitExperience    TraitName = "experience_level"
	TraitLeadership    TraitName = "leadership_style"
)

// CoreTraits lists the four dimensions used for centroid distance and
// group diversity, in canonical order. Fixed order keeps every
// iteration over core traits deterministic.
var CoreTraits = [4]TraitName{TraitEnergy, TraitSocial, TraitAdventure, TraitRisk}

// PersonalityVector holds one traveler's trait scores.
//
// Each trait field is conceptually 0–100; values outside that range are
// accepted as given (final compatibility scores are clamped by the
// consumers, never rejected here). Age is in years and unbounded.
// A PersonalityVector is immutable once handed to the engine: no
// trvlmatch function mutates it.
type PersonalityVector struct {
	EnergyLevel        float64
	SocialPreference   float64
	AdventureStyle     float64
	RiskTolerance      float64
	PlanningStyle      float64
	CommunicationStyle float64
	ExperienceLevel    float64
	LeadershipStyle    float64

	// Age in years. Used by the age-gap modifier and age-gap conflict
	// detector, whose tolerance bands scale with the pair's average age.
	Age float64
}

// Trait returns the value of the named dimension, and whether the name
// is one of the canonical trait names. Age is not addressable through
// Trait; it is not a 0–100 trait dimension.
func (p PersonalityVector) Trait(name TraitName) (float64, bool) {
	switch name {
	case TraitEnergy:
		return p.EnergyLevel, true
	case TraitSocial:
		return p.SocialPreference, true
	case TraitAdventure:
		return p.AdventureStyle, true
	case TraitRisk:
		return p.RiskTolerance, true
	case TraitPlanning:
		return p.PlanningStyle, true
	case TraitCommunication:
		return p.CommunicationStyle, true
	case TraitExperience:
		return p.ExperienceLevel, true
	case TraitLeadership:
		return p.LeadershipStyle, true
	default:
		return 0, false
	}
}

// Core returns the four core trait values in CoreTraits order.
// Allocation-free; used by clustering hot paths.
func (p PersonalityVector) Core() [4]float64 {
	return [4]float64{p.EnergyLevel, p.SocialPreference, p.AdventureStyle, p.RiskTolerance}
}

// Participant couples an identifier and display profile with one
// PersonalityVector. The profile fields (Name, Avatar) are opaque to
// the engine; they are carried through untouched for the caller's
// presentation layer.
type Participant struct {
	ID     string
	Name   string
	Avatar string

	// Traits is the assessed personality vector. A nil Traits marks a
	// participant with missing assessment data: such participants are
	// skipped by pairwise computations rather than causing errors.
	Traits *PersonalityVector

	// AdventureType is an optional context tag (e.g. "extreme-sports")
	// that re-weights risk-tolerance scoring. Empty or unknown tags
	// weigh neutral.
	AdventureType string
}

// HasTraits reports whether the participant carries assessment data.
func (p Participant) HasTraits() bool { return p.Traits != nil }

// Level is a qualitative label for a 0–100 trait value, in 20-point
// bands.
type Level string

const (
	LevelVeryLow  Level = "Very Low"
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
	LevelVeryHigh Level = "Very High"
)

// LevelOf maps a trait value onto its 20-point band. Values below 0
// fall in the lowest band, values of 80 and above in the highest.
func LevelOf(v float64) Level {
	switch {
	case v < 20:
		return LevelVeryLow
	case v < 40:
		return LevelLow
	case v < 60:
		return LevelModerate
	case v < 80:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
