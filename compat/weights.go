package compat

import "github.com/liam-jons/trvlmatch/traits"

// Default dimension weights for the advanced scorer. They sum to 1.0;
// ScorePair normalizes by the actual sum, so callers overriding a
// subset need not rebalance the rest.
const (
	DefaultWeightEnergy        = 0.25
	DefaultWeightSocial        = 0.25
	DefaultWeightAdventure     = 0.20
	DefaultWeightRisk          = 0.15
	DefaultWeightPlanning      = 0.10
	DefaultWeightCommunication = 0.05
)

// Modifier influence factors: each additive modifier contributes at
// reduced weight relative to the dimension sum.
const (
	experienceModifierInfluence = 0.10
	ageModifierInfluence        = 0.05
	leadershipModifierInfluence = 0.05
)

// Weights configures the advanced scorer's dimension weighting.
//
// Zero-value fields mean exactly what they say (weight 0 silences a
// dimension); start from DefaultWeights and override the fields you
// care about:
//
//	w := compat.DefaultWeights()
//	w.Risk = 0.30 // risk-heavy trip
//	s := compat.ScorePair(p1, p2, &w)
//
// ScorePair treats a nil *Weights as DefaultWeights.
type Weights struct {
	Energy        float64
	Social        float64
	Adventure     float64
	Risk          float64
	Planning      float64
	Communication float64
}

// DefaultWeights returns the documented default weighting.
func DefaultWeights() Weights {
	return Weights{
		Energy:        DefaultWeightEnergy,
		Social:        DefaultWeightSocial,
		Adventure:     DefaultWeightAdventure,
		Risk:          DefaultWeightRisk,
		Planning:      DefaultWeightPlanning,
		Communication: DefaultWeightCommunication,
	}
}

// total is the normalization denominator for the dimension sum.
func (w Weights) total() float64 {
	return w.Energy + w.Social + w.Adventure + w.Risk + w.Planning + w.Communication
}

// forEach visits the six weighted dimensions in a fixed canonical
// order, keeping breakdown construction deterministic.
func (w Weights) forEach(p1, p2 traits.PersonalityVector, fn func(dim traits.TraitName, weight, a, b float64)) {
	fn(traits.TraitEnergy, w.Energy, p1.EnergyLevel, p2.EnergyLevel)
	fn(traits.TraitSocial, w.Social, p1.SocialPreference, p2.SocialPreference)
	fn(traits.TraitAdventure, w.Adventure, p1.AdventureStyle, p2.AdventureStyle)
	fn(traits.TraitRisk, w.Risk, p1.RiskTolerance, p2.RiskTolerance)
	fn(traits.TraitPlanning, w.Planning, p1.PlanningStyle, p2.PlanningStyle)
	fn(traits.TraitCommunication, w.Communication, p1.CommunicationStyle, p2.CommunicationStyle)
}
