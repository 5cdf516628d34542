// Package group - aggregation and dynamics analysis.
package group

import (
	"fmt"

	"github.com/liam-jons/trvlmatch/compat"
	"github.com/liam-jons/trvlmatch/traits"
)

// Score computes full Metrics for one candidate group.
//
// Stages:
//  1. Filter to participants carrying trait data.
//  2. Score every unordered pair (input order, i<j) via the advanced
//     scorer under default weights; average the results.
//  3. Analyze dynamics: average traits, level labels, dominant traits,
//     low pairs, diversity, recommendations.
//
// Degenerate inputs (fewer than two participants with trait data,
// including the empty and single-member group) return the neutral
// Metrics{AverageScore: 0, Pairwise: empty, Dynamics: nil}.
//
// Complexity: O(n²) time, O(n²) space for the pair list.
func Score(participants []traits.Participant) Metrics {
	scored := withTraits(participants)
	if len(scored) < 2 {
		return Metrics{Pairwise: []compat.PairwiseScore{}}
	}

	pairs := make([]compat.PairwiseScore, 0, len(scored)*(len(scored)-1)/2)
	var sum float64
	for i := 0; i < len(scored); i++ {
		for j := i + 1; j < len(scored); j++ {
			ps := compat.ScorePair(*scored[i].Traits, *scored[j].Traits, nil)
			ps.AID = scored[i].ID
			ps.BID = scored[j].ID
			pairs = append(pairs, ps)
			sum += ps.Score
		}
	}

	avg := sum / float64(len(pairs))

	return Metrics{
		AverageScore: avg,
		Pairwise:     pairs,
		Dynamics:     analyzeDynamics(participants, scored, pairs),
	}
}

// Diversity is the group's diversity score: the average population
// variance across the four core traits, scaled by
// diversityVarianceScale and clamped to [0,100]. Groups with fewer
// than two trait-carrying members score 0.
func Diversity(participants []traits.Participant) float64 {
	return compat.Clamp(CoreVariance(participants) / diversityVarianceScale)
}

// CoreVariance returns the unscaled average population variance across
// the four core traits, 0 for degenerate groups. Exposed for the
// clustering strategy selector, which needs the raw variance rather
// than the clamped diversity score.
func CoreVariance(participants []traits.Participant) float64 {
	scored := withTraits(participants)
	if len(scored) < 2 {
		return 0
	}

	var total float64
	for _, tr := range traits.CoreTraits {
		var mean float64
		for _, p := range scored {
			v, _ := p.Traits.Trait(tr)
			mean += v
		}
		mean /= float64(len(scored))

		var variance float64
		for _, p := range scored {
			v, _ := p.Traits.Trait(tr)
			d := v - mean
			variance += d * d
		}
		total += variance / float64(len(scored))
	}

	return total / float64(len(traits.CoreTraits))
}

// withTraits filters to participants with assessment data, preserving
// input order.
func withTraits(participants []traits.Participant) []traits.Participant {
	out := make([]traits.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasTraits() {
			out = append(out, p)
		}
	}
	return out
}

// analyzeDynamics builds the Dynamics block. scored must hold at least
// two members.
func analyzeDynamics(all, scored []traits.Participant, pairs []compat.PairwiseScore) *Dynamics {
	avg := averageTraits(scored)

	levels := make(map[traits.TraitName]traits.Level, 8)
	var dominant []traits.TraitName
	for _, tr := range allTraitNames {
		v, _ := avg.Trait(tr)
		levels[tr] = traits.LevelOf(v)
		if v >= dominantTraitMin {
			dominant = append(dominant, tr)
		}
	}

	var low []compat.PairwiseScore
	for _, ps := range pairs {
		if ps.Score < LowPairThreshold {
			low = append(low, ps)
		}
	}

	return &Dynamics{
		AverageTraits:   avg,
		TraitLevels:     levels,
		Dominant:        dominant,
		LowPairs:        low,
		Recommendations: recommendations(len(all), len(pairs), len(low), avg.EnergyLevel),
		DiversityScore:  Diversity(all),
	}
}

// allTraitNames fixes the canonical iteration order for level labeling.
var allTraitNames = [8]traits.TraitName{
	traits.TraitEnergy, traits.TraitSocial, traits.TraitAdventure,
	traits.TraitRisk, traits.TraitPlanning, traits.TraitCommunication,
	traits.TraitExperience, traits.TraitLeadership,
}

func averageTraits(scored []traits.Participant) traits.PersonalityVector {
	var avg traits.PersonalityVector
	for _, p := range scored {
		t := p.Traits
		avg.EnergyLevel += t.EnergyLevel
		avg.SocialPreference += t.SocialPreference
		avg.AdventureStyle += t.AdventureStyle
		avg.RiskTolerance += t.RiskTolerance
		avg.PlanningStyle += t.PlanningStyle
		avg.CommunicationStyle += t.CommunicationStyle
		avg.ExperienceLevel += t.ExperienceLevel
		avg.LeadershipStyle += t.LeadershipStyle
		avg.Age += t.Age
	}
	n := float64(len(scored))
	avg.EnergyLevel /= n
	avg.SocialPreference /= n
	avg.AdventureStyle /= n
	avg.RiskTolerance /= n
	avg.PlanningStyle /= n
	avg.CommunicationStyle /= n
	avg.ExperienceLevel /= n
	avg.LeadershipStyle /= n
	avg.Age /= n
	return avg
}

// recommendations emits size/balance advice. Wording is advisory text
// for the caller's presentation layer, not part of any contract.
func recommendations(size, pairCount, lowCount int, avgEnergy float64) []string {
	var recs []string

	if size < MinComfortableSize {
		recs = append(recs, fmt.Sprintf("Group of %d is small; consider adding members, groups of %d+ balance better", size, MinComfortableSize))
	}
	if size > MaxComfortableSize {
		recs = append(recs, fmt.Sprintf("Group of %d is large; consider splitting, groups above %d tend to fragment", size, MaxComfortableSize))
	}
	if pairCount > 0 && lowCount*3 > pairCount {
		recs = append(recs, fmt.Sprintf("%d of %d pairings score below %d; review the group composition", lowCount, pairCount, LowPairThreshold))
	}
	if avgEnergy < EnergyLowExtreme {
		recs = append(recs, "Average energy is very low; match the itinerary to a relaxed activity intensity")
	}
	if avgEnergy > EnergyHighExtreme {
		recs = append(recs, "Average energy is very high; match the itinerary to a demanding activity intensity")
	}

	return recs
}
