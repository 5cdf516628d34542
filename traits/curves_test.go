// Package traits_test exercises the trait compatibility matrix via the
// public API: exact band fixtures, complementarity peaks, adventure-type
// weighting and neutral fallbacks.
package traits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liam-jons/trvlmatch/traits"
)

// TestScoreTrait_SocialBands pins the social curve to its exact band
// values: monotonically decreasing with difference.
func TestScoreTrait_SocialBands(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 50, 50, 1.00},
		{"diff 15", 50, 65, 0.85},
		{"diff 35", 30, 65, 0.65},
		{"diff 55", 20, 75, 0.40},
		{"diff 85", 5, 90, 0.20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := traits.ScoreTrait(traits.TraitSocial, tc.a, tc.b, "")
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestScoreTrait_SocialSymmetry: the curve depends only on |a−b|.
func TestScoreTrait_SocialSymmetry(t *testing.T) {
	ab := traits.ScoreTrait(traits.TraitSocial, 20, 75, "")
	ba := traits.ScoreTrait(traits.TraitSocial, 75, 20, "")
	require.Equal(t, ab, ba)
}

// TestScoreTrait_AdventureComplementarity verifies the non-monotonic
// peak: a moderate gap beats near-identical tastes.
func TestScoreTrait_AdventureComplementarity(t *testing.T) {
	moderate := traits.ScoreTrait(traits.TraitAdventure, 45, 55, "") // diff 10 → peak band
	identical := traits.ScoreTrait(traits.TraitAdventure, 50, 52, "") // diff 2 → first band

	require.InDelta(t, 0.90, moderate, 1e-12)
	require.InDelta(t, 0.85, identical, 1e-12)
	require.Greater(t, moderate, identical)
}

// TestScoreTrait_PlanningPeak pins the planning curve's complementary
// shape: the 8–20 band outscores both neighbors.
func TestScoreTrait_PlanningPeak(t *testing.T) {
	tight := traits.ScoreTrait(traits.TraitPlanning, 50, 55, "")  // diff 5
	peak := traits.ScoreTrait(traits.TraitPlanning, 40, 55, "")   // diff 15
	beyond := traits.ScoreTrait(traits.TraitPlanning, 30, 55, "") // diff 25

	require.InDelta(t, 0.80, tight, 1e-12)
	require.InDelta(t, 0.90, peak, 1e-12)
	require.InDelta(t, 0.70, beyond, 1e-12)
}

// TestScoreTrait_RiskAdventureTypeWeight: extreme-sports amplifies the
// risk score, wellness-retreat dampens it, unknown types are neutral.
func TestScoreTrait_RiskAdventureTypeWeight(t *testing.T) {
	base := traits.ScoreTrait(traits.TraitRisk, 80, 85, "")
	extreme := traits.ScoreTrait(traits.TraitRisk, 80, 85, "extreme-sports")
	wellness := traits.ScoreTrait(traits.TraitRisk, 80, 85, "wellness-retreat")
	unknown := traits.ScoreTrait(traits.TraitRisk, 80, 85, "underwater-basket-weaving")

	require.Greater(t, extreme, base)
	require.Less(t, wellness, base)
	require.Equal(t, base, unknown)
}

// TestScoreTrait_UnknownTraitNeutral: names without a curve score 0.5.
func TestScoreTrait_UnknownTraitNeutral(t *testing.T) {
	require.Equal(t, traits.NeutralTraitScore, traits.ScoreTrait("favorite_color", 0, 100, ""))
	// Canonical names without a dedicated curve are neutral too.
	require.Equal(t, traits.NeutralTraitScore, traits.ScoreTrait(traits.TraitEnergy, 0, 100, ""))
}

// TestTypeWeight_Table spot-checks the fixed (type, dimension) table
// and its neutral fallbacks.
func TestTypeWeight_Table(t *testing.T) {
	require.Equal(t, 1.3, traits.TypeWeight("extreme-sports", traits.TraitRisk))
	require.Equal(t, 0.6, traits.TypeWeight("family-friendly", traits.TraitRisk))
	require.Equal(t, traits.NeutralTypeWeight, traits.TypeWeight("extreme-sports", traits.TraitCommunication))
	require.Equal(t, traits.NeutralTypeWeight, traits.TypeWeight("", traits.TraitRisk))
}

// TestLevelOf covers every 20-point band and both out-of-range sides.
func TestLevelOf(t *testing.T) {
	cases := []struct {
		v    float64
		want traits.Level
	}{
		{-5, traits.LevelVeryLow},
		{0, traits.LevelVeryLow},
		{19.9, traits.LevelVeryLow},
		{20, traits.LevelLow},
		{45, traits.LevelModerate},
		{60, traits.LevelHigh},
		{80, traits.LevelVeryHigh},
		{130, traits.LevelVeryHigh},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, traits.LevelOf(tc.v), "LevelOf(%v)", tc.v)
	}
}

// TestPersonalityVector_Trait round-trips every canonical name and
// rejects unknown ones.
func TestPersonalityVector_Trait(t *testing.T) {
	p := traits.PersonalityVector{
		EnergyLevel:        1,
		SocialPreference:   2,
		AdventureStyle:     3,
		RiskTolerance:      4,
		PlanningStyle:      5,
		CommunicationStyle: 6,
		ExperienceLevel:    7,
		LeadershipStyle:    8,
	}
	for i, name := range []traits.TraitName{
		traits.TraitEnergy, traits.TraitSocial, traits.TraitAdventure,
		traits.TraitRisk, traits.TraitPlanning, traits.TraitCommunication,
		traits.TraitExperience, traits.TraitLeadership,
	} {
		v, ok := p.Trait(name)
		require.True(t, ok, "trait %s", name)
		require.Equal(t, float64(i+1), v)
	}

	_, ok := p.Trait("age")
	require.False(t, ok)

	require.Equal(t, [4]float64{1, 2, 3, 4}, p.Core())
}
