// Package group_test exercises aggregation and dynamics via the public
// API: degenerate groups, pair ordering, missing trait data, diversity
// and recommendation triggers.
package group_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// uniform builds a participant whose every trait equals v.
func uniform(id string, v, age float64) traits.Participant {
	return traits.Participant{
		ID: id,
		Traits: &traits.PersonalityVector{
			EnergyLevel:        v,
			SocialPreference:   v,
			AdventureStyle:     v,
			RiskTolerance:      v,
			PlanningStyle:      v,
			CommunicationStyle: v,
			ExperienceLevel:    v,
			LeadershipStyle:    v,
			Age:                age,
		},
	}
}

// TestScore_DegenerateGroups: sizes 0 and 1 yield the neutral Metrics.
func TestScore_DegenerateGroups(t *testing.T) {
	for _, ps := range [][]traits.Participant{
		nil,
		{uniform("solo", 50, 30)},
	} {
		m := group.Score(ps)
		require.Zero(t, m.AverageScore)
		require.Empty(t, m.Pairwise)
		require.Nil(t, m.Dynamics)
	}
}

// TestScore_AllMissingTraits: participants without assessment data
// degrade to the neutral Metrics instead of erroring.
func TestScore_AllMissingTraits(t *testing.T) {
	ps := []traits.Participant{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := group.Score(ps)
	require.Zero(t, m.AverageScore)
	require.Empty(t, m.Pairwise)
	require.Nil(t, m.Dynamics)
}

// TestScore_SkipsMissingTraits: a member without data is excluded from
// pairing but the rest of the group is scored normally.
func TestScore_SkipsMissingTraits(t *testing.T) {
	ps := []traits.Participant{
		uniform("a", 50, 30),
		{ID: "ghost"},
		uniform("b", 52, 30),
		uniform("c", 48, 31),
	}
	m := group.Score(ps)

	require.Len(t, m.Pairwise, 3) // C(3,2), ghost excluded
	for _, pair := range m.Pairwise {
		require.NotEqual(t, "ghost", pair.AID)
		require.NotEqual(t, "ghost", pair.BID)
	}
	require.NotNil(t, m.Dynamics)
}

// TestScore_PairOrderingAndIDs: pairs come out in input order (i<j)
// with IDs attached.
func TestScore_PairOrderingAndIDs(t *testing.T) {
	ps := []traits.Participant{
		uniform("a", 40, 30),
		uniform("b", 50, 30),
		uniform("c", 60, 30),
	}
	m := group.Score(ps)

	require.Len(t, m.Pairwise, 3)
	require.Equal(t, "a", m.Pairwise[0].AID)
	require.Equal(t, "b", m.Pairwise[0].BID)
	require.Equal(t, "a", m.Pairwise[1].AID)
	require.Equal(t, "c", m.Pairwise[1].BID)
	require.Equal(t, "b", m.Pairwise[2].AID)
	require.Equal(t, "c", m.Pairwise[2].BID)
}

// TestScore_AverageMatchesPairs: AverageScore is the mean of Pairwise.
func TestScore_AverageMatchesPairs(t *testing.T) {
	ps := []traits.Participant{
		uniform("a", 20, 25),
		uniform("b", 55, 35),
		uniform("c", 90, 45),
	}
	m := group.Score(ps)

	var sum float64
	for _, pair := range m.Pairwise {
		sum += pair.Score
	}
	require.InDelta(t, sum/float64(len(m.Pairwise)), m.AverageScore, 1e-9)
}

// TestScore_Dynamics_LevelsAndDominant: averaged traits are labeled in
// 20-point bands and high averages are reported dominant.
func TestScore_Dynamics_LevelsAndDominant(t *testing.T) {
	high := uniform("a", 80, 30)
	high.Traits.PlanningStyle = 10
	peer := uniform("b", 84, 32)
	peer.Traits.PlanningStyle = 14

	m := group.Score([]traits.Participant{high, peer})
	require.NotNil(t, m.Dynamics)

	require.Equal(t, traits.LevelVeryHigh, m.Dynamics.TraitLevels[traits.TraitEnergy])
	require.Equal(t, traits.LevelVeryLow, m.Dynamics.TraitLevels[traits.TraitPlanning])

	require.Contains(t, m.Dynamics.Dominant, traits.TraitEnergy)
	require.NotContains(t, m.Dynamics.Dominant, traits.TraitPlanning)
}

// TestScore_Dynamics_LowPairs: pairs under the threshold are surfaced.
func TestScore_Dynamics_LowPairs(t *testing.T) {
	// Opposite personalities score far below 60, aligned ones above.
	ps := []traits.Participant{
		uniform("calm", 10, 30),
		uniform("calm2", 14, 31),
		uniform("wild", 95, 30),
	}
	m := group.Score(ps)
	require.NotNil(t, m.Dynamics)

	require.NotEmpty(t, m.Dynamics.LowPairs)
	for _, pair := range m.Dynamics.LowPairs {
		require.Less(t, pair.Score, float64(group.LowPairThreshold))
	}
	// calm↔calm2 is compatible and must not be flagged.
	for _, pair := range m.Dynamics.LowPairs {
		require.False(t, pair.AID == "calm" && pair.BID == "calm2")
	}
}

// TestDiversity_UniformVsSpread: identical members score 0 diversity;
// a widely spread group scores high; and the scale clamps at 100.
func TestDiversity_UniformVsSpread(t *testing.T) {
	same := []traits.Participant{uniform("a", 50, 30), uniform("b", 50, 30)}
	require.Zero(t, group.Diversity(same))

	spread := []traits.Participant{
		uniform("a", 0, 30), uniform("b", 100, 30),
		uniform("c", 0, 30), uniform("d", 100, 30),
	}
	d := group.Diversity(spread)
	require.Equal(t, 100.0, d) // variance 2500 clamps to the ceiling
}

// TestCoreVariance_Degenerate: fewer than two scored members → 0.
func TestCoreVariance_Degenerate(t *testing.T) {
	require.Zero(t, group.CoreVariance(nil))
	require.Zero(t, group.CoreVariance([]traits.Participant{uniform("a", 40, 30)}))
	require.Zero(t, group.CoreVariance([]traits.Participant{{ID: "x"}, {ID: "y"}}))
}

// TestRecommendations_Triggers: each advisory fires on its condition.
func TestRecommendations_Triggers(t *testing.T) {
	// Small group → "small" advice present.
	small := group.Score([]traits.Participant{uniform("a", 50, 30), uniform("b", 52, 30)})
	require.NotNil(t, small.Dynamics)
	requireAnyContains(t, small.Dynamics.Recommendations, "small")

	// Nine near-identical members → "large" advice present.
	var big []traits.Participant
	for i := 0; i < 9; i++ {
		big = append(big, uniform(string(rune('a'+i)), 50+float64(i), 30))
	}
	large := group.Score(big)
	require.NotNil(t, large.Dynamics)
	requireAnyContains(t, large.Dynamics.Recommendations, "large")

	// Very low average energy → intensity advice present.
	lazy := group.Score([]traits.Participant{uniform("a", 10, 30), uniform("b", 14, 30)})
	require.NotNil(t, lazy.Dynamics)
	requireAnyContains(t, lazy.Dynamics.Recommendations, "energy is very low")
}

func requireAnyContains(t *testing.T, recs []string, substr string) {
	t.Helper()
	for _, r := range recs {
		if strings.Contains(r, substr) {
			return
		}
	}
	t.Fatalf("no recommendation containing %q in %v", substr, recs)
}
