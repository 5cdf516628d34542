// Package cluster_test - shared fixtures and invariant helpers.
package cluster_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liam-jons/trvlmatch/cluster"
	"github.com/liam-jons/trvlmatch/traits"
)

// member builds a participant from its four core traits; secondary
// dimensions stay moderate so they do not skew distances.
func member(id string, energy, social, adventure, risk float64) traits.Participant {
	return traits.Participant{
		ID: id,
		Traits: &traits.PersonalityVector{
			EnergyLevel:        energy,
			SocialPreference:   social,
			AdventureStyle:     adventure,
			RiskTolerance:      risk,
			PlanningStyle:      50,
			CommunicationStyle: 50,
			ExperienceLevel:    50,
			LeadershipStyle:    50,
			Age:                30,
		},
	}
}

// uniformPool builds n near-identical participants (ids p0..p{n-1}).
func uniformPool(n int, base float64) []traits.Participant {
	ps := make([]traits.Participant, n)
	for i := range ps {
		v := base + float64(i%3) // tiny jitter, stays dense
		ps[i] = member(fmt.Sprintf("p%d", i), v, v, v, v)
	}
	return ps
}

// twoBlobPool builds n participants split between two well-separated
// personality blobs.
func twoBlobPool(n int) []traits.Participant {
	ps := make([]traits.Participant, n)
	for i := range ps {
		base := 15.0
		if i%2 == 1 {
			base = 85.0
		}
		v := base + float64(i%4)
		ps[i] = member(fmt.Sprintf("p%d", i), v, v, 50, v)
	}
	return ps
}

// requireExactPartition asserts the core clustering invariant: the
// multiset union of all groups plus the leftover equals the input pool
// exactly — no participant lost, none duplicated.
func requireExactPartition(t *testing.T, pool []traits.Participant, res cluster.Result) {
	t.Helper()

	var got []string
	for _, g := range res.Groups {
		for _, p := range g.Members {
			got = append(got, p.ID)
		}
	}
	for _, p := range res.Leftover {
		got = append(got, p.ID)
	}

	want := make([]string, len(pool))
	for i, p := range pool {
		want[i] = p.ID
	}

	sort.Strings(got)
	sort.Strings(want)
	require.Equal(t, want, got, "groups+leftover must partition the pool")
}

// groupIDs returns a group's member ids, sorted.
func groupIDs(g cluster.Group) []string {
	ids := make([]string, len(g.Members))
	for i, p := range g.Members {
		ids[i] = p.ID
	}
	sort.Strings(ids)
	return ids
}
