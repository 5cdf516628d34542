package cluster_test

import (
	"fmt"

	"github.com/liam-jons/trvlmatch/cluster"
	"github.com/liam-jons/trvlmatch/traits"
)

// ExampleGreedy builds target-size groups from a small pool and shows
// the leftover contract: the remainder is returned, never dropped.
func ExampleGreedy() {
	pool := make([]traits.Participant, 10)
	for i := range pool {
		v := 40 + float64(i)
		pool[i] = traits.Participant{
			ID: fmt.Sprintf("traveler-%d", i),
			Traits: &traits.PersonalityVector{
				EnergyLevel: v, SocialPreference: v,
				AdventureStyle: v, RiskTolerance: v,
				PlanningStyle: 50, CommunicationStyle: 50,
				ExperienceLevel: 50, LeadershipStyle: 50, Age: 30,
			},
		}
	}

	opts := cluster.DefaultOptions()
	opts.TargetGroupSize = 4

	res, err := cluster.Greedy(pool, opts)
	if err != nil {
		fmt.Println("cluster failed:", err)
		return
	}

	fmt.Println("groups:", len(res.Groups))
	fmt.Println("leftover:", len(res.Leftover))
	// Output:
	// groups: 2
	// leftover: 2
}

// ExampleCluster runs the hybrid selector; Result.Strategy reveals
// which algorithm the pool's shape selected.
func ExampleCluster() {
	pool := make([]traits.Participant, 12)
	for i := range pool {
		v := 50 + float64(i%3) // tight pool, low variance
		pool[i] = traits.Participant{
			ID: fmt.Sprintf("traveler-%d", i),
			Traits: &traits.PersonalityVector{
				EnergyLevel: v, SocialPreference: v,
				AdventureStyle: v, RiskTolerance: v,
				PlanningStyle: 50, CommunicationStyle: 50,
				ExperienceLevel: 50, LeadershipStyle: 50, Age: 30,
			},
		}
	}

	res, err := cluster.Cluster(pool, cluster.DefaultOptions())
	if err != nil {
		fmt.Println("cluster failed:", err)
		return
	}

	fmt.Println("strategy:", res.Strategy)
	fmt.Println("groups:", len(res.Groups))
	// Output:
	// strategy: hierarchical
	// groups: 3
}
