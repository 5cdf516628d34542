package compat_test

import (
	"fmt"

	"github.com/liam-jons/trvlmatch/compat"
	"github.com/liam-jons/trvlmatch/traits"
)

// ExampleScoreDimension shows the linear kernel: one point of score
// per point of difference.
func ExampleScoreDimension() {
	fmt.Println(compat.ScoreDimension(70, 70))
	fmt.Println(compat.ScoreDimension(70, 80))
	fmt.Println(compat.ScoreDimension(0, 100))
	// Output:
	// 100
	// 90
	// 0
}

// ExampleScorePair scores two aligned travelers under the default
// weights.
func ExampleScorePair() {
	alex := traits.PersonalityVector{
		EnergyLevel: 60, SocialPreference: 55, AdventureStyle: 70,
		RiskTolerance: 65, PlanningStyle: 40, CommunicationStyle: 50,
		ExperienceLevel: 45, LeadershipStyle: 35, Age: 28,
	}
	sam := traits.PersonalityVector{
		EnergyLevel: 65, SocialPreference: 60, AdventureStyle: 75,
		RiskTolerance: 60, PlanningStyle: 45, CommunicationStyle: 55,
		ExperienceLevel: 50, LeadershipStyle: 40, Age: 31,
	}

	s := compat.ScorePair(alex, sam, nil)
	fmt.Println("score:", s.Score)
	fmt.Println("quality:", compat.QualityOf(s.Score))
	// Output:
	// score: 96
	// quality: excellent
}
