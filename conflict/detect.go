// Package conflict - the seven pairwise detectors and the risk roll-up.
package conflict

import (
	"fmt"
	"math"

	"github.com/liam-jons/trvlmatch/traits"
)

// Energy mismatch bands.
const (
	energyMajorDiff    = 40
	energyCriticalDiff = 60
)

// Social extremes: one strong introvert paired with one strong
// extrovert.
const (
	socialIntrovertMax = 20
	socialExtrovertMin = 80
)

// Risk-tolerance gap bands.
const (
	riskMajorDiff    = 50
	riskCriticalDiff = 70
)

// Experience gap bands.
const (
	experienceMinorDiff = 40
	experienceMajorDiff = 60
)

// Age gap: the tolerated gap scales with the pair's average age; a gap
// beyond ageMajorFactor× the threshold escalates minor → major.
const (
	ageThresholdYoung  = 15 // average age < 30
	ageThresholdMiddle = 25 // average age < 50
	ageThresholdOlder  = 30 // average age ≥ 50

	ageBandYoung  = 30
	ageBandMiddle = 50

	ageMajorFactor = 1.5
)

// Leadership conflict: two dominant leaders clash; two passive members
// leave a void unless some other member leads strongly enough.
const (
	leadershipClashMin   = 75
	leadershipVoidMax    = 30
	otherStrongLeaderMin = 60
)

// Communication-style gap.
const communicationMinorDiff = 60

// Detect runs the seven-type taxonomy over every pair of the group and
// rolls the records up into a Report.
//
// Participants without trait data are skipped. Pairs are scanned in
// input order (i<j) and detectors run in taxonomy order, so the record
// ordering inside each ByType bucket is deterministic.
//
// Complexity: O(n²) pairs (the leadership-void check scans the group
// once per flagged pair, still O(n²) overall for realistic pools).
func Detect(participants []traits.Participant) Report {
	scored := make([]traits.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasTraits() {
			scored = append(scored, p)
		}
	}

	byType := make(map[Type][]Record)
	add := func(rec Record, ok bool) {
		if ok {
			byType[rec.Type] = append(byType[rec.Type], rec)
		}
	}

	for i := 0; i < len(scored); i++ {
		for j := i + 1; j < len(scored); j++ {
			a, b := scored[i], scored[j]
			add(detectEnergy(a, b))
			add(detectSocial(a, b))
			add(detectRisk(a, b))
			add(detectExperience(a, b))
			add(detectAge(a, b))
			add(detectLeadership(a, b, scored))
			add(detectCommunication(a, b))
		}
	}

	rep := Report{ByType: byType}
	for _, recs := range byType {
		for _, rec := range recs {
			switch rec.Severity {
			case SeverityCritical:
				rep.CriticalCount++
			case SeverityMajor:
				rep.MajorCount++
			case SeverityMinor:
				rep.MinorCount++
			}
		}
	}
	rep.OverallRisk = overallRisk(rep.CriticalCount, rep.MajorCount, rep.MinorCount)

	return rep
}

// overallRisk applies the documented roll-up rules.
func overallRisk(critical, major, minor int) Risk {
	switch {
	case critical > 0:
		return RiskCritical
	case major > 2:
		return RiskHigh
	case major >= 1 || minor > 3:
		return RiskMedium
	default:
		return RiskLow
	}
}

func detectEnergy(a, b traits.Participant) (Record, bool) {
	diff := math.Abs(a.Traits.EnergyLevel - b.Traits.EnergyLevel)
	if diff <= energyMajorDiff {
		return Record{}, false
	}
	sev := SeverityMajor
	if diff > energyCriticalDiff {
		sev = SeverityCritical
	}
	return Record{
		Type:           TypeEnergyMismatch,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       sev,
		Description:    fmt.Sprintf("Energy levels differ by %.0f points", diff),
		Recommendation: "Plan a mix of high-energy and low-key activities so both paces fit",
		Values:         [2]float64{a.Traits.EnergyLevel, b.Traits.EnergyLevel},
	}, true
}

func detectSocial(a, b traits.Participant) (Record, bool) {
	av, bv := a.Traits.SocialPreference, b.Traits.SocialPreference
	extreme := (av < socialIntrovertMax && bv > socialExtrovertMin) ||
		(bv < socialIntrovertMax && av > socialExtrovertMin)
	if !extreme {
		return Record{}, false
	}
	return Record{
		Type:           TypeSocialExtremes,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       SeverityMajor,
		Description:    "A strong introvert is paired with a strong extrovert",
		Recommendation: "Build in solo downtime alongside the social itinerary",
		Values:         [2]float64{av, bv},
	}, true
}

func detectRisk(a, b traits.Participant) (Record, bool) {
	diff := math.Abs(a.Traits.RiskTolerance - b.Traits.RiskTolerance)
	if diff <= riskMajorDiff {
		return Record{}, false
	}
	sev := SeverityMajor
	if diff > riskCriticalDiff {
		sev = SeverityCritical
	}
	return Record{
		Type:           TypeRiskTolerance,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       sev,
		Description:    fmt.Sprintf("Risk tolerance differs by %.0f points", diff),
		Recommendation: "Offer optional high-risk activities instead of mandatory ones",
		Values:         [2]float64{a.Traits.RiskTolerance, b.Traits.RiskTolerance},
	}, true
}

func detectExperience(a, b traits.Participant) (Record, bool) {
	diff := math.Abs(a.Traits.ExperienceLevel - b.Traits.ExperienceLevel)
	if diff <= experienceMinorDiff {
		return Record{}, false
	}
	sev := SeverityMinor
	if diff > experienceMajorDiff {
		sev = SeverityMajor
	}
	return Record{
		Type:           TypeExperienceGap,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       sev,
		Description:    fmt.Sprintf("Travel experience differs by %.0f points", diff),
		Recommendation: "Pair the newer traveler with the veteran for planning tasks",
		Values:         [2]float64{a.Traits.ExperienceLevel, b.Traits.ExperienceLevel},
	}, true
}

// ageGapThreshold returns the tolerated age gap for the pair's average
// age band.
func ageGapThreshold(avgAge float64) float64 {
	switch {
	case avgAge < ageBandYoung:
		return ageThresholdYoung
	case avgAge < ageBandMiddle:
		return ageThresholdMiddle
	default:
		return ageThresholdOlder
	}
}

func detectAge(a, b traits.Participant) (Record, bool) {
	gap := math.Abs(a.Traits.Age - b.Traits.Age)
	threshold := ageGapThreshold((a.Traits.Age + b.Traits.Age) / 2)
	if gap <= threshold {
		return Record{}, false
	}
	sev := SeverityMinor
	if gap > ageMajorFactor*threshold {
		sev = SeverityMajor
	}
	return Record{
		Type:           TypeAgeGap,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       sev,
		Description:    fmt.Sprintf("Age gap of %.0f years exceeds the %.0f-year comfort band", gap, threshold),
		Recommendation: "Choose activities that appeal across age groups",
		Values:         [2]float64{a.Traits.Age, b.Traits.Age},
	}, true
}

func detectLeadership(a, b traits.Participant, all []traits.Participant) (Record, bool) {
	av, bv := a.Traits.LeadershipStyle, b.Traits.LeadershipStyle

	if av > leadershipClashMin && bv > leadershipClashMin {
		return Record{
			Type:           TypeLeadership,
			AID:            a.ID,
			BID:            b.ID,
			Severity:       SeverityMajor,
			Description:    "Both travelers lead strongly; decisions may turn into contests",
			Recommendation: "Split responsibilities into clearly owned areas",
			Values:         [2]float64{av, bv},
		}, true
	}

	if av < leadershipVoidMax && bv < leadershipVoidMax && !hasOtherStrongLeader(all, a.ID, b.ID) {
		return Record{
			Type:           TypeLeadership,
			AID:            a.ID,
			BID:            b.ID,
			Severity:       SeverityMinor,
			Description:    "Neither traveler leads and no one else in the group steps up",
			Recommendation: "Agree on decision-making rules before the trip",
			Values:         [2]float64{av, bv},
		}, true
	}

	return Record{}, false
}

// hasOtherStrongLeader reports whether any group member outside the
// given pair leads strongly enough to fill a leadership void.
func hasOtherStrongLeader(all []traits.Participant, aid, bid string) bool {
	for _, p := range all {
		if p.ID == aid || p.ID == bid {
			continue
		}
		if p.Traits.LeadershipStyle > otherStrongLeaderMin {
			return true
		}
	}
	return false
}

func detectCommunication(a, b traits.Participant) (Record, bool) {
	diff := math.Abs(a.Traits.CommunicationStyle - b.Traits.CommunicationStyle)
	if diff <= communicationMinorDiff {
		return Record{}, false
	}
	return Record{
		Type:           TypeCommunication,
		AID:            a.ID,
		BID:            b.ID,
		Severity:       SeverityMinor,
		Description:    fmt.Sprintf("Communication styles differ by %.0f points", diff),
		Recommendation: "Set expectations for group chats and decision updates early",
		Values:         [2]float64{a.Traits.CommunicationStyle, b.Traits.CommunicationStyle},
	}, true
}
