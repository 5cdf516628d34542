// Package cluster - the greedy optimal-group builder.
package cluster

import (
	"github.com/liam-jons/trvlmatch/group"
	"github.com/liam-jons/trvlmatch/traits"
)

// Greedy partitions the pool by building one best-scoring group at a
// time.
//
// Per group: up to greedySeedCandidates seed participants are tried
// (in input order). From each seed the builder repeatedly appends
// whichever remaining participant maximizes the grown group's average
// compatibility — recomputed via the full aggregator on every
// candidate — until TargetGroupSize is reached. The best-averaging
// seed's group wins. Ties at any step resolve to the first candidate
// in input order.
//
// The loop repeats on the remaining pool until fewer than one
// target-size group remains or MaxGroups is hit; that remainder comes
// back in Result.Leftover together with any participant lacking trait
// data.
//
// Errors: ErrBadOptions / ErrUnknownLinkage from option validation.
//
// Complexity: O(maxGroups · seeds · g² · n · g²) in the worst case —
// cubic-ish in practice; fine for pools in the tens to low hundreds.
func Greedy(pool []traits.Participant, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	scored, unscored := splitPool(pool)
	res := Result{Strategy: StrategyGreedy}

	remaining := make([]traits.Participant, len(scored))
	copy(remaining, scored)

	for len(remaining) >= opts.TargetGroupSize && len(res.Groups) < opts.MaxGroups {
		members := bestGroupFrom(remaining, opts.TargetGroupSize)
		res.Groups = append(res.Groups, Group{
			Members: members,
			Metrics: group.Score(members),
		})
		remaining = removeMembers(remaining, members)
	}

	res.Leftover = append(remaining, unscored...)
	return res, nil
}

// bestGroupFrom tries several seeds and keeps the best-averaging
// group. remaining must hold at least size participants.
func bestGroupFrom(remaining []traits.Participant, size int) []traits.Participant {
	seeds := greedySeedCandidates
	if seeds > len(remaining) {
		seeds = len(remaining)
	}

	var (
		best    []traits.Participant
		bestAvg = -1.0
	)
	for s := 0; s < seeds; s++ {
		members := growFromSeed(remaining, s, size)
		avg := group.Score(members).AverageScore
		// Strict improvement only: the first seed reaching the maximum
		// wins.
		if avg > bestAvg {
			bestAvg = avg
			best = members
		}
	}
	return best
}

// growFromSeed grows a group from remaining[seed] by always appending
// the candidate that maximizes the resulting average score, first
// candidate in input order winning ties.
func growFromSeed(remaining []traits.Participant, seed, size int) []traits.Participant {
	members := []traits.Participant{remaining[seed]}
	used := make([]bool, len(remaining))
	used[seed] = true

	for len(members) < size {
		bestIdx := -1
		bestAvg := -1.0
		for i, p := range remaining {
			if used[i] {
				continue
			}
			avg := group.Score(append(members, p)).AverageScore
			if avg > bestAvg {
				bestAvg = avg
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		used[bestIdx] = true
		members = append(members, remaining[bestIdx])
	}
	return members
}

// removeMembers filters picked members out of remaining, preserving
// input order. IDs identify members; the engine assumes caller-unique
// participant IDs.
func removeMembers(remaining, picked []traits.Participant) []traits.Participant {
	drop := make(map[string]bool, len(picked))
	for _, p := range picked {
		drop[p.ID] = true
	}
	out := remaining[:0]
	for _, p := range remaining {
		if !drop[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
