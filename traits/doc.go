// Package traits defines the personality model shared by every other
// trvlmatch package, plus the curved per-trait compatibility matrix.
//
// 🚀 What lives here?
//
//   - PersonalityVector — a traveler's 0–100 scores across eight trait
//     dimensions, plus age.
//   - Participant — an identifier, an opaque display profile, one
//     PersonalityVector and an optional adventure-type context tag.
//   - ScoreTrait — the trait compatibility matrix: each core trait has
//     its own non-linear mapping from |a−b| to a [0,1] curve value,
//     because traits differ in whether similarity or *moderate*
//     difference is desirable.
//
// ✨ Why curves instead of one formula?
//
//	Extreme introvert/extrovert pairings are the worst case, so the
//	social curve decreases monotonically with difference. Adventure and
//	planning styles instead *peak* at a moderate difference: a little
//	complementary variety beats identical tastes. Risk tolerance decays
//	monotonically but is re-weighted by the adventure-type context
//	(an extreme-sports trip cares much more about a risk gap than a
//	family-friendly one).
//
// Contracts:
//
//   - Unknown trait names score a neutral 0.5; unknown adventure types
//     weigh a neutral 1.0. Nothing in this package returns an error or
//     panics on user input.
//   - Trait values are used as given, even outside [0,100]; consumers
//     clamp final scores, this package does not reject inputs.
//
// All band boundaries and weights are named constants in curves.go so
// the scoring behavior stays auditable and independently tunable.
package traits
