// Package conflict scans a candidate group for interpersonal
// incompatibilities and predicts the group's likely success.
//
// 🚀 The taxonomy
//
//	Seven independent detectors run over every pair, each emitting a
//	Record or nothing:
//	  1. energy mismatch        (major > 40, critical > 60)
//	  2. social extremes        (one side < 20, the other > 80)
//	  3. risk-tolerance gap     (major > 50, critical > 70)
//	  4. experience gap         (minor > 40, major > 60)
//	  5. age gap                (threshold scales with average age)
//	  6. leadership conflict    (too many leaders / leadership void)
//	  7. communication gap      (minor > 60)
//
// Records are bucketed by type and rolled up into severity counts and
// an overall risk level; PredictSuccess turns the roll-up plus the
// group's diversity and size into a [0,100] success score, a label and
// a confidence.
//
// Contracts:
//
//   - Participants without trait data are skipped, never an error.
//   - Detection is deterministic: pairs run in input order (i<j) and
//     detectors run in taxonomy order within a pair.
//   - Every threshold is a named constant in detect.go / predict.go.
//
// Complexity: O(n²) pairs × O(1) detectors.
package conflict
