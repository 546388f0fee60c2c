package funshrink

import (
	"github.com/pbt-go/funshrink/pfun"
)

// maxShrinkSteps bounds the number of accepted shrink steps, so a
// non-well-founded output shrinker cannot descend forever.
const maxShrinkSteps = 1000

// maxShrinkCandidates bounds the candidates examined within one step. A
// candidate sequence over an unbounded domain can be infinite while no
// candidate fails: shrinking an undecomposed region materializes it one level,
// exposing another undecomposed region below. Accepted cuts remove such
// regions early (they never affect behavior, so the whole-region drops offered
// first always reproduce the failure), but when the search is already at a
// minimum the walk must be cut off rather than exhausted.
const maxShrinkCandidates = 1000

// Minimize drives the shrink search: it walks the candidate sequence, commits
// to the first candidate that still fails, and restarts from there until no
// candidate fails. fails must be the failing property under investigation;
// the returned function still reproduces it (or is f itself, if nothing
// smaller does).
//
// The search is sequential and deterministic: candidates are evaluated in the
// order the shrink sequence yields them, so the reported minimum is stable
// across runs.
func Minimize[A, C any](f Fun[A, C], sc pfun.Shrinker[C], fails func(Fun[A, C]) bool) Fun[A, C] {
	cur := f
	for steps := 0; steps < maxShrinkSteps; steps++ {
		progressed := false
		cands := cur.Shrink(sc)
		for examined := 0; examined < maxShrinkCandidates; examined++ {
			cand, rest, ok := cands.Next()
			if !ok {
				break
			}
			cands = rest
			if fails(cand) {
				cur = cand
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	return cur
}
