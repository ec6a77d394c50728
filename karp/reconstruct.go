// File: reconstruct.go
// Role: Stage 5 — replay predecessor links into a length-n walk and cut out
//       a concrete simple cycle realizing the computed mean.
package karp

import "fmt"

// reconstruct builds one walk of exactly n edges ending at the winning
// vertex, then extracts a simple cycle from it.
//
// Steps:
//  1. Walk backward through pred[n], pred[n−1], …, pred[1] starting at the
//     winning vertex, filling positions n down to 0; the walk exists because
//     best[n][jStar] is finite.
//  2. Scan the suffix starting at position kStar (the optimal restart point
//     from the bound evaluation) for a repeated vertex; on the first repeat,
//     emit the closed sub-sequence from the first occurrence through the
//     current position.
//  3. If the suffix happens to be repeat-free (possible when the repeat sits
//     before the restart point), scan the full walk instead. The full walk
//     has n+1 positions over n distinct vertices, so by pigeonhole a repeat
//     always exists — and every cycle lying on this walk has mean weight
//     exactly equal to the computed bound, because removing the cycle leaves
//     a shorter walk that the bound's min-over-k already accounts for.
//
// The emitted cycle is closed (first ID repeated last), its interior
// vertices are pairwise distinct, and its edges' mean weight equals the
// computed bound up to floating-point rounding — that equivalence is the
// crux of Karp's proof and is asserted by the property tests.
//
// Complexity: O(V) time and space.
func (r *runner) reconstruct() ([]string, error) {
	n := len(r.nodes)

	// 1) Replay predecessors backward, writing positions n → 0 directly so
	//    the walk ends up in forward order without a reversal pass.
	walk := make([]int, n+1)
	walk[n] = r.jStar
	cur := r.jStar
	for k := n; k >= 1; k-- {
		cur = r.pred[k][cur]
		if cur == noPred {
			// best[n][jStar] is finite, so the chain must be complete.
			return nil, fmt.Errorf("%w: broken predecessor chain at length %d", ErrNoCycle, k)
		}
		walk[k-1] = cur
	}

	// 2) Prefer the segment from the optimal restart point to the walk's end.
	if cycle := r.firstCycle(walk[r.kStar:]); cycle != nil {
		return cycle, nil
	}

	// 3) Fall back to the full walk; pigeonhole guarantees a repeat here.
	if cycle := r.firstCycle(walk); cycle != nil {
		return cycle, nil
	}

	return nil, fmt.Errorf("%w: walk of %d edges has no repeated vertex", ErrNoCycle, n)
}

// firstCycle scans seg left to right, recording where each dense index is
// first seen, and returns the closed sub-sequence between the first repeated
// index's two occurrences, translated back to vertex IDs. Returns nil when
// seg has no repeated index.
func (r *runner) firstCycle(seg []int) []string {
	firstSeen := make(map[int]int, len(seg))
	var (
		i, j, start int
		ok          bool
	)
	for i, j = range seg {
		if start, ok = firstSeen[j]; ok {
			cycle := make([]string, 0, i-start+1)
			for _, p := range seg[start : i+1] {
				cycle = append(cycle, r.nodes[p])
			}

			return cycle
		}
		firstSeen[j] = i
	}

	return nil
}
