// Package karp provides a precise implementation of Karp's mean-cycle
// algorithm: find the cycle whose arithmetic-mean edge weight is maximal
// (or minimal) in a directed weighted graph, together with that mean.
//
// Overview:
//
//   - Karp's theorem (1978): for a graph with n vertices, let best[k][v] be
//     the maximum weight of any walk of exactly k edges ending at v. Then
//
//     max over cycles C of mean(C)  =  max over v of min over 0 ≤ k < n of
//     (best[n][v] − best[k][v]) / (n − k)
//
//   - The implementation fills the exact-length tables bottom-up with
//     predecessor tracking, evaluates the bound, and then replays the
//     predecessor links to cut a concrete simple cycle out of a length-n
//     walk. The reported mean and the returned cycle always agree.
//
// When to use:
//
//   - Finding the most profitable cycle per step in arbitrage or gain graphs.
//   - Minimum cycle mean as a feasibility bound in scheduling and timing
//     analysis (use MinMeanCycle).
//   - Any setting where "best average per edge", not "best total", matters.
//
// Key features:
//
//   - Exact O(V·E) dynamic programming — no binary search, no convergence
//     tolerance on the answer itself.
//   - Functional options: WithMinimize for the minimum-mean variant,
//     WithEps for tie-comparison tolerance.
//   - Deterministic output: vertices are processed in the graph's sorted
//     enumeration order and ties keep the earliest-seen candidate.
//   - Self-loops are first-class cycles of length one.
//   - Undirected edges are treated as an arc in each direction.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph.
//   - ErrUnweightedGraph:
//     Returned if the graph is not configured with core.WithWeighted();
//     a mean weight is meaningless without weights.
//   - ErrEmptyGraph:
//     Returned if the graph has no vertices.
//   - ErrMalformedGraph:
//     Returned if an edge references a vertex outside the graph's vertex
//     set, detected during reverse-adjacency construction.
//   - ErrNoCycle:
//     Returned if the graph contains no cycle (for example, a DAG). The
//     package never returns an empty cycle as a success.
//   - ErrBadEps:
//     Signaled via panic by WithEps when a negative tolerance is passed;
//     an invalid tolerance is a programming error, not a runtime condition.
//
// API reference:
//
//	func MaxMeanCycle(g *core.Graph, opts ...Option) (cycle []string, mean float64, err error)
//	func MinMeanCycle(g *core.Graph, opts ...Option) (cycle []string, mean float64, err error)
//
//	  - g:     pointer to a core.Graph that must be weighted.
//	  - opts:  zero or more functional options:
//	      • WithMinimize(): compute the minimum-mean cycle (MaxMeanCycle only;
//	        MinMeanCycle appends it for you).
//	      • WithEps(float64): tolerance for tie comparisons between candidate
//	        means; candidates within Eps are ties and the earliest one stays.
//	  - cycle: closed vertex sequence, first ID repeated as last, interior
//	           pairwise distinct; every consecutive pair is a real edge of g.
//	  - mean:  arithmetic mean of the cycle's edge weights; equals the true
//	           optimum over all cycles of g up to floating-point rounding.
//	  - err:   one of the sentinel errors above, or nil on success.
//
// Thread safety:
//
//   - The computation is a pure function of the input graph: all state is
//     allocated per invocation, so concurrent calls on the same (unmodified)
//     graph or on independent graphs are safe.
//   - Mutating the graph concurrently with a computation is not safe.
//
// See also:
//
//   - core.Graph: graph construction, edge/vertex addition, loop support.
package karp
