// Package karp implements Karp's mean-cycle algorithm on weighted graphs.
//
// The algorithm runs five stages in strict order: dense vertex indexing,
// reverse-adjacency construction, an exact-length dynamic program with
// predecessor tracking, the min-over-k bound evaluation (Karp's theorem),
// and walk reconstruction that extracts a concrete simple cycle.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - The DP performs V rounds; each round scans every reverse arc once.
//   - Bound evaluation adds O(V²); reconstruction adds O(V).
//   - Space: O(V²) for the weight and predecessor tables, O(V + E) otherwise.
//
// Notes on implementation choices:
//
//   - The DP is a Bellman-Ford-style relaxation restricted to walks of
//     exactly k edges (not "at most k"); Karp's bound formula requires
//     exact-length walk weights.
//   - Unreachable (vertex, length) states carry an explicit −∞ weight and a
//     −1 predecessor tag; relaxation skips −∞ sources so infinities never
//     flow through arithmetic.
//   - All per-invocation state lives in a private runner value, so a single
//     graph may be analyzed concurrently from multiple goroutines.
package karp

import (
	"fmt"
	"math"

	"github.com/NikitaAnosov/matala-7-algo/core"
)

// noPred tags a (vertex, length) state with no predecessor: either length
// zero, or no walk of that exact length ends at the vertex.
const noPred = -1

// MaxMeanCycle computes the cycle of maximum arithmetic-mean edge weight in
// the weighted graph g, by Karp's dynamic programming over exact path
// lengths. It accepts functional options to customize behavior.
//
// Returns:
//
//   - cycle: a closed sequence of vertex IDs, first repeated as last
//     (e.g. [X Y X]); interior vertices are pairwise distinct.
//   - mean:  the arithmetic mean of the cycle's edge weights. This equals
//     max over all cycles of their mean weight (Karp 1978).
//   - err:   a sentinel error if inputs are invalid or no cycle exists.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. g must have at least one vertex (ErrEmptyGraph).
//  4. Every edge endpoint must be a graph vertex (ErrMalformedGraph).
//  5. g must contain at least one cycle (ErrNoCycle).
//
// Determinism: vertices are enumerated in the graph's sorted order, and ties
// between equally good candidates keep the earliest-seen one, so repeated
// invocations on the same graph return identical results. Which optimal
// cycle wins a tie is implementation-defined; the mean is not.
//
// Undirected edges are treated as an arc in each direction, so an
// undirected edge u—v admits the 2-cycle u→v→u.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V²)
func MaxMeanCycle(g *core.Graph, opts ...Option) ([]string, float64, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}
	//    Eps ≥ 0 is enforced by WithEps itself (panics on a negative value),
	//    so cfg is always well-formed past this point.

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 3) Validate graph supports weights
	if !g.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}

	// 4) Validate graph is non-empty; n = 0 degenerates every table below.
	if g.VertexCount() == 0 {
		return nil, 0, ErrEmptyGraph
	}

	// 5) Initialize runner and execute the stages in strict order.
	r := &runner{g: g, options: cfg}

	//    Stage 1: dense vertex indexing.
	r.index()

	//    Stage 2: reverse adjacency (fails fast on a dangling endpoint).
	if err := r.buildReverse(); err != nil {
		return nil, 0, err
	}

	//    Stage 3: exact-length DP with predecessor tracking.
	r.fillTables()

	//    Stage 4: Karp's min-over-k bound per vertex, argmax over vertices.
	if err := r.evaluateBound(); err != nil {
		return nil, 0, err
	}

	//    Stage 5: replay predecessors and cut out a simple cycle.
	cycle, err := r.reconstruct()
	if err != nil {
		return nil, 0, err
	}

	// 6) Undo the internal negation for the minimize variant.
	mean := r.mean
	if cfg.Minimize {
		mean = -mean
	}

	return cycle, mean, nil
}

// MinMeanCycle computes the cycle of minimum arithmetic-mean edge weight.
// It is shorthand for MaxMeanCycle(g, append(opts, WithMinimize())...),
// provided because both directions of Karp's bound are equally common.
func MinMeanCycle(g *core.Graph, opts ...Option) ([]string, float64, error) {
	// Copy the options to avoid mutating the caller's slice.
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithMinimize())

	return MaxMeanCycle(g, all...)
}

// revArc is one entry of the reverse adjacency: an arc entering a vertex,
// carrying its (possibly negated) weight and the dense index of its source.
type revArc struct {
	from   int     // dense index of the arc's source vertex
	weight float64 // arc weight; negated when Options.Minimize is set
}

// runner holds the mutable state for a single mean-cycle computation.
type runner struct {
	g       *core.Graph // The input graph; read-only within the computation.
	options Options     // Configuration options (Minimize, Eps).

	nodes []string       // dense index → vertex ID, in sorted enumeration order
	idx   map[string]int // vertex ID → dense index

	rev [][]revArc // rev[j] = arcs entering nodes[j], in edge-ID order

	// best[k][j] is the maximum total weight of any walk of exactly k edges
	// ending at nodes[j], or −∞ if no such walk exists. pred[k][j] is the
	// dense index of the predecessor chosen for best[k][j], or noPred.
	best [][]float64
	pred [][]int

	jStar int     // index of the vertex achieving the maximal bound
	kStar int     // the k minimizing that vertex's slope formula
	mean  float64 // the maximal bound: the answer's mean weight
}

// index assigns each vertex a dense integer position for O(1) table access.
// The mapping follows the graph's sorted vertex enumeration, is total and
// injective, and lives only for this invocation.
func (r *runner) index() {
	r.nodes = r.g.Vertices()
	r.idx = make(map[string]int, len(r.nodes))
	var j int
	var id string
	for j, id = range r.nodes {
		r.idx[id] = j
	}
}

// buildReverse inverts the edge list so the DP can ask "who can reach v" in
// O(in-degree). A single pass over all edges appends each arc to the reverse
// list of its target; undirected edges contribute an arc in each direction,
// a self-loop exactly one. Total reverse size equals total arc count, and
// the order among predecessors is the graph's edge-ID order (it only breaks
// ties among equal-weight predecessors, never correctness).
//
// Fails fast with ErrMalformedGraph on an edge whose endpoint is missing
// from the vertex set. AddEdge cannot produce such an edge, but the guard
// keeps the closed-set invariant explicit.
func (r *runner) buildReverse() error {
	r.rev = make([][]revArc, len(r.nodes))

	var (
		e      *core.Edge
		u, v   int
		ok     bool
		weight float64
	)
	for _, e = range r.g.Edges() {
		if u, ok = r.idx[e.From]; !ok {
			return fmt.Errorf("%w: edge %s source %q", ErrMalformedGraph, e.ID, e.From)
		}
		if v, ok = r.idx[e.To]; !ok {
			return fmt.Errorf("%w: edge %s target %q", ErrMalformedGraph, e.ID, e.To)
		}

		weight = e.Weight
		if r.options.Minimize {
			weight = -weight
		}

		r.rev[v] = append(r.rev[v], revArc{from: u, weight: weight})
		if !e.Directed && u != v {
			// An undirected edge is an arc in each direction.
			r.rev[u] = append(r.rev[u], revArc{from: v, weight: weight})
		}
	}

	return nil
}

// fillTables fills best and pred as defined on runner.
//
// best[0][*] = 0: a zero-length walk has weight 0, trivially ending at its
// own start. Row k is derived solely from row k−1: the best k-edge walk
// ending at v extends the best (k−1)-edge walk ending at some predecessor u
// by the arc u→v (optimal substructure). The first strictly greater value
// wins, so ties keep the earliest-seen predecessor.
//
// Complexity: O(V · E) — V rounds, each scanning every reverse arc once.
func (r *runner) fillTables() {
	n := len(r.nodes)
	negInf := math.Inf(-1)

	// Allocate (n+1) rows of n columns for both tables.
	r.best = make([][]float64, n+1)
	r.pred = make([][]int, n+1)
	var k, j int
	for k = 0; k <= n; k++ {
		r.best[k] = make([]float64, n)
		r.pred[k] = make([]int, n)
		for j = 0; j < n; j++ {
			r.best[k][j] = negInf
			r.pred[k][j] = noPred
		}
	}

	// Base case: every vertex ends a zero-length walk of weight 0.
	for j = 0; j < n; j++ {
		r.best[0][j] = 0
	}

	// Relax exactly one more edge per round.
	var (
		arc       revArc
		prev, val float64
	)
	for k = 1; k <= n; k++ {
		for j = 0; j < n; j++ {
			for _, arc = range r.rev[j] {
				prev = r.best[k-1][arc.from]
				if math.IsInf(prev, -1) {
					// No walk of length k−1 ends at the source; skipping the
					// arc keeps −∞ out of the arithmetic entirely.
					continue
				}
				if val = prev + arc.weight; val > r.best[k][j] {
					r.best[k][j] = val
					r.pred[k][j] = arc.from
				}
			}
		}
	}
}

// evaluateBound computes, for each vertex j with a finite n-edge walk, the
// bound mu[j] = min over k in [0, n) of (best[n][j] − best[k][j]) / (n − k),
// restricted to finite best[k][j], recording the minimizing k. The answer is
// the maximum of these per-vertex bounds (Karp's theorem); ties in either
// direction keep the earliest-seen candidate, with Options.Eps widening what
// counts as a tie.
//
// If no vertex ends a finite n-edge walk, the graph has no cycle at all and
// evaluateBound returns ErrNoCycle.
func (r *runner) evaluateBound() error {
	n := len(r.nodes)
	r.jStar = noPred
	bestMu := math.Inf(-1)

	var (
		j, k, minK int
		val, minMu float64
	)
	for j = 0; j < n; j++ {
		if math.IsInf(r.best[n][j], -1) {
			// No n-edge walk ends here; this vertex cannot close a cycle.
			continue
		}

		// Inner argmin over k. best[0][j] is always finite, so minK lands.
		minMu = math.Inf(1)
		minK = noPred
		for k = 0; k < n; k++ {
			if math.IsInf(r.best[k][j], -1) {
				continue
			}
			val = (r.best[n][j] - r.best[k][j]) / float64(n-k)
			if val < minMu-r.options.Eps {
				minMu = val
				minK = k
			}
		}

		// Outer argmax over vertices; first winner stays on ties.
		if r.jStar == noPred || minMu > bestMu+r.options.Eps {
			bestMu = minMu
			r.jStar = j
			r.kStar = minK
		}
	}

	if r.jStar == noPred {
		return fmt.Errorf("%w: no walk of %d edges exists", ErrNoCycle, n)
	}
	r.mean = bestMu

	return nil
}
