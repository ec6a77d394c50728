// Package karp defines core types and configuration options
// for Karp's mean-cycle algorithm on weighted graphs.
//
// Karp's algorithm computes the cycle of extremal (maximum or minimum)
// arithmetic-mean edge weight in a directed weighted graph, together with
// that mean, using dynamic programming over exact path lengths.
//
// Complexity:
//
//	– Time:  O(V · E)   where V = |vertices|, E = |edges|
//	   • V rounds of relaxation, each scanning every reverse arc once.
//	   • Bound evaluation is O(V²); reconstruction is O(V).
//	– Space: O(V²)
//	   • Two (V+1)×V tables: best walk weight per exact length, and predecessors.
//	   • O(V + E) for the dense index and the reverse adjacency.
//
// Options:
//
//	– WithMinimize: compute the minimum-mean cycle instead of the maximum.
//	– WithEps:      absolute tolerance for tie comparisons (default 0, exact).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrEmptyGraph      if the graph has no vertices.
//	– ErrMalformedGraph  if an edge references a vertex outside the graph.
//	– ErrNoCycle         if the graph contains no cycle.
//	– ErrBadEps          if a negative tolerance is configured.
//
// Example usage:
//
//	cycle, mean, err := karp.MaxMeanCycle(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cycle %v with mean %.2f\n", cycle, mean)
package karp

import "errors"

// Sentinel errors returned by the mean-cycle implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("karp: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted;
	// a mean edge weight is meaningless without weights.
	ErrUnweightedGraph = errors.New("karp: graph must be weighted")

	// ErrEmptyGraph indicates that the graph contains no vertices, so the
	// dynamic-programming tables would be degenerate.
	ErrEmptyGraph = errors.New("karp: graph has no vertices")

	// ErrMalformedGraph indicates that an edge references a vertex that is
	// not part of the graph's vertex set (the closed-set invariant is broken).
	ErrMalformedGraph = errors.New("karp: edge endpoint outside vertex set")

	// ErrNoCycle indicates that the graph contains no cycle, so no mean-cycle
	// answer exists. This is an explicit condition, never an empty result.
	ErrNoCycle = errors.New("karp: no cycle found")

	// ErrBadEps indicates that a negative comparison tolerance was configured.
	ErrBadEps = errors.New("karp: Eps must be non-negative")
)

// Options configures the behavior of the mean-cycle computation.
//
// Minimize – if true, compute the minimum-mean cycle (weights are negated
//
//	internally and the resulting mean is negated back).
//
// Eps – absolute tolerance used when comparing candidate means in the
//
//	inner argmin over k and the outer argmax over vertices. Candidates
//	within Eps of the incumbent are treated as ties, and ties keep the
//	earliest-seen candidate (deterministic but implementation-defined).
//	Must be ≥ 0. Default is 0 (exact comparison).
type Options struct {
	Minimize bool    // Compute the minimum-mean cycle instead of the maximum
	Eps      float64 // Tolerance for tie comparisons between candidate means
}

// Option represents a functional option for configuring the computation.
type Option func(*Options)

// WithMinimize switches the computation to the minimum-mean cycle.
// Karp's formulation is symmetric: the same exact-length tables answer both
// questions once edge weights are negated.
func WithMinimize() Option {
	return func(o *Options) {
		o.Minimize = true
	}
}

// WithEps sets the absolute tolerance for tie comparisons between candidate
// means. Must pass a non-negative value; negative values cause ErrBadEps.
// Default (if not set) is 0, i.e. exact floating-point comparison.
func WithEps(eps float64) Option {
	if eps < 0 {
		// Panic to signal invalid configuration early.
		// Panic in Option constructors is acceptable for invalid arguments.
		panic(ErrBadEps.Error())
	}

	return func(o *Options) {
		o.Eps = eps
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Minimize: false (maximum-mean cycle).
//   - Eps:      0 (exact comparisons; first strictly-better candidate wins).
func DefaultOptions() Options {
	return Options{
		Minimize: false,
		Eps:      0,
	}
}
