// Package core provides a high-performance, thread-safe in-memory Graph
// implementation with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected; directed by default)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 and
//     may be negative, zero, or positive
//   - Self-loops (WithLoops) — a self-loop is a valid cycle of length one
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all return
//     sorted results; algorithms index vertices by this stable order.
//   - Closed vertex set — AddEdge auto-creates endpoints, so no edge can ever
//     reference a vertex outside the graph.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy).
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation of new edges. Directed graphs store only
//	    “from→to” pointers; undirected graphs mirror edges in
//	    adjacencyList[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from,to string) bool      // O(1)
//	GetEdge(edgeID string) (*Edge, error) // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d), loops appear once
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//
//	// Counts & degrees
//	Degree(id string) (in,out,undirected int, err error) // O(E), loop-aware
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Maintenance
//	Clear()                              // O(1): reset maps, counter; preserve flags
//	FilterEdges(pred func(*Edge) bool)   // O(E): remove edges failing predicate
//
//	// Cloning
//	CloneEmpty() *Graph                  // O(V): copy vertices+flags only
//	Clone() *Graph                       // O(V+E): deep-copy vertices+edges+adjacency
//
// Edge struct fields:
//
//	ID       string   // “e1”, “e2”, …
//	From     string   // source vertex ID
//	To       string   // destination vertex ID
//	Weight   float64  // cost (zero in unweighted graphs); sign unrestricted
//	Directed bool     // true=one-way, false=bidirectional
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – non-zero weight on unweighted graph
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
