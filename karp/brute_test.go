// Cross-validation against an independent oracle: every simple cycle of a
// random digraph is enumerated with gonum's Johnson implementation, and the
// extremal enumerated means must match what the DP reports.
package karp_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/NikitaAnosov/matala-7-algo/karp"
)

// bruteMeans enumerates every simple cycle of the loop-free digraph given by
// the weight map (dense indices 0..n-1) and returns the maximum and minimum
// cycle means, plus whether any cycle exists at all.
func bruteMeans(t *testing.T, n int, w map[[2]int]float64) (maxMean, minMean float64, found bool) {
	t.Helper()

	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		dg.AddNode(simple.Node(i))
	}
	for key, wt := range w {
		dg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(key[0]),
			T: simple.Node(key[1]),
			W: wt,
		})
	}

	maxMean, minMean = math.Inf(-1), math.Inf(1)
	for _, nodes := range topo.DirectedCyclesIn(dg) {
		// Cycles come back closed: first node repeated as last.
		var sum float64
		for i := 0; i+1 < len(nodes); i++ {
			sum += w[[2]int{int(nodes[i].ID()), int(nodes[i+1].ID())}]
		}
		mean := sum / float64(len(nodes)-1)
		found = true
		if mean > maxMean {
			maxMean = mean
		}
		if mean < minMean {
			minMean = mean
		}
	}

	return maxMean, minMean, found
}

func TestMeanCycle_AgainstBruteForce(t *testing.T) {
	// Seeded so every run exercises the same graph population.
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 60; trial++ {
		n := 4 + rng.Intn(4) // 4..7 vertices keeps enumeration instant

		w := make(map[[2]int]float64)
		var arcs []arc
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || rng.Float64() > 0.35 {
					continue // gonum's simple graphs reject self-loops
				}
				wt := float64(rng.Intn(41)-20) / 2 // half-integer weights in [-10, 10]
				w[[2]int{u, v}] = wt
				arcs = append(arcs, arc{fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", v), wt})
			}
		}

		g := buildGraph(t, arcs)
		for i := 0; i < n; i++ {
			// Isolated vertices must not disturb the answer.
			require.NoError(t, g.AddVertex(fmt.Sprintf("n%d", i)))
		}

		wantMax, wantMin, found := bruteMeans(t, n, w)

		cycle, mean, err := karp.MaxMeanCycle(g)
		if !found {
			assert.ErrorIs(t, err, karp.ErrNoCycle, "trial %d: acyclic graph", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		assert.InDelta(t, wantMax, mean, meanTol, "trial %d: maximum mean", trial)
		assert.InDelta(t, mean, assertValidCycle(t, g, cycle), meanTol, "trial %d", trial)

		cycle, mean, err = karp.MinMeanCycle(g)
		require.NoError(t, err, "trial %d", trial)
		assert.InDelta(t, wantMin, mean, meanTol, "trial %d: minimum mean", trial)
		assert.InDelta(t, mean, assertValidCycle(t, g, cycle), meanTol, "trial %d", trial)
	}
}

func TestMaxMeanCycle_SelfLoopVersusTriangle(t *testing.T) {
	// gonum's simple graphs reject self-loops, so the mixed case is checked
	// against a hand-enumerated cycle list: the triangle has mean 4, the
	// self-loop 3.5, and D→A closes no cycle. The triangle must win.
	g := buildGraph(t, []arc{
		{"A", "B", 4}, {"B", "C", 4}, {"C", "A", 4},
		{"D", "D", 3.5}, {"D", "A", 1},
	})

	cycle, mean, err := karp.MaxMeanCycle(g)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, mean, meanTol)
	assert.InDelta(t, mean, assertValidCycle(t, g, cycle), meanTol)

	// The minimum-mean variant must instead settle on the self-loop.
	cycle, mean, err = karp.MinMeanCycle(g)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, mean, meanTol)
	assert.Equal(t, []string{"D", "D"}, cycle)
}
