// Package meancycle is a small toolkit for mean-cycle analysis on directed
// weighted graphs: find the cycle whose average edge weight is extremal.
//
// 🚀 What is it?
//
//	A thread-safe, in-memory library built around Karp's O(V·E) algorithm:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• karp.MaxMeanCycle — the cycle of maximum arithmetic-mean weight
//		• karp.MinMeanCycle — the minimum-mean counterpart
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic output
//   - Exact bounds – Karp's min-over-k formula, not an iterative approximation
//
// Everything is organized under two subpackages:
//
//	core/ — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	karp/ — Karp's maximum/minimum mean cycle algorithm
//
// Quick ASCII example:
//
//	    X ──10──▶ Y
//	    ▲          │
//	    └───-5─────┘
//
//	is a 2-cycle with mean weight (10 − 5) / 2 = 2.5.
//
// Dive into the package docs of core/ and karp/ for full examples,
// complexity notes and the error contract.
//
//	go get github.com/NikitaAnosov/matala-7-algo
package meancycle
