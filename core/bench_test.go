// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/ornata/compressed-graph/core"
)

// BenchmarkAddDeleteEdge measures a single add/delete pair on a 256-vertex graph.
func BenchmarkAddDeleteEdge(b *testing.B) {
	const n = 256
	g := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, v := i%n, (i*7+1)%n
		g.AddEdge(u, v)
		g.DeleteEdge(u, v)
	}
}

// BenchmarkDegree measures a popcount over one row.
func BenchmarkDegree(b *testing.B) {
	g := randomGraph(256, 0.5, rand.New(rand.NewSource(SeedProps)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Degree(i & 255)
	}
}

// BenchmarkComplement measures a full complement of a dense graph.
func BenchmarkComplement(b *testing.B) {
	g := randomGraph(256, 0.5, rand.New(rand.NewSource(SeedProps)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Complement()
	}
}

// BenchmarkNumEdges measures the degree-sum pass.
func BenchmarkNumEdges(b *testing.B) {
	g := randomGraph(256, 0.5, rand.New(rand.NewSource(SeedProps)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.NumEdges()
	}
}
