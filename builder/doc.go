// Package builder provides deterministic, composable factories that fill a
// fixed-size core.Graph with well-known topologies.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildGraph(n, opts, cons...): allocate core.NewGraph(n) and apply cons in order.
//     – Apply(g, opts, cons...):      apply cons to an existing graph.
//   - Constructors (all place their k vertices at [offset, offset+k)):
//     – Complete(k)              K_k
//     – Cycle(k)                 C_k, k ≥ 3
//     – Path(k)                  P_k, k ≥ 2
//     – Star(k)                  hub + (k-1) leaves, k ≥ 2
//     – Wheel(k)                 hub + C_{k-1} rim, k ≥ 4
//     – CompleteBipartite(a, b)  K_{a,b}
//     – Grid(rows, cols)         4-neighbourhood lattice, row-major indices
//     – RandomSparse(k, p)       Erdős–Rényi G(k, p)
//     – RandomRegular(k, d)      uniform-ish d-regular via stub matching
//   - Options (BuilderOption):
//     – WithSeed / WithRand:     RNG for stochastic constructors.
//     – WithOffset:              first vertex index used by constructors.
//
// Guarantees:
//
//   - Idempotent composition: an edge emitted twice (e.g. two overlapping
//     constructors) is stored once; the second emission is not an error.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrGraphTooSmall, ...) wrapped with
//     the constructor name; branch with errors.Is.
//   - Determinism: equal inputs, options, seed and constructor order yield
//     identical graphs.
package builder
