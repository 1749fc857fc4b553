// Package cgraph is the root of the compressed-graph module: a fixed-size
// undirected graph whose adjacency matrix is stored as one bit-vector per
// vertex.
//
// The module is organised as:
//
//	core/        - Graph: edge mutation, queries, complement, row printing
//	builder/     - deterministic and seeded topology constructors
//	matrix/      - gonum/mat views: adjacency, Laplacian, spectra
//	converters/  - gonum/graph adapters (read-only view and simple.UndirectedGraph)
//	cmd/cgraph/  - command-line front end (koanf config, slog logging)
//
// Quick start:
//
//	g := core.NewGraph(4)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	fmt.Print(g) // "(0): 0010\n(1): 0101\n..."
//
// Vertices are the integers [0, N). N is fixed at construction; every
// operation that receives an index outside that range reports it instead of
// touching memory. Self-loops are never stored.
//
// Graph values are not safe for concurrent mutation; callers that share one
// across goroutines must serialise access themselves.
package cgraph
