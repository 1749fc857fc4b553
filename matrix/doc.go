// Package matrix offers dense linear-algebra views of a core.Graph.
//
// The matrix package provides:
//
//   - ToSymDense / FromMatrix: round-trip between the bit-packed graph and a
//     0/1 gonum symmetric matrix.
//   - Laplacian: the combinatorial Laplacian L = D - A.
//   - Spectrum / LaplacianSpectrum: ascending eigenvalues via gonum's EigenSym.
//
// Dense matrices cost 64 bits per vertex pair instead of one, so these views
// are meant for analysis of small graphs, not for storage.
package matrix
