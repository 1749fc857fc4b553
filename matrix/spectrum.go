// SPDX-License-Identifier: MIT
// Spectral helpers built on gonum's symmetric eigen decomposition.

package matrix

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
	"gonum.org/v1/gonum/mat"
)

// Spectrum returns the eigenvalues of g's adjacency matrix in ascending order.
//
// Errors: ErrGraphNil, ErrBadShape, ErrEigenFailed.
// Complexity: O(N³).
func Spectrum(g *core.Graph) ([]float64, error) {
	a, err := ToSymDense(g)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}

	return eigenvalues("Spectrum", a)
}

// LaplacianSpectrum returns the eigenvalues of L = D - A in ascending order.
// The multiplicity of eigenvalue 0 equals the number of connected components.
func LaplacianSpectrum(g *core.Graph) ([]float64, error) {
	l, err := Laplacian(g)
	if err != nil {
		return nil, fmt.Errorf("LaplacianSpectrum: %w", err)
	}

	return eigenvalues("LaplacianSpectrum", l)
}

// eigenvalues factorizes s without eigenvectors.
func eigenvalues(method string, s mat.Symmetric) ([]float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(s, false); !ok {
		return nil, fmt.Errorf("%s: %w", method, ErrEigenFailed)
	}

	return es.Values(nil), nil
}
