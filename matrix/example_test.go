package matrix_test

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
	"github.com/ornata/compressed-graph/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleToSymDense prints the dense adjacency matrix of a path on three vertices.
func ExampleToSymDense() {
	g := core.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	a, err := matrix.ToSymDense(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v\n", mat.Formatted(a))

	// Output:
	// ⎡0  1  0⎤
	// ⎢1  0  1⎥
	// ⎣0  1  0⎦
}
