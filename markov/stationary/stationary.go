// Package stationary computes the stationary distribution of a finite-state
// Markov chain, i.e. the left eigenvector of the stochastic matrix for the
// eigenvalue of one.
package stationary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	eigenEps = 1e-9 // epsilon for matching the eigenvalue of one
)

// ComputeDistribution computes the stationary distribution of a stochastic matrix.
func ComputeDistribution(M [][]float64) ([]float64, error) {
	n := len(M)
	if n == 0 {
		return nil, fmt.Errorf("stationary distribution of an empty matrix")
	}
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if len(M[i]) != n {
			return nil, fmt.Errorf("stochastic matrix is not square; row %v has %v columns", i, len(M[i]))
		}
		a.SetRow(i, M[i])
	}

	// perform eigenvalue decomposition
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("eigen-value decomposition failed")
	}

	// find index for eigenvalue of one
	// (note that it is not necessarily the first index)
	k := -1
	for i, eigenValue := range eig.Values(nil) {
		if math.Abs(real(eigenValue)-1.0) < eigenEps && math.Abs(imag(eigenValue)) < eigenEps {
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("eigen-decomposition failed; no eigenvalue of one found")
	}

	// find left eigenvectors of decomposition
	var ev mat.CDense
	eig.LeftVectorsTo(&ev)

	// compute total for eigenvector with eigenvalue of one.
	total := complex128(0)
	for i := 0; i < n; i++ {
		total += ev.At(i, k)
	}
	if imag(total) > eigenEps {
		return nil, fmt.Errorf("eigen-decomposition failed; eigen-vector is a complex number")
	}

	// normalize eigenvector by total
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Abs(real(ev.At(i, k)) / real(total))
	}
	return dist, nil
}
