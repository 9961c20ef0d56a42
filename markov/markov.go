// Package markov provides operations on finite-state Markov chains with a
// stochastic matrix: sampling the next state, simulating a state path, and
// summarizing a grid of state values under a probability distribution.
package markov

import (
	"fmt"
	"math"
	"math/rand"
)

// NextState produces the next state in the Markovian process.
func NextState(rg *rand.Rand, A [][]float64, i int) int {
	// Retrieve a random number in [0,1.0).
	r := rg.Float64()

	// Use Kahan's sum for summing values
	// in case we have a combination of very small
	// and very large values.
	sum := float64(0.0)
	c := float64(0.0)
	k := -1
	for j := 0; j < len(A); j++ {
		y := A[i][j] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if r <= sum {
			return j
		}
		// If we have a numerical unstable cumulative
		// distribution (large and small numbers that cancel
		// each other out when summing up), we can take the last
		// non-zero entry as a solution. It also detects
		// stochastic matrices with a row whose row
		// sum is not one (return value is -1 for such a case).
		if A[i][j] > 0.0 {
			k = j
		}
	}
	return k
}

// Simulate walks the Markovian process for a given number of steps starting
// in a given state and returns the sequence of visited states (the start
// state excluded).
func Simulate(rg *rand.Rand, A [][]float64, start int, steps int) ([]int, error) {
	n := len(A)
	if n == 0 {
		return nil, fmt.Errorf("Simulate: empty stochastic matrix")
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("Simulate: start state (%v) out of state range", start)
	}
	if steps < 1 {
		return nil, fmt.Errorf("Simulate: number of steps (%v) must be positive", steps)
	}
	path := make([]int, steps)
	state := start
	for k := 0; k < steps; k++ {
		state = NextState(rg, A, state)
		if state == -1 {
			return nil, fmt.Errorf("Simulate: defect stochastic matrix; cannot sample next state")
		}
		path[k] = state
	}
	return path, nil
}

// Frequencies computes the empirical state distribution of a state path for
// a chain with n states.
func Frequencies(path []int, n int) []float64 {
	freq := make([]float64, n)
	for _, state := range path {
		freq[state]++
	}
	for i := 0; i < n; i++ {
		freq[i] /= float64(len(path))
	}
	return freq
}

// Mean computes the expected grid value under a probability distribution.
func Mean(grid []float64, dist []float64) (float64, error) {
	if len(grid) != len(dist) {
		return 0.0, fmt.Errorf("Mean: grid has %v points but distribution has %v", len(grid), len(dist))
	}
	mean := 0.0
	for i := range grid {
		mean += dist[i] * grid[i]
	}
	return mean, nil
}

// StdDev computes the standard deviation of the grid value under a
// probability distribution.
func StdDev(grid []float64, dist []float64) (float64, error) {
	mean, err := Mean(grid, dist)
	if err != nil {
		return 0.0, err
	}
	variance := 0.0
	for i := range grid {
		variance += dist[i] * (grid[i] - mean) * (grid[i] - mean)
	}
	return math.Sqrt(variance), nil
}
