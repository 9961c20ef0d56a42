package ar1

import (
	"math"
	"testing"
)

const testEps = 1e-9

// testParams returns a typical productivity-process parameterisation.
func testParams() Parameters {
	return Parameters{N: 5, Mu: 0.0, Rho: 0.9, Sigma: 0.1, Width: 3.0}
}

// checkStochasticMatrix checks that every row of the transition matrix is a
// probability distribution. The boundary column is accumulated by
// subtraction and may undershoot zero by a rounding error.
func checkStochasticMatrix(t *testing.T, tm [][]float64) {
	for i := range tm {
		sum := 0.0
		for j := range tm[i] {
			if tm[i][j] < -testEps || tm[i][j] > 1.0+testEps {
				t.Fatalf("transition probability out of range. P[%v][%v]=%v", i, j, tm[i][j])
			}
			sum += tm[i][j]
		}
		if math.Abs(sum-1.0) > testEps {
			t.Fatalf("row %v does not sum to one. Sum: %v", i, sum)
		}
	}
}

// checkGridMonotonicity checks that grid values are strictly increasing.
func checkGridMonotonicity(t *testing.T, grid []float64) {
	for i := 0; i < len(grid)-1; i++ {
		if grid[i] >= grid[i+1] {
			t.Fatalf("grid is not strictly increasing at index %v. %v >= %v", i, grid[i], grid[i+1])
		}
	}
}

// TestDiscretizeSimple checks the properties of a discretization for a
// typical parameterisation.
func TestDiscretizeSimple(t *testing.T) {
	grid, tm, err := Discretize(testParams())
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	if len(grid) != 5 || len(tm) != 5 {
		t.Fatalf("Wrong output dimensions. Grid: %v Matrix rows: %v", len(grid), len(tm))
	}
	checkGridMonotonicity(t, grid)
	checkStochasticMatrix(t, tm)
}

// TestDiscretizeGridSpan checks the grid endpoints against the closed-form
// unconditional moments of the log-process.
func TestDiscretizeGridSpan(t *testing.T) {
	p := testParams()
	grid, _, err := Discretize(p)
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	sigmaZ := p.Sigma / math.Sqrt(1.0-p.Rho*p.Rho)
	if math.Abs(sigmaZ-0.2294157338705618) > testEps {
		t.Fatalf("Unexpected unconditional deviation: %v", sigmaZ)
	}
	if math.Abs(grid[0]-math.Exp(-p.Width*sigmaZ)) > testEps {
		t.Fatalf("Wrong lower grid endpoint. Expected: %v Computed: %v", math.Exp(-p.Width*sigmaZ), grid[0])
	}
	if math.Abs(grid[len(grid)-1]-math.Exp(p.Width*sigmaZ)) > testEps {
		t.Fatalf("Wrong upper grid endpoint. Expected: %v Computed: %v", math.Exp(p.Width*sigmaZ), grid[len(grid)-1])
	}
}

// TestDiscretizeRowSums checks the row-sum invariant over a range of
// parameterisations.
func TestDiscretizeRowSums(t *testing.T) {
	for n := 2; n <= 50; n += 3 {
		for _, rho := range []float64{-0.99, -0.5, 0.0, 0.5, 0.9, 0.99} {
			grid, tm, err := Discretize(Parameters{N: n, Mu: 0.1, Rho: rho, Sigma: 0.2, Width: 2.5})
			if err != nil {
				t.Fatalf("Failed to discretize process (n=%v, rho=%v). Error: %v", n, rho, err)
			}
			checkGridMonotonicity(t, grid)
			checkStochasticMatrix(t, tm)
		}
	}
}

// TestDiscretizeZeroPersistence checks that with no persistence the grid is
// symmetric in log-space around the mean and all origin states share the
// same transition distribution.
func TestDiscretizeZeroPersistence(t *testing.T) {
	mu := 0.5
	grid, tm, err := Discretize(Parameters{N: 7, Mu: mu, Rho: 0.0, Sigma: 0.3, Width: 3.0})
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	n := len(grid)
	for i := 0; i < n; i++ {
		left := math.Log(grid[i]) - mu
		right := math.Log(grid[n-1-i]) - mu
		if math.Abs(left+right) > testEps {
			t.Fatalf("Grid is not symmetric in log-space at index %v. %v vs %v", i, left, right)
		}
	}
	for i := 1; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(tm[i][j]-tm[0][j]) > testEps {
				t.Fatalf("Row %v differs from row 0 at column %v. %v vs %v", i, j, tm[i][j], tm[0][j])
			}
		}
	}
}

// TestDiscretizeScaling checks that doubling the shock deviation strictly
// widens the grid span.
func TestDiscretizeScaling(t *testing.T) {
	p := testParams()
	grid, _, err := Discretize(p)
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	p.Sigma = 2.0 * p.Sigma
	wide, _, err := Discretize(p)
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	span := grid[len(grid)-1] - grid[0]
	wideSpan := wide[len(wide)-1] - wide[0]
	if wideSpan <= span {
		t.Fatalf("Doubling sigma did not widen the grid span. %v <= %v", wideSpan, span)
	}
}

// TestDiscretizeTwoStates checks the degenerate two-state case where no
// interior column exists.
func TestDiscretizeTwoStates(t *testing.T) {
	grid, tm, err := Discretize(Parameters{N: 2, Mu: 0.0, Rho: 0.5, Sigma: 0.1, Width: 3.0})
	if err != nil {
		t.Fatalf("Failed to discretize process. Error: %v", err)
	}
	checkGridMonotonicity(t, grid)
	checkStochasticMatrix(t, tm)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.IsNaN(tm[i][j]) {
				t.Fatalf("NaN transition probability. P[%v][%v]", i, j)
			}
		}
		if math.Abs(tm[i][0]+tm[i][1]-1.0) > testEps {
			t.Fatalf("Boundary probabilities of row %v do not sum to one.", i)
		}
	}
}

// TestValidateRejectsInvalid checks that invalid parameters fail fast
// instead of propagating NaNs.
func TestValidateRejectsInvalid(t *testing.T) {
	invalid := []Parameters{
		{N: 1, Mu: 0.0, Rho: 0.5, Sigma: 0.1, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: 1.0, Sigma: 0.1, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: -1.5, Sigma: 0.1, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: 0.5, Sigma: 0.0, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: 0.5, Sigma: -0.1, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: 0.5, Sigma: 0.1, Width: 0.0},
		{N: 5, Mu: math.NaN(), Rho: 0.5, Sigma: 0.1, Width: 3.0},
		{N: 5, Mu: 0.0, Rho: 0.5, Sigma: math.Inf(1), Width: 3.0},
	}
	for _, p := range invalid {
		if _, _, err := Discretize(p); err == nil {
			t.Fatalf("Discretize accepted invalid parameters: %+v", p)
		}
	}
}
