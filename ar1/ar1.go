// Package ar1 discretizes a continuous first-order autoregressive process
// into a finite-state Markov chain using the method of Tauchen (1986).
// The process x_t = mu + rho*x_{t-1} + eps_t is modeled in logs; grid values
// are returned in levels (e.g. total factor productivity).
package ar1

import (
	"fmt"
	"math"
)

// Parameters of the AR1 process and its discretization.
type Parameters struct {
	N     int     `json:"n"`     // number of discrete grid points
	Mu    float64 `json:"mu"`    // unconditional mean of the log-process
	Rho   float64 `json:"rho"`   // persistence coefficient
	Sigma float64 `json:"sigma"` // standard deviation of the innovation shock
	Width float64 `json:"width"` // grid span in unconditional standard deviations
}

// Validate checks that the parameters admit a well-defined discretization.
// The unconditional variance requires |rho| < 1, and the grid step requires
// at least two grid points.
func (p *Parameters) Validate() error {
	if p.N < 2 {
		return fmt.Errorf("invalid parameter: grid size (%v) must be at least two", p.N)
	}
	if !isFinite(p.Mu) || !isFinite(p.Rho) || !isFinite(p.Sigma) || !isFinite(p.Width) {
		return fmt.Errorf("invalid parameter: process parameters must be finite")
	}
	if math.Abs(p.Rho) >= 1.0 {
		return fmt.Errorf("invalid parameter: persistence (%v) must be in (-1,1)", p.Rho)
	}
	if p.Sigma <= 0.0 {
		return fmt.Errorf("invalid parameter: shock deviation (%v) must be positive", p.Sigma)
	}
	if p.Width <= 0.0 {
		return fmt.Errorf("invalid parameter: grid width (%v) must be positive", p.Width)
	}
	return nil
}

// isFinite checks a value for NaN and infinities.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// stdNormalCdf is the cumulative distribution function of the standard
// normal distribution.
func stdNormalCdf(x float64) float64 {
	return 0.5 + 0.5*math.Erf(x/math.Sqrt2)
}

// Discretize computes the grid and the transition matrix of the discrete
// approximation. The grid is strictly increasing and holds the exponential
// of evenly spaced points covering Width unconditional standard deviations
// around the unconditional mean of the log-process. The transition matrix
// is indexed by origin state in the first dimension, i.e. tm[i][j] is the
// probability of moving from state i to state j in one step; every row sums
// to one by construction.
func Discretize(p Parameters) ([]float64, [][]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	n := p.N
	mu := p.Mu
	rho := p.Rho
	sigma := p.Sigma

	// grid for the log-process
	sigmaZ := sigma / math.Sqrt(1.0-rho*rho)
	muZ := mu / (1.0 - rho)
	zmin := muZ - p.Width*sigmaZ
	zmax := muZ + p.Width*sigmaZ
	zstep := (zmax - zmin) / float64(n-1)
	grid := make([]float64, n)
	for i := 0; i < n; i++ {
		grid[i] = math.Exp(zmin + zstep*float64(i))
	}

	// transition matrix
	tm := make([][]float64, n)
	for i := 0; i < n; i++ {
		tm[i] = make([]float64, n)
		cond := mu + rho*math.Log(grid[i])
		tm[i][0] = stdNormalCdf((zmin-cond)/sigma + 0.5*zstep/sigma)

		// The last column accumulates the residual probability mass so
		// that the row sums to one exactly; an independent CDF evaluation
		// at the upper boundary would not.
		tm[i][n-1] = 1.0 - tm[i][0]
		for j := 1; j < n-1; j++ {
			upper := (math.Log(grid[j])-cond)/sigma + 0.5*zstep/sigma
			lower := (math.Log(grid[j])-cond)/sigma - 0.5*zstep/sigma
			tm[i][j] = stdNormalCdf(upper) - stdNormalCdf(lower)
			tm[i][n-1] -= tm[i][j]
		}
	}

	return grid, tm, nil
}
