package visualizer

import (
	"fmt"
	"math"

	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/markov"
	"github.com/anhnguyendepocen/VFI/markov/stationary"
)

// ChainData contains the statistical data of a discretized process that is
// used for visualization.
type ChainData struct {
	Parameters ar1.Parameters

	Grid       []float64 // grid values in levels
	LogGrid    []float64 // grid values in logs
	StateLabel []string  // state labels for charts and graphs

	Stationary []float64 // stationary distribution of the chain
	Mean       float64   // expected grid value under the stationary distribution
	StdDev     float64   // dispersion of the grid value under the stationary distribution

	TransitionMatrix [][]float64 // stochastic matrix of the chain
}

// chain is the singleton for the viewing model.
var chain ChainData

// GetChainData returns the pointer to the singleton.
func GetChainData() *ChainData {
	return &chain
}

// PopulateChainData populates the view model from a discretized model.
func (c *ChainData) PopulateChainData(m *ar1.ModelJSON) error {
	n := len(m.Grid)
	c.Parameters = m.Parameters

	c.Grid = make([]float64, n)
	copy(c.Grid, m.Grid)
	c.LogGrid = make([]float64, n)
	c.StateLabel = make([]string, n)
	for i := 0; i < n; i++ {
		c.LogGrid[i] = math.Log(m.Grid[i])
		c.StateLabel[i] = fmt.Sprintf("z%d=%.4f", i, m.Grid[i])
	}

	c.TransitionMatrix = make([][]float64, n)
	for i := range m.TransitionMatrix {
		c.TransitionMatrix[i] = make([]float64, n)
		copy(c.TransitionMatrix[i], m.TransitionMatrix[i])
	}

	dist, err := stationary.ComputeDistribution(m.TransitionMatrix)
	if err != nil {
		return fmt.Errorf("failed to compute stationary distribution; %v", err)
	}
	c.Stationary = dist

	if c.Mean, err = markov.Mean(m.Grid, dist); err != nil {
		return err
	}
	if c.StdDev, err = markov.StdDev(m.Grid, dist); err != nil {
		return err
	}
	return nil
}
