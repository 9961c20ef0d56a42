package visualizer

import (
	"math"
	"testing"

	"github.com/anhnguyendepocen/VFI/ar1"
)

// TestPopulateChainData checks the view model of a discretized process.
func TestPopulateChainData(t *testing.T) {
	model, err := ar1.NewModelJSON(ar1.Parameters{N: 7, Mu: 0.0, Rho: 0.9, Sigma: 0.1, Width: 3.0})
	if err != nil {
		t.Fatalf("Failed to create model. Error: %v", err)
	}
	var data ChainData
	if err := data.PopulateChainData(model); err != nil {
		t.Fatalf("Failed to populate view model. Error: %v", err)
	}
	if len(data.Grid) != 7 || len(data.LogGrid) != 7 || len(data.StateLabel) != 7 {
		t.Fatalf("Wrong view model dimensions.")
	}
	for i := range data.Grid {
		if math.Abs(data.LogGrid[i]-math.Log(data.Grid[i])) > 1e-9 {
			t.Fatalf("Wrong log-grid value at state %v.", i)
		}
	}
	total := 0.0
	for _, p := range data.Stationary {
		total += p
	}
	if math.Abs(total-1.0) > 1e-6 {
		t.Fatalf("Stationary distribution does not sum to one. Sum: %v", total)
	}
	if data.Mean < data.Grid[0] || data.Mean > data.Grid[6] {
		t.Fatalf("Expected grid value outside the grid span. Mean: %v", data.Mean)
	}
	if data.StdDev <= 0.0 {
		t.Fatalf("Dispersion must be positive. StdDev: %v", data.StdDev)
	}
}
