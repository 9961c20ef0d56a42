package ar1

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelJSON is the discretized process in JSON format. It is the file
// format exchanged between the discretizer, the simulator, and the
// visualization tool.
type ModelJSON struct {
	Parameters Parameters `json:"parameters"`

	Grid             []float64   `json:"grid"`
	TransitionMatrix [][]float64 `json:"transitionMatrix"`
}

// NewModelJSON validates the parameters, discretizes the process, and
// produces a new model.
func NewModelJSON(p Parameters) (*ModelJSON, error) {
	grid, tm, err := Discretize(p)
	if err != nil {
		return nil, err
	}
	return &ModelJSON{
		Parameters:       p,
		Grid:             grid,
		TransitionMatrix: tm,
	}, nil
}

// ReadModel reads a model file in JSON format and checks its shape.
func ReadModel(filename string) (*ModelJSON, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed reading model file; %v", err)
	}
	var model ModelJSON
	if err := json.Unmarshal(contents, &model); err != nil {
		return nil, fmt.Errorf("failed loading model file; %v", err)
	}
	n := model.Parameters.N
	if len(model.Grid) != n {
		return nil, fmt.Errorf("corrupted model file; grid has %v points, expected %v", len(model.Grid), n)
	}
	if len(model.TransitionMatrix) != n {
		return nil, fmt.Errorf("corrupted model file; transition matrix has %v rows, expected %v", len(model.TransitionMatrix), n)
	}
	for i, row := range model.TransitionMatrix {
		if len(row) != n {
			return nil, fmt.Errorf("corrupted model file; row %v has %v columns, expected %v", i, len(row), n)
		}
	}
	return &model, nil
}

// WriteJSON writes the model into a file in JSON format.
func (m *ModelJSON) WriteJSON(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create model file; %v", err)
	}
	defer f.Close()
	jOut, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert JSON model; %v", err)
	}
	if _, err := f.Write(jOut); err != nil {
		return fmt.Errorf("failed to write model file; %v", err)
	}
	return nil
}
