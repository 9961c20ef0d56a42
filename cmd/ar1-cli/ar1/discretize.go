package ar1

import (
	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/logger"
	"github.com/anhnguyendepocen/VFI/utils"
	"github.com/urfave/cli/v2"
)

// DiscretizeCommand data structure for the discretize app.
var DiscretizeCommand = cli.Command{
	Action: discretizeAction,
	Name:   "discretize",
	Usage:  "computes a finite-state Markov approximation of an AR1 process and produces a model file",
	Flags: []cli.Flag{
		&utils.GridSizeFlag,
		&utils.MeanFlag,
		&utils.PersistenceFlag,
		&utils.ShockDeviationFlag,
		&utils.GridWidthFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The discretize command reads the process parameters from flags and writes
the state grid and the transition matrix as a model file in JSON format
(default ./model.json).`,
}

// discretizeAction implements the discretize command producing a state grid
// and a transition matrix using the method of Tauchen (1986).
func discretizeAction(ctx *cli.Context) error {
	// process configuration
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Discretize")

	// validate and discretize process
	params := cfg.ProcessParameters()
	log.Infof("Process parameters: %+v", params)
	model, err := ar1.NewModelJSON(params)
	if err != nil {
		return err
	}
	log.Infof("Grid spans [%v, %v] in levels", model.Grid[0], model.Grid[len(model.Grid)-1])

	// write model file
	outputFileName := cfg.Output
	if outputFileName == "" {
		outputFileName = "./model.json"
	}
	log.Noticef("Write model file %v", outputFileName)
	if err := model.WriteJSON(outputFileName); err != nil {
		return err
	}

	return nil
}
