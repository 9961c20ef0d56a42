package ar1

import (
	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/logger"
	"github.com/anhnguyendepocen/VFI/utils"
	"github.com/anhnguyendepocen/VFI/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "produces a graphical view of the state grid and the Markov chain of a model",
	ArgsUsage: "<model-file>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<model.json>

<model.json> is the model file produced by the discretize command.`,
}

// visualizeAction implements the visualize command serving charts of the
// discretized process.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.ModelFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	// read model file
	log.Infof("Read model file %v", cfg.ModelFile)
	model, err := ar1.ReadModel(cfg.ModelFile)
	if err != nil {
		return err
	}

	// populate view model
	if err := visualizer.GetChainData().PopulateChainData(model); err != nil {
		return err
	}

	// fire-up web-server and visualize the chain
	log.Noticef("Open web browser with http://localhost:" + cfg.Port)
	log.Notice("Cancel visualize with ^C")
	visualizer.FireUpWeb(cfg.Port)

	return nil
}
