package ar1

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/logger"
	"github.com/anhnguyendepocen/VFI/markov"
	"github.com/anhnguyendepocen/VFI/markov/stationary"
	"github.com/anhnguyendepocen/VFI/utils"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// ShowCommand data structure for the show app.
var ShowCommand = cli.Command{
	Action:    showAction,
	Name:      "show",
	Usage:     "prints the state grid, the stationary distribution, and the moments of a model",
	ArgsUsage: "<model-file>",
	Flags: []cli.Flag{
		&utils.MatrixFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The show command requires one argument:
<model.json>

<model.json> is the model file produced by the discretize command.`,
}

// showAction implements the show command printing the grid and the derived
// statistics of a discretized process.
func showAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.ModelFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Show")

	// read model file in JSON format
	log.Infof("Read model file %v", cfg.ModelFile)
	model, err := ar1.ReadModel(cfg.ModelFile)
	if err != nil {
		return err
	}

	// derive chain statistics
	dist, err := stationary.ComputeDistribution(model.TransitionMatrix)
	if err != nil {
		return err
	}
	mean, err := markov.Mean(model.Grid, dist)
	if err != nil {
		return err
	}
	std, err := markov.StdDev(model.Grid, dist)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintfFunc()
	fmt.Printf("%s\n", bold("State grid and stationary distribution"))
	gridTable(os.Stdout, model, dist)
	fmt.Printf("%s: %v\n", bold("Expected level"), mean)
	fmt.Printf("%s: %v\n", bold("Standard deviation"), std)

	if cfg.PrintMatrix {
		fmt.Printf("%s\n", bold("Transition matrix"))
		matrixTable(os.Stdout, model)
	}

	return nil
}

// gridTable sends a formatted table of the state grid into the output writer.
func gridTable(w io.Writer, model *ar1.ModelJSON, dist []float64) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"State", "Level", "Stationary Probability"})
	tbl.SetBorder(true)

	for i, z := range model.Grid {
		tbl.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(z, 'f', 6, 64),
			strconv.FormatFloat(dist[i], 'f', 6, 64),
		})
	}

	tbl.Render()
}

// matrixTable sends a formatted table of the transition matrix into the
// output writer.
func matrixTable(w io.Writer, model *ar1.ModelJSON) {
	tbl := tablewriter.NewWriter(w)
	header := []string{"From \\ To"}
	for j := range model.Grid {
		header = append(header, strconv.Itoa(j))
	}
	tbl.SetHeader(header)
	tbl.SetBorder(true)

	for i, row := range model.TransitionMatrix {
		line := []string{strconv.Itoa(i)}
		for _, p := range row {
			line = append(line, strconv.FormatFloat(p, 'f', 4, 64))
		}
		tbl.Append(line)
	}

	tbl.Render()
}
