package ar1

import (
	"math"
	"math/rand"
	"time"

	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/logger"
	"github.com/anhnguyendepocen/VFI/markov"
	"github.com/anhnguyendepocen/VFI/markov/stationary"
	"github.com/anhnguyendepocen/VFI/utils"
	"github.com/urfave/cli/v2"
)

// SimulateCommand data structure for the simulate app.
var SimulateCommand = cli.Command{
	Action:    simulateAction,
	Name:      "simulate",
	Usage:     "simulates the discretized process using a random generator",
	ArgsUsage: "<model-file> <simulation-length>",
	Flags: []cli.Flag{
		&utils.RandomSeedFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The simulate command requires two arguments:
<model.json> <simulation-length>

<model.json> is the model file produced by the discretize command.
<simulation-length> determines the number of simulated transitions.`,
}

// simulateAction implements the simulate command. It walks the Markov chain
// of the model and compares the observed state frequencies with the
// stationary distribution.
func simulateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.ModelFileLenArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Simulate")

	// read model file in JSON format
	log.Infof("Read model file %v", cfg.ModelFile)
	model, err := ar1.ReadModel(cfg.ModelFile)
	if err != nil {
		return err
	}

	// random generator
	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	log.Noticef("using random seed %d", cfg.RandomSeed)

	// start the walk in the middle state, the state closest to the
	// unconditional mean of the log-process.
	n := len(model.Grid)
	start := n / 2
	log.Noticef("Simulation of %v steps starting in state %v", cfg.SimLength, start)

	var (
		startTime time.Time
		sec       float64
	)
	if !cfg.Quiet {
		startTime = time.Now()
	}
	path, err := markov.Simulate(rg, model.TransitionMatrix, start, cfg.SimLength)
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		sec = time.Since(startTime).Seconds()
		log.Noticef("Total elapsed time: %.3f s, simulated %v transitions", sec, len(path))
	}

	// compare observed frequencies with the stationary distribution
	freq := markov.Frequencies(path, n)
	dist, err := stationary.ComputeDistribution(model.TransitionMatrix)
	if err != nil {
		return err
	}
	log.Noticef("State frequencies (observed vs stationary):")
	maxDiff := 0.0
	for i := 0; i < n; i++ {
		log.Noticef("\t%v: %.6f vs %.6f", i, freq[i], dist[i])
		if diff := math.Abs(freq[i] - dist[i]); diff > maxDiff {
			maxDiff = diff
		}
	}
	log.Noticef("Largest deviation: %.6f", maxDiff)

	return nil
}
