package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options for common flags of the discretization commands.
var (
	GridSizeFlag = cli.IntFlag{
		Name:  "grid-size",
		Usage: "number of discrete grid points of the approximation",
		Value: 21,
	}
	MeanFlag = cli.Float64Flag{
		Name:  "mean",
		Usage: "unconditional mean of the log-process",
		Value: 0.0,
	}
	PersistenceFlag = cli.Float64Flag{
		Name:  "persistence",
		Usage: "persistence coefficient of the process; must be in (-1,1)",
		Value: 0.9,
	}
	ShockDeviationFlag = cli.Float64Flag{
		Name:  "shock-deviation",
		Usage: "standard deviation of the innovation shock",
		Value: 0.1,
	}
	GridWidthFlag = cli.Float64Flag{
		Name:  "grid-width",
		Usage: "number of unconditional standard deviations spanned by the grid",
		Value: 3.0,
	}
	MatrixFlag = cli.BoolFlag{
		Name:  "matrix",
		Usage: "print the full transition matrix",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "disable progress report",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "Set random seed",
		Value: -1,
	}
)
