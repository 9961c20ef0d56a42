package utils

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/anhnguyendepocen/VFI/ar1"
	"github.com/anhnguyendepocen/VFI/logger"
	"github.com/urfave/cli/v2"
)

type ArgumentMode int

// An enum of argument modes used by the discretization subcommands.
const (
	NoArgs            ArgumentMode = iota // requires no arguments
	ModelFileArg                          // requires 1 argument: path to model file
	ModelFileLenArgs                      // requires 2 arguments: path to model file and simulation length
)

// Config of the discretization commands, derived from command line flags
// and positional arguments.
type Config struct {
	AppName     string
	CommandName string

	GridSize       int     // number of discrete grid points
	Mean           float64 // unconditional mean of the log-process
	Persistence    float64 // persistence coefficient
	ShockDeviation float64 // standard deviation of the innovation shock
	GridWidth      float64 // grid span in unconditional standard deviations

	ModelFile string // path to the model file (positional argument)
	SimLength int    // number of simulation steps (positional argument)

	LogLevel    string // level of the logging of the app action
	Output      string // output path
	Port        string // port for the visualization web server
	Quiet       bool   // disable progress report flag
	RandomSeed  int64  // set random seed for the simulation
	PrintMatrix bool   // print the full transition matrix
}

// createConfigFromFlags returns a config instance with user specified values
// or the default values if not provided by the user.
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		GridSize:       ctx.Int(GridSizeFlag.Name),
		Mean:           ctx.Float64(MeanFlag.Name),
		Persistence:    ctx.Float64(PersistenceFlag.Name),
		ShockDeviation: ctx.Float64(ShockDeviationFlag.Name),
		GridWidth:      ctx.Float64(GridWidthFlag.Name),

		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
		Output:      ctx.Path(OutputFlag.Name),
		Port:        ctx.String(PortFlag.Name),
		Quiet:       ctx.Bool(QuietFlag.Name),
		RandomSeed:  ctx.Int64(RandomSeedFlag.Name),
		PrintMatrix: ctx.Bool(MatrixFlag.Name),
	}
	return cfg
}

// updateConfigArguments parses the positional arguments of a subcommand
// according to its argument mode.
func (cfg *Config) updateConfigArguments(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
		if len(args) != 0 {
			return fmt.Errorf("command requires no arguments")
		}
	case ModelFileArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires a model file as argument")
		}
		cfg.ModelFile = args[0]
	case ModelFileLenArgs:
		if len(args) != 2 {
			return fmt.Errorf("command requires a model file and a simulation length as arguments")
		}
		cfg.ModelFile = args[0]
		length, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("simulation length (%v) is not an integer", args[1])
		}
		if length < 1 {
			return fmt.Errorf("simulation length (%v) must be positive", length)
		}
		cfg.SimLength = length
	default:
		return fmt.Errorf("unknown argument mode")
	}
	return nil
}

// adjustMissingConfigValues fills in defaults for values that cannot be
// expressed as flag defaults.
func (cfg *Config) adjustMissingConfigValues() {
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = int64(rand.Uint32())
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
}

// ProcessParameters assembles the AR1 process parameters from the config.
func (cfg *Config) ProcessParameters() ar1.Parameters {
	return ar1.Parameters{
		N:     cfg.GridSize,
		Mu:    cfg.Mean,
		Rho:   cfg.Persistence,
		Sigma: cfg.ShockDeviation,
		Width: cfg.GridWidth,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg := createConfigFromFlags(ctx)

	// parse positional arguments of the subcommand
	if err := cfg.updateConfigArguments(ctx.Args().Slice(), mode); err != nil {
		return nil, fmt.Errorf("unable to parse cli arguments; %v", err)
	}

	cfg.adjustMissingConfigValues()

	return cfg, nil
}
