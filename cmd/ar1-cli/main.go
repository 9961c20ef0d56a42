package main

import (
	"fmt"
	"os"

	"github.com/anhnguyendepocen/VFI/cmd/ar1-cli/ar1"
	"github.com/urfave/cli/v2"
)

// initDiscretizationApp initializes an ar1-cli app. This function is called
// by the main function and unit tests.
func initDiscretizationApp() *cli.App {
	return &cli.App{
		Name:     "AR1 Discretization Manager",
		HelpName: "ar1",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&ar1.DiscretizeCommand,
			&ar1.ShowCommand,
			&ar1.SimulateCommand,
			&ar1.VisualizeCommand,
		},
	}
}

// main implements the "ar1" cli application.
func main() {
	app := initDiscretizationApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
