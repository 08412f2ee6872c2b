// nbayes fits a multinomial naive bayes classifier to count matrices and
// prints per-class posterior probabilities.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	modelCategory  = "MODEL"
	outputCategory = "OUTPUT"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	AlphaFlag = &cli.Float64Flag{
		Name:     "alpha",
		Usage:    "Additive smoothing constant (0 disables smoothing, 1 is Laplace)",
		Category: modelCategory,
	}
	WorkersFlag = &cli.IntFlag{
		Name:     "workers",
		Usage:    "Goroutines used for prediction (0 = GOMAXPROCS)",
		Category: modelCategory,
	}
	PrecisionFlag = &cli.IntFlag{
		Name:     "precision",
		Usage:    "Fractional digits printed per posterior",
		Category: outputCategory,
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Log level written to stderr (panic, fatal, error, warn, info, debug, trace)",
	}
	PlotFlag = &cli.StringFlag{
		Name:     "plot",
		Usage:    "Render the posteriors as a bar chart to this file (.png, .svg, .pdf)",
		Category: outputCategory,
	}
	SummaryFlag = &cli.BoolFlag{
		Name:     "summary",
		Usage:    "Print a per-class summary table to stderr",
		Category: outputCategory,
	}
	ClassNamesFlag = &cli.StringSliceFlag{
		Name:     "class-names",
		Usage:    "Class names used by --plot and --summary, in column order",
		Category: outputCategory,
	}
)

// globalFlags apply to every command.
var globalFlags = []cli.Flag{
	ConfigFlag,
	AlphaFlag,
	WorkersFlag,
	PrecisionFlag,
	VerbosityFlag,
}

// log writes diagnostics to stderr; stdout carries only results.
var log = logrus.New()

func newApp() *cli.App {
	app := &cli.App{
		Name:      "nbayes",
		Usage:     "multinomial naive bayes over whitespace-delimited count matrices",
		ArgsUsage: "<x-train> <y-train> <x-query>",
		Flags:     append(append([]cli.Flag{}, globalFlags...), PlotFlag, SummaryFlag, ClassNamesFlag),
		Action:    classify,
		Commands: []*cli.Command{
			evaluateCommand,
			splitCommand,
			encodeCommand,
			dumpconfigCommand,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}
