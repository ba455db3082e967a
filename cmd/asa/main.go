package main

import (
	"os"

	"asa/internal/config"
	"asa/internal/logger"
	"asa/internal/runner"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

// verbose selects stack-trace printing for failures
var verbose bool

// Main entry point for the asa interpreter.
func main() {
	app := &cli.App{
		Name:   "asa",
		Usage:  "parse and run asa programs",
		Flags:  flags(),
		Action: run,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a file, an expression or the demo program",
				ArgsUsage: "[file]",
				Flags:     flags(),
				Action:    run,
			},
			{
				Name:      "parse",
				Usage:     "print the syntax tree of a file or expression",
				ArgsUsage: "[file]",
				Flags:     flags(),
				Action: func(c *cli.Context) error {
					r, err := setup(c)
					if err != nil {
						return err
					}
					return r.Parse()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		err = tracerr.Wrap(err)
		if verbose {
			tracerr.Print(err)
		}
		log.Fatal("asa failed", "error", tracerr.Unwrap(err))
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "expr", Aliases: []string{"e"}, Usage: "source to run instead of a file"},
		&cli.BoolFlag{Name: "tree", Aliases: []string{"t"}, Usage: "print the syntax tree before running"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose mode"},
		&cli.BoolFlag{Name: "no-color", Aliases: []string{"n"}, Usage: "no color"},
		&cli.IntFlag{Name: "max-depth", Usage: "maximum nested calls (0 = unlimited)"},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "settings file (default " + config.DefaultFile + ")"},
	}
}

func run(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	return r.Run()
}

// setup merges the settings file with the flags and initializes logging
func setup(c *cli.Context) (*runner.Runner, error) {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	if c.IsSet("verbose") {
		settings.Verbose = c.Bool("verbose")
	}
	if c.IsSet("no-color") {
		settings.NoColor = c.Bool("no-color")
	}
	if c.IsSet("tree") {
		settings.DumpTree = c.Bool("tree")
	}
	if c.IsSet("max-depth") {
		settings.MaxDepth = c.Int("max-depth")
	}

	logger.Init(settings.Verbose, settings.NoColor)

	verbose = settings.Verbose
	return &runner.Runner{
		Verbose:    settings.Verbose,
		NoColor:    settings.NoColor,
		DumpTree:   settings.DumpTree,
		MaxDepth:   settings.MaxDepth,
		SourceFile: c.Args().First(),
		Source:     c.String("expr"),
	}, nil
}
