package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/lrmatch/internal/config"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "lr-match",
		Usage:     "Utility for distributing a quadratic funding matching pool",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			newCalcCmd(),
			newCheckCmd(),
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "round",
			Aliases:  []string{"r"},
			Required: true,
			Usage:    "specify the input round file (.json, .yaml, .toml or .csv)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "specify the round file format, overriding its extension",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify the config file (default ./" + config.FileName + ")",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every allocation",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log warnings and errors",
		},
	}
}

func newCalcCmd() *cli.Command {
	return &cli.Command{
		Name:    "calc",
		Usage:   "Calculate the constrained matches of a round",
		Aliases: []string{"c"},
		Flags: append([]cli.Flag{
			&cli.Float64Flag{
				Name:  "budget",
				Usage: "specify the matching budget, overriding config and round file",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "specify the output report file (default stdout)",
			},
			&cli.StringFlag{
				Name:  "out-format",
				Usage: "specify the report format (json, yaml, toml, csv)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		}, commonFlags()...),
		Action: func(ctx *cli.Context) error {
			opts, err := resolveOptions(ctx)
			if err != nil {
				return err
			}
			if opts.budget != nil && *opts.budget < 0 {
				return errors.New("invalid budget")
			}
			return doCalc(ctx.Context, opts, ctx.App.Writer, ctx.App.ErrWriter)
		},
	}
}

func newCheckCmd() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Usage:   "Check that a round file can be matched",
		Aliases: []string{"k"},
		Flags:   commonFlags(),
		Action: func(ctx *cli.Context) error {
			opts, err := resolveOptions(ctx)
			if err != nil {
				return err
			}
			return doCheck(ctx.Context, opts, ctx.App.Writer, ctx.App.ErrWriter)
		},
	}
}
