// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// describe reads numbers and describes their distribution: sum,
// average, extrema, spread, quartiles, percentiles, and outliers.
//
// Values are read from the named files, or stdin if there are none,
// and may be separated by newlines, commas, or blanks. Empty fields
// and tokens such as NA or nil are missing values, handled according
// to -missing.
//
// Flags may also be set through DESCRIBE_* environment variables,
// including ones listed in a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hyp3rd/ewrap"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/aclements/go-describe/stats"
)

var (
	errBadFormat     = ewrap.New("unknown output format")
	errBadPercentile = ewrap.New("percentile must be an integer in 1..100")
)

func main() {
	if err := loadDotEnv(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
	}

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDotEnv adds the variables in the named files to the environment.
// Variables already set are left alone, so the real environment wins.
func loadDotEnv(names ...string) error {
	if err := godotenv.Load(names...); err != nil {
		return ewrap.Wrap(err, "loading .env")
	}
	return nil
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "describe",
		Usage:     "describe the distribution of a list of numbers",
		ArgsUsage: "[file...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "missing",
				Aliases: []string{"m"},
				Usage:   "how to handle missing values (\"ignore\" or \"mean\")",
				Value:   stats.Ignore.String(),
				EnvVars: []string{"DESCRIBE_MISSING"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (\"table\" or \"json\")",
				Value:   "table",
				EnvVars: []string{"DESCRIBE_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "percentiles",
				Aliases: []string{"p"},
				Usage:   "comma-separated percentiles to show in table output",
				Value:   "1,5,25,50,75,95,99,100",
				EnvVars: []string{"DESCRIBE_PERCENTILES"},
			},
			&cli.BoolFlag{
				Name:  "all-percentiles",
				Usage: "show every percentile from 1 to 100 in table output",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "log level (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
				Value:   "warning",
				EnvVars: []string{"DESCRIBE_LOG"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: describe,
	}
}

func describe(ctx *cli.Context) error {
	log := newLogger(ctx.App.ErrWriter, ctx.String("log"))
	if ctx.Bool("no-color") {
		color.NoColor = true
	}

	policy, err := stats.ParseMissingPolicy(ctx.String("missing"))
	if err != nil {
		return err
	}
	format := ctx.String("format")
	if format != "table" && format != "json" {
		return ewrap.Wrapf(errBadFormat, "%q", format)
	}
	ps := allPercentiles()
	if !ctx.Bool("all-percentiles") {
		if ps, err = parsePercentiles(ctx.String("percentiles")); err != nil {
			return err
		}
	}

	names := ctx.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	data, err := readFiles(ctx.App.Reader, names)
	if err != nil {
		return err
	}
	missing := 0
	for _, v := range data {
		if v.IsMissing() {
			missing++
		}
	}
	log.Debugf("read %d values from %v", len(data), names)
	if missing > 0 {
		log.Noticef("%d of %d values missing, policy %v", missing, len(data), policy)
	}

	res, err := stats.Describe(data, policy)
	if err != nil {
		log.Errorf("cannot describe input: %v", err)
		return err
	}
	log.Infof("described %d values, %d outliers", res.N, len(res.Outliers))

	if format == "json" {
		return printJSON(ctx.App.Writer, res)
	}
	printTable(ctx.App.Writer, res, ps)
	return nil
}
