// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/someonegg/lrmatch/grant"
	"github.com/someonegg/lrmatch/internal/config"
	"github.com/someonegg/lrmatch/internal/log"
)

type options struct {
	roundFile string
	outFile   string

	format    grant.Format // empty means guess from roundFile
	outFormat grant.Format

	budget *float64 // nil means use the round's

	verbose bool
	quiet   bool
	noColor bool
}

// resolveOptions merges the config file with the command line. Flags set
// explicitly win over the config.
func resolveOptions(ctx *cli.Context) (*options, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config file failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	opts := &options{
		roundFile: ctx.String("round"),
		outFile:   ctx.String("out"),
		budget:    cfg.Budget,
		verbose:   cfg.Verbose,
		quiet:     cfg.Quiet,
		noColor:   cfg.NoColor,
	}

	format := cfg.Format
	if ctx.IsSet("format") {
		format = ctx.String("format")
	}
	if format != "" {
		if opts.format, err = grant.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	outFormat := cfg.OutputFormat
	if ctx.IsSet("out-format") {
		outFormat = ctx.String("out-format")
	}
	if outFormat == "" && opts.outFile != "" {
		if f, err := grant.FormatOf(opts.outFile); err == nil {
			outFormat = string(f)
		}
	}
	if outFormat == "" {
		outFormat = string(grant.FormatJSON)
	}
	if opts.outFormat, err = grant.ParseFormat(outFormat); err != nil {
		return nil, err
	}

	if ctx.IsSet("budget") {
		budget := ctx.Float64("budget")
		opts.budget = &budget
	}
	if ctx.IsSet("verbose") {
		opts.verbose = ctx.Bool("verbose")
	}
	if ctx.IsSet("quiet") {
		opts.quiet = ctx.Bool("quiet")
	}
	if ctx.IsSet("no-color") {
		opts.noColor = ctx.Bool("no-color")
	}

	return opts, nil
}

func doCalc(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	log.SetupWriter(stderr, opts.verbose, opts.quiet)

	round, err := loadRound(opts)
	if err != nil {
		return fmt.Errorf("load round file failed: %w", err)
	}
	if opts.budget == nil && isCSV(opts) {
		return errors.New("csv rounds carry no budget, use --budget or the config file")
	}

	matcher := &grant.Matcher{
		Logger:  slog.Default(),
		Verbose: opts.verbose,
	}
	allocs, summ, err := matcher.Match(round)
	if err != nil {
		return fmt.Errorf("match round failed: %w", err)
	}

	rep := &grant.Report{
		RunID:   uuid.NewString(),
		Round:   round.Name,
		Summary: summ,
		Allocs:  allocs,
	}
	slog.Debug("report", "run_id", rep.RunID, "round", rep.Round)

	if err := writeReport(opts.outFile, opts.outFormat, rep, stdout); err != nil {
		return fmt.Errorf("write report file failed: %w", err)
	}

	if !opts.quiet {
		if err := printAllocs(stderr, rep, opts.noColor); err != nil {
			return err
		}
	}

	return nil
}

func doCheck(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	log.SetupWriter(stderr, opts.verbose, opts.quiet)

	round, err := loadRound(opts)
	if err != nil {
		return fmt.Errorf("load round file failed: %w", err)
	}

	matcher := &grant.Matcher{
		Logger:  slog.Default(),
		Verbose: opts.verbose,
	}
	_, summ, err := matcher.Match(round)
	if err != nil {
		return fmt.Errorf("check round failed: %w", err)
	}

	fmt.Fprintf(stdout, "ok: %s: %d recipients, %d funders, %d contributions, %d skipped, contributed %s\n",
		round.Name, summ.RecipientsCount, summ.FundersCount, summ.ContributionsCount,
		summ.SkippedCount, formatAmount(summ.Contributed))
	return nil
}

func roundFormat(opts *options) (grant.Format, error) {
	if opts.format != "" {
		return opts.format, nil
	}
	return grant.FormatOf(opts.roundFile)
}

func isCSV(opts *options) bool {
	f, err := roundFormat(opts)
	return err == nil && f == grant.FormatCSV
}

func loadRound(opts *options) (*grant.Round, error) {
	format, err := roundFormat(opts)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.roundFile)
	if err != nil {
		return nil, err
	}

	round, err := grant.DecodeRound(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}

	if round.Name == "" {
		base := filepath.Base(opts.roundFile)
		round.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if opts.budget != nil {
		round.Budget = *opts.budget
	}

	return round, nil
}

func writeReport(file string, format grant.Format, rep *grant.Report, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := grant.EncodeReport(&buf, format, rep); err != nil {
		return err
	}

	if file == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0644)
}
