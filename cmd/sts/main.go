// Package main is the NIST suite worker CLI, reinvoked by the distributed
// coordinator (or run standalone) for one rank's share of an input file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/distributed"
	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/nist"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:]); err != nil {
		var fatal *nist.FatalError
		if errors.As(err, &fatal) {
			log.Error().Str("test", fatal.Test).Int("exit_code", fatal.Code).Msg(fatal.Msg)
			os.Exit(fatal.Code)
		}
		log.Error().Err(err).Msg("sts worker failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sts", flag.ContinueOnError)
	mode := fs.String("m", "", "run mode: i (iterate-only), a (assess-only), b (iterate-and-assess)")
	iterations := fs.Int64("i", 1, "number of iterations (ignored in assess-only mode)")
	pvalDir := fs.String("d", ".", "p-value file directory")
	outFile := fs.String("w", "", "report output file (stdout if empty)")
	offset := fs.Int64("offset", -1, "byte offset into the input file of this worker's mmap'd range (distributed rank mode; requires -length and -m i)")
	length := fs.Int64("length", 0, "byte length of this worker's mmap'd range, paired with -offset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var runMode nist.RunMode
	switch *mode {
	case "i":
		runMode = nist.ModeIterateOnly
	case "a":
		runMode = nist.ModeAssessOnly
	case "b":
		runMode = nist.ModeIterateAndAssess
	default:
		return fmt.Errorf("sts: -m must be one of i, a, b, got %q", *mode)
	}

	if *offset >= 0 {
		// Distributed rank mode: mmap the given byte range of the input
		// directly instead of copying it in, per spec §9's "shared-memory
		// staging -> memory-mapped read-only view".
		if runMode != nist.ModeIterateOnly {
			return fmt.Errorf("sts: -offset is only valid with -m i")
		}
		rest := fs.Args()
		if len(rest) != 1 {
			return fmt.Errorf("sts: an input file is required with -offset")
		}
		cfg := nist.DefaultRunConfig()
		if err := distributed.RunWorkerRange(rest[0], *offset, *offset+*length, *iterations, *pvalDir, cfg); err != nil {
			return err
		}
		log.Info().Int64("offset", *offset).Int64("length", *length).Int64("iterations", *iterations).Msg("sts worker wrote p-value files from a mmap'd range")
		return nil
	}

	var input *nist.BitAccessor
	if runMode != nist.ModeAssessOnly {
		rest := fs.Args()
		if len(rest) != 1 {
			return fmt.Errorf("sts: an input file is required in mode %q", *mode)
		}
		data, err := os.ReadFile(rest[0])
		if err != nil {
			return fmt.Errorf("sts: reading input file: %w", err)
		}
		input = nist.NewBitAccessor(data)
	}

	cfg := nist.DefaultRunConfig()
	cfg.Mode = runMode
	cfg.NumOfBitStreams = *iterations
	if runMode != nist.ModeAssessOnly {
		cfg.N = input.Len() / *iterations
	}

	report, err := nist.Run(cfg, input, *pvalDir)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("sts: creating report file %s: %w", *outFile, err)
		}
		defer f.Close()
		out = f
	}

	if runMode == nist.ModeIterateOnly {
		log.Info().Int64("iterations", *iterations).Msg("sts worker wrote p-value files")
		return nil
	}
	return nist.WriteFinalAnalysisReport(out, cfg, report.Metrics)
}
