// Package main is the distributed launcher CLI: it fans an input file out
// across worker subprocesses and writes the aggregated report.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmmannChristian/nist-sp800-22-rev1a/internal/distributed"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: mpi_sts <input_file> <output_file>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	out, err := os.Create(outputPath)
	if err != nil {
		log.Error().Err(err).Str("output_file", outputPath).Msg("mpi_sts: failed to create output file")
		os.Exit(1)
	}
	defer out.Close()

	if _, err := distributed.RunDistributed(inputPath, out); err != nil {
		log.Error().Err(err).Msg("mpi_sts: job failed")
		os.Exit(1)
	}
}
