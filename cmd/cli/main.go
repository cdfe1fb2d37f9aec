package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "testrank",
		Short:   "TestRank - test case priority scoring",
		Long:    `TestRank scores test cases for execution priority using keyword analysis, test-type profiles and optional LLM hints.`,
		Version: version,
	}

	// Add subcommands
	rootCmd.AddCommand(enhanceCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(typesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
