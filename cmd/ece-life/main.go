// Package main is the ece-life command: play the game in the terminal,
// simulate playthroughs, or inspect the balance table.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tatianab/ece-life/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "ece-life",
	Short:         "Live through an ECE degree one month at a time",
	Long:          "ece-life is a terminal life simulation of an electrical and computer engineering degree: pick activities, survive random events and try to graduate with a job offer.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagSeed        uint64
	flagDifficulty  string
	flagBalanceFile string
)

func init() {
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset: normal, casual or hard")
	rootCmd.PersistentFlags().StringVarP(&flagBalanceFile, "balance", "b", "", "Path to a balance YAML file applied on top of the preset")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty = flagDifficulty
	}
	if flags.Changed("balance") {
		cfg.BalanceFile = flagBalanceFile
	}
	return cfg, nil
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
	return logger, f, nil
}
