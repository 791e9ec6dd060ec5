package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long:  "Starts a new program in the terminal UI. Turns are narrated by Gemini when GEMINI_API_KEY is set.",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.RunE = runPlay
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	game, err := cfg.Balance()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	eng, err := engine.NewEngine(cmd.Context(), cfg, game, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer eng.Close()

	if err := tui.Run(eng, cfg.Seed); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
