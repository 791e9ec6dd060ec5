package main

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/cobra"
	"github.com/tatianab/ece-life/internal/dice"
	"github.com/tatianab/ece-life/internal/engine"
	"github.com/tatianab/ece-life/internal/sim"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Autoplay a session and print a YAML report",
	Long:  "Plays a session with a built-in policy (greedy, random) or a Gemini player (gemini) and prints the final state and history as YAML. The same seed and policy reproduce the same report.",
	RunE:  runSimulate,
}

var (
	simulateTurns  int
	simulatePolicy string
)

func init() {
	simulateCmd.Flags().IntVarP(&simulateTurns, "turns", "n", 40, "Maximum number of turns to attempt")
	simulateCmd.Flags().StringVarP(&simulatePolicy, "policy", "p", "greedy", "Policy: greedy, random or gemini")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simulateTurns <= 0 {
		return fmt.Errorf("--turns must be positive, got %d", simulateTurns)
	}
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

	ctx := cmd.Context()
	eng, err := engine.NewEngine(ctx, cfg, game, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer eng.Close()

	session, err := eng.NewSession(cfg.Seed)
	if err != nil {
		return err
	}
	defer session.Close()

	var policy sim.Policy
	if strings.EqualFold(simulatePolicy, "gemini") {
		if !cfg.NarrationEnabled() {
			return fmt.Errorf("the gemini policy needs GEMINI_API_KEY")
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			return fmt.Errorf("failed to create player client: %w", err)
		}
		defer client.Close()
		policy = sim.NewPlayer(client.GenerativeModel(cfg.GeminiModel))
	} else {
		// The policy gets its own stream so the session's draws stay
		// reproducible for a given seed.
		rng, _ := dice.New(session.Seed ^ 0x5bd1e995)
		policy, err = sim.NewPolicy(strings.ToLower(simulatePolicy), rng)
		if err != nil {
			return err
		}
	}

	report, err := sim.Run(ctx, session, policy, simulateTurns, logger)
	if err != nil {
		return err
	}
	report.Difficulty = cfg.Difficulty

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
