package main

import (
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the effective balance table as YAML",
	Long:  "Resolves the difficulty preset and balance file and prints the result. The output is a valid balance file.",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	game, err := cfg.Balance()
	if err != nil {
		return err
	}
	out, err := game.Encode()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
