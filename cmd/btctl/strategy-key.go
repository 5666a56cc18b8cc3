package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// strategyKeyCmd represents the strategy-key command
var strategyKeyCmd = &cobra.Command{
	Use:   "strategy-key",
	Short: "Manage the strategy encryption key",
	Long:  `Manage the strategy encryption key`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'strategy-key' requires a subcommand (generate, inspect)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(strategyKeyCmd)
}
