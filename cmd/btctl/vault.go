package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// vaultCmd represents the vault command
var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage a directory of sealed strategy files",
	Long:  `Manage a directory of sealed strategy files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'vault' requires a subcommand (seal, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
}
