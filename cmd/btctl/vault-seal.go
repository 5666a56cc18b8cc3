package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// vaultSealCmd represents the vault seal command
var vaultSealCmd = &cobra.Command{
	Use:   "seal [dir]",
	Short: "Seal every plaintext strategy file in a directory",
	Long: `Seal every plaintext strategy file in a directory.

Files that already have a sealed counterpart are skipped. The directory
defaults to the configured vault directory.

Example:
  btctl vault seal
  btctl vault seal strategies/`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, cfg, err := loadVault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open vault: %v\n", err)
			os.Exit(1)
		}

		dir := cfg.VaultDir
		if len(args) == 1 {
			dir = args[0]
		}

		sealed, err := v.SealDir(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Seal failed: %v\n", err)
			os.Exit(1)
		}

		for _, path := range sealed {
			fmt.Println(path)
		}
		fmt.Printf("Sealed %d file(s)\n", len(sealed))
	},
}

func init() {
	vaultCmd.AddCommand(vaultSealCmd)
}
