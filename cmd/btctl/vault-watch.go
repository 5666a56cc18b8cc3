package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/itisl2220/bullet-trade/pkg/vault"
)

// vaultWatchCmd represents the vault watch command
var vaultWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and seal strategy files as they appear",
	Long: `Watch a directory and seal plaintext strategy files as they are written.

Runs until interrupted. The directory defaults to the configured vault
directory. With --rm the plaintext file is deleted once sealed.

Example:
  btctl vault watch
  btctl vault watch --rm strategies/`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removePlain, _ := cmd.Flags().GetBool("rm")

		v, cfg, err := loadVault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open vault: %v\n", err)
			os.Exit(1)
		}

		dir := cfg.VaultDir
		if len(args) == 1 {
			dir = args[0]
		}

		if err := watchVault(v, dir, removePlain); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch vault: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	vaultCmd.AddCommand(vaultWatchCmd)
	vaultWatchCmd.Flags().Bool("rm", false, "Remove the plaintext file after sealing")
}

func watchVault(v *vault.Vault, dir string, removePlain bool) error {
	logger := logrus.New()

	watcher := vault.NewWatcher(v, dir, logger)
	watcher.RemovePlain = removePlain

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx)
}
