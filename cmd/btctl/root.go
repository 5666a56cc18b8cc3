package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itisl2220/bullet-trade/pkg/config"
	"github.com/itisl2220/bullet-trade/pkg/vault"
)

var rootCmd = &cobra.Command{
	Use:   "btctl",
	Short: "bullet-trade strategy encryption tool",
	Long: `Encrypt and decrypt bullet-trade strategy files.

Strategy code is protected with AES-256-GCM; the sealed blob carries its own
nonce and authentication tag and is compatible with the blobs produced by the
strategy server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// loadVault builds a Vault from the resolved configuration.
func loadVault() (*vault.Vault, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	key, err := cfg.ResolveKey()
	if err != nil {
		return nil, nil, err
	}

	v, err := vault.New(key, cfg.PlainExt, cfg.SealedExt)
	if err != nil {
		return nil, nil, err
	}

	return v, cfg, nil
}
