package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/itisl2220/bullet-trade/pkg/config"
	"github.com/itisl2220/bullet-trade/pkg/strategycrypto"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt <file>",
	Short: "Encrypt a file with the strategy key",
	Long: `Encrypt a file with the strategy key.

Reads plaintext from <file>, or from stdin when <file> is "-", and writes the
sealed blob (nonce || ciphertext || tag). Output goes to <file> plus the
sealed extension, or to stdout when reading stdin. Use --out to override.

Example:
  btctl encrypt momentum.py
  cat momentum.py | btctl encrypt - > momentum.py.enc`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outPath, _ := cmd.Flags().GetString("out")

		if err := runEncrypt(args[0], outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Encrypt failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().StringP("out", "o", "", "Output path (default: <file>"+config.DefaultSealedExt+", or stdout for stdin input)")
}

func runEncrypt(inPath, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, err := cfg.ResolveKey()
	if err != nil {
		return err
	}

	plainText, err := readInput(inPath)
	if err != nil {
		return err
	}

	blob, err := strategycrypto.EncryptBytes(key, plainText)
	if err != nil {
		return err
	}

	if outPath == "" && inPath != "-" {
		outPath = inPath + cfg.SealedExt
	}

	return writeOutput(outPath, blob)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
