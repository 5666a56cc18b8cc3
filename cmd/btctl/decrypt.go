package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itisl2220/bullet-trade/pkg/config"
	"github.com/itisl2220/bullet-trade/pkg/strategycrypto"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Decrypt a sealed file with the strategy key",
	Long: `Decrypt a sealed file with the strategy key.

Reads a sealed blob from <file>, or from stdin when <file> is "-". Output goes
to <file> with the sealed extension stripped, or to stdout when that is not
possible. Use --out to override.

Decryption fails if the blob was tampered with or was sealed under a different
key; the two cases are not distinguished.

Example:
  btctl decrypt momentum.py.enc
  btctl decrypt momentum.py.enc -o /tmp/momentum.py`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outPath, _ := cmd.Flags().GetString("out")

		if err := runDecrypt(args[0], outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Decrypt failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().StringP("out", "o", "", "Output path (default: input without the sealed extension, or stdout)")
}

func runDecrypt(inPath, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, err := cfg.ResolveKey()
	if err != nil {
		return err
	}

	blob, err := readInput(inPath)
	if err != nil {
		return err
	}

	plainText, err := strategycrypto.DecryptBytes(key, blob)
	if err != nil {
		return err
	}

	if outPath == "" && inPath != "-" && strings.HasSuffix(inPath, cfg.SealedExt) {
		outPath = strings.TrimSuffix(inPath, cfg.SealedExt)
	}

	return writeOutput(outPath, plainText)
}
