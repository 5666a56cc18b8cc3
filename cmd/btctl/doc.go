// Package main implements btctl, the bullet-trade strategy encryption tool.
//
// bullet-trade distributes trading strategies as sealed blobs: AES-256-GCM
// with the random nonce prepended and the authentication tag appended. btctl
// is the command-line side of that scheme; the GUI client and the strategy
// server speak the same format.
//
// # Quick Start
//
//	# Generate a strategy key
//	export STRATEGY_KEY="$(btctl strategy-key generate)"
//
//	# Seal and open individual files
//	btctl encrypt momentum.py
//	btctl decrypt momentum.py.enc -o momentum.py
//
//	# Keep a strategy directory sealed
//	btctl vault watch strategies/
//
// # Environment Variables
//
//   - STRATEGY_KEY: key string, raw/hex/base64 (empty selects the built-in
//     development key)
//   - STRATEGY_KEY_FILE: path to a file holding the key string
//   - BULLET_TRADE_VAULT_DIR: default directory for vault commands
//   - BULLET_TRADE_CONFIG_PATH: directory containing bullet-trade.yml
package main
