// Package config sources the strategy key and vault settings for the btctl
// tooling.
//
// Values are resolved in order: built-in defaults, then the bullet-trade.yml
// config file, then a .env file in the working directory, then process
// environment variables. Later sources win. The environment variables are:
//
//   - STRATEGY_KEY: the key string (raw/hex/base64, see pkg/strategycrypto)
//   - STRATEGY_KEY_FILE: path to a file holding the key string
//   - BULLET_TRADE_VAULT_DIR: directory holding sealed strategy files
//   - BULLET_TRADE_CONFIG_PATH: directory containing bullet-trade.yml
//
// The key itself is never validated here; ParseKey does that at the point of
// use.
package config
