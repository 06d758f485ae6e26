// Package config loads kite settings.
//
// Settings come from, lowest priority first:
//
//   - built-in defaults (Defaults)
//   - a config file: the --config path, else $XDG_CONFIG_HOME/kite/config.toml,
//     else ~/.config/kite/config.toml
//   - KITE_ environment variables, with dots as underscores
//     (KITE_LOG_LEVEL sets log.level)
//   - command line flags bound through Viper
//
// A missing file in the default locations is not an error. WriteDefault
// renders the defaults as TOML or YAML for users to edit.
package config
