// Package config loads, normalizes, and validates the storyreel TOML
// configuration.
//
// The project storage root can be overridden with the STORYREEL_HOME
// environment variable; normalization folds that override into the explicit
// config value so nothing downstream reads ambient state.
package config
