// Package config resolves the process-wide application configuration: the
// storage root that persisted artifacts live under and the logging settings.
//
// Values are layered, lowest precedence first:
//
//  1. Built-in defaults (storage root under os.UserCacheDir)
//  2. A config.toml, config.yaml or config.yml file in WorkDir, or FilePath
//  3. AGENTTOOLS_* environment variables
//
// The result is validated before it is exposed.
package config
