// Package types holds the configuration structs shared by the config,
// logging and tool packages. The structs carry toml, yaml and validate tags
// and have no behavior beyond their defaults.
package types
