// Package config handles configuration management for packforge.
// Settings are layered: embedded defaults, then an optional packforge.toml
// (or .packforge.toml) in the project directory, then PACKFORGE_ environment
// variables.
package config
