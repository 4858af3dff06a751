// Package config loads runtime settings for the maze commands.
//
// Values come from an optional .env file and MAZE_* environment variables,
// on top of Default. Command-line flags in cmd/ are applied afterwards and
// re-checked with Validate. Every failure wraps ErrInvalidConfig.
package config
