// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/varsweep/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/varsweep/config.cue on macOS, %APPDATA%\varsweep\config.cue
// on Windows). The package provides type-safe configuration access covering the default
// document snapshot path, clone exclusion, and UI settings, with VARSWEEP_-prefixed
// environment variables overriding file values.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
