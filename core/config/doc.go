// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for config.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation
// - 2026-10-18 v0.2.0: Documented JSON, validation and fsnotify watching

// Package config loads TOML, YAML and JSON documents into a nested map and
// offers dot-path access to it.
//
// The format is detected from the extension (.toml, .yaml, .yml, .json) and
// falls back to TOML. With an EnvPrefix, the variable PREFIX_LOG_LEVEL
// overrides the key log.level.
//
//	cfg, err := config.LoadWithOptions("istring.toml", config.LoadOptions{
//	    EnvPrefix: "ISTRING",
//	    Defaults:  map[string]interface{}{"log": map[string]interface{}{"level": "info"}},
//	})
//	level := cfg.GetString("log.level")
//
// Structs decoded with Decode can be checked with Validate, which uses
// go-playground/validator tags and reports the first failing field as a
// VALIDATION_FAILED error. Watcher reports file changes through fsnotify.
package config
