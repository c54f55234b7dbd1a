// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML, YAML and JSON with dot-path
//              lookup and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Added JSON, Get and Decode, dropped polling watcher

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ierror "github.com/msto63/istring/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML, the fallback for unknown extensions
	FormatTOML

	// FormatYAML represents YAML
	FormatYAML

	// FormatJSON represents JSON
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. The empty string selects FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatAuto, ierror.Newf("unknown config format %q", s).
		WithCode(ierror.CodeInvalidInput).
		WithOperation("config.ParseFormat")
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Values used when the file omits a key
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, ierror.New("config file path cannot be empty").
			WithCode(ierror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := readFile(filePath, format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, ierror.Wrap(err, "failed to parse config from string").
			WithCode(ierror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

// FromMap wraps data in a Config. The map is copied.
func FromMap(data map[string]interface{}) *Config {
	return &Config{data: deepCopyMap(data), format: FormatAuto}
}

// WithEnvPrefix enables environment overrides for a config built without a
// file
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envPrefix = prefix
	return c
}

func readFile(filePath string, format Format) (map[string]interface{}, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		code := ierror.CodeConfigError
		if os.IsNotExist(err) {
			code = ierror.CodeNotFound
		}
		return nil, ierror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, ierror.Wrap(err, "failed to parse config file").
			WithCode(ierror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return data, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, ierror.Wrap(err, "TOML parse error").WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, ierror.Wrap(err, "YAML parse error").WithOperation("config.parseContent")
		}
	case FormatJSON:
		if len(bytes.TrimSpace(content)) == 0 {
			break
		}
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, ierror.Wrap(err, "JSON parse error").WithOperation("config.parseContent")
		}
	default:
		return nil, ierror.Newf("unsupported format: %s", format).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	// an empty YAML document decodes to nil
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults returns data layered over defaults; nested maps merge key by key
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(defaults)
	for k, v := range data {
		dm, dataIsMap := v.(map[string]interface{})
		rm, resultIsMap := result[k].(map[string]interface{})
		if dataIsMap && resultIsMap {
			result[k] = mergeDefaults(dm, rm)
			continue
		}
		result[k] = v
	}
	return result
}

// Get returns the value at the dot-separated key. An environment override
// wins over file data.
func (c *Config) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue, true
	}
	return c.getValue(key)
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.Get(key)
	if !ok || value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, _ := c.Get(key)

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// Data returns a deep copy of all configuration data
func (c *Config) Data() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// Decode copies the configuration into v, a pointer to a struct tagged with
// `json` names. Environment overrides are not applied.
func (c *Config) Decode(v interface{}) error {
	c.mu.RLock()
	raw, err := json.Marshal(c.data)
	c.mu.RUnlock()
	if err != nil {
		return ierror.Wrap(err, "failed to encode config").
			WithCode(ierror.CodeInvalidConfig).
			WithOperation("config.Decode")
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return ierror.Wrap(err, "failed to decode config").
			WithCode(ierror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("filePath", c.filePath)
	}
	return nil
}

// Reload re-reads the file the configuration was loaded from
func (c *Config) Reload() error {
	c.mu.RLock()
	filePath, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	if filePath == "" {
		return ierror.New("config was not loaded from a file").
			WithCode(ierror.CodeConfigError).
			WithOperation("config.Reload")
	}

	data, err := readFile(filePath, format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.data = mergeDefaults(data, defaults)
	c.mu.Unlock()
	return nil
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// getValue walks the data along a dot-separated key
func (c *Config) getValue(key string) (interface{}, bool) {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return value, true
		}

		next, isMap := value.(map[string]interface{})
		if !isMap {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// getEnvValue looks up the environment override for key. Overrides are only
// consulted when an env prefix is configured.
func (c *Config) getEnvValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	return os.LookupEnv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// log.level with prefix ISTRING becomes ISTRING_LOG_LEVEL
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(c.envPrefix) + "_" + envKey
}

// deepCopyMap creates a deep copy of a map
func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
