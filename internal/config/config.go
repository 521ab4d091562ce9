// Package config loads the editor's ambient configuration: knobs that
// affect I/O glue (payload line size, interactive history file) but never
// document semantics. Files are JSONC (comments and trailing commas
// allowed) and layer with fixed precedence: defaults, then the global
// user file, then the project file, then CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/linedit/lineed/internal/parser"
)

// Config holds the ambient options the editor binary accepts. None of
// these fields reach the store/history/dispatch core.
type Config struct {
	MaxLineBytes int    `json:"max_line_bytes,omitempty"`
	HistoryFile  string `json:"history_file,omitempty"`
	Interactive  bool   `json:"interactive,omitempty"`
}

// FileName is the project-local config file name.
const FileName = ".lineed.json"

// Default returns the built-in configuration, before any file or flag
// overrides are applied.
func Default() Config {
	return Config{
		MaxLineBytes: parser.DefaultMaxLineBytes,
		HistoryFile:  defaultHistoryFile(),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lineed_history")
}

// globalPath returns the path to the global user config file, honoring
// XDG_CONFIG_HOME with a ~/.config fallback.
func globalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lineed", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "lineed", "config.json")
}

// Load layers configuration with the following precedence (highest wins):
//  1. Default()
//  2. the global user config file
//  3. the project config file (.lineed.json in workDir), or an explicit
//     file at explicitPath if non-empty
//
// A file overrides a lower layer only for fields it sets to a non-zero
// value, so a file can switch Interactive on but cannot switch it back off.
//
// CLI flag overrides are applied by the caller after Load returns, since
// pflag.FlagSet already knows which flags were explicitly set.
func Load(workDir, explicitPath string) (Config, error) {
	cfg := Default()

	if p := globalPath(); p != "" {
		overlay, err := loadFile(p, false)
		if err != nil {
			return Config{}, err
		}
		cfg = merge(cfg, overlay)
	}

	projectPath := explicitPath
	mustExist := explicitPath != ""

	if projectPath == "" {
		projectPath = filepath.Join(workDir, FileName)
	}

	overlay, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, overlay)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, mustExist bool) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled, not request input
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.MaxLineBytes != 0 {
		base.MaxLineBytes = overlay.MaxLineBytes
	}
	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}
	if overlay.Interactive {
		base.Interactive = true
	}
	return base
}

func validate(cfg Config) error {
	if cfg.MaxLineBytes <= 0 {
		return errMaxLineBytes
	}
	return nil
}

// ExpandHome replaces a leading "~" in path with the user's home
// directory, matching the shorthand used in the sample config.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
