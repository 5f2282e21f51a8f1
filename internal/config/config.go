// Package config loads glow settings from TOML files with defaults
// and environment variable overrides layered on top.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.glowrc, $XDG_CONFIG_HOME/glow/config.toml, ~/.config/glow/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".glowrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "glow", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Spotify
	if v := os.Getenv("GLOW_SPOTIFY_ACCESS_TOKEN"); v != "" {
		cfg.Spotify.AccessToken = v
	}
	if v := os.Getenv("GLOW_SPOTIFY_POLL_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Spotify.PollMS = i
		}
	}

	// Lyrics
	if v := os.Getenv("GLOW_LYRICS_BASE_URL"); v != "" {
		cfg.Lyrics.BaseURL = v
	}
	if v := os.Getenv("GLOW_LYRICS_OFFSET_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Lyrics.OffsetMS = i
		}
	}

	// Matrix
	if v := os.Getenv("GLOW_MATRIX_OUTPUT"); v != "" {
		cfg.Matrix.Output = v
	}

	// Render
	if v := os.Getenv("GLOW_RENDER_FPS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Render.FPS = i
		}
	}

	// Log
	if v := os.Getenv("GLOW_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
