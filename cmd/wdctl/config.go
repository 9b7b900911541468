// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the resolved tool configuration. Precedence, lowest to
// highest: built-in defaults, system config file, environment, flags.
type Config struct {
	Server       string
	Browser      string
	Timeout      time.Duration
	ArtifactsDir string
}

type rawConfig struct {
	Server       string `toml:"server"`
	Browser      string `toml:"browser"`
	Timeout      string `toml:"timeout"`
	ArtifactsDir string `toml:"artifacts_dir"`
}

func loadConfig(configPath, serverOverride, browserOverride string) (Config, error) {
	cfg := Config{
		Server:       "http://localhost:4444",
		Browser:      "firefox",
		Timeout:      120 * time.Second,
		ArtifactsDir: defaultArtifactsDir(),
	}

	if err := loadConfigFile(&cfg, configPath); err != nil {
		return Config{}, err
	}

	if v := strings.TrimSpace(os.Getenv("WDCTL_SERVER")); v != "" {
		cfg.Server = v
	}
	if v := strings.TrimSpace(os.Getenv("WDCTL_BROWSER")); v != "" {
		cfg.Browser = v
	}
	if v := strings.TrimSpace(os.Getenv("WDCTL_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("WDCTL_ARTIFACTS_DIR")); v != "" {
		cfg.ArtifactsDir = v
	}

	if strings.TrimSpace(serverOverride) != "" {
		cfg.Server = serverOverride
	}
	if strings.TrimSpace(browserOverride) != "" {
		cfg.Browser = browserOverride
	}

	return cfg, nil
}

func loadConfigFile(cfg *Config, configPath string) error {
	paths := []string{
		"/usr/local/etc/wdctl/config.toml",
		"/opt/homebrew/etc/wdctl/config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append([]string{filepath.Join(home, ".config", "wdctl", "config.toml")}, paths...)
	}
	if strings.TrimSpace(configPath) != "" {
		// An explicit path must exist.
		paths = []string{configPath}
		if _, err := os.Stat(configPath); err != nil {
			return err
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var raw rawConfig
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return err
		}
		if raw.Server != "" {
			cfg.Server = raw.Server
		}
		if raw.Browser != "" {
			cfg.Browser = raw.Browser
		}
		if raw.Timeout != "" {
			if d, err := time.ParseDuration(raw.Timeout); err == nil {
				cfg.Timeout = d
			}
		}
		if raw.ArtifactsDir != "" {
			cfg.ArtifactsDir = raw.ArtifactsDir
		}
		return nil
	}
	return nil
}

func defaultArtifactsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wdctl")
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "wdctl")
	}
	return filepath.Join(home, ".local", "share", "wdctl")
}
