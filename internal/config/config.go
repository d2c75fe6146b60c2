package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/daykeep/daykeep/internal/constants"
)

const DefaultConfigFileName = "config.toml"

// Config is the app-level configuration file. Runtime behavior (wake
// time, lead minutes, notification gate) lives in the document's
// settings; this file only covers where and how the document is kept.
type Config struct {
	DataPath      string `toml:"data_path"`      // sqlite kv medium path
	QuotaBytes    int64  `toml:"quota_bytes"`    // storage quota; 0 selects the default
	Debug         bool   `toml:"debug"`          // verbose logging
	RemoteEnabled bool   `toml:"remote_enabled"` // mirror task writes to the remote store
	SweepSpec     string `toml:"sweep_spec"`     // cron spec for the watch daemon's maintenance sweep
}

// DefaultDir returns the daykeep config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, constants.AppName), nil
}

// LoadOrCreate reads the config file at path, writing one with defaults
// first if it does not exist.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DataPath == "" {
		cfg.DataPath = filepath.Join(filepath.Dir(path), "daykeep.db")
	}
	if cfg.SweepSpec == "" {
		cfg.SweepSpec = "@every 1m"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DataPath:  filepath.Join(dir, "daykeep.db"),
		SweepSpec: "@every 1m",
	}
}
