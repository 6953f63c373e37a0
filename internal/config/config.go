// Package config loads settings shared by the command-line tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "KANA_"

// Config holds tool settings. Values come from an optional YAML file,
// then from KANA_* environment variables.
type Config struct {
	Charset    string `yaml:"charset" env:"CHARSET"`         // hiragana, katakana, all or rare
	Budget     int    `yaml:"budget" env:"BUDGET"`           // characters per word set, 0 = cover only
	Seed       uint64 `yaml:"seed" env:"SEED"`               // 0 = random
	CorpusPath string `yaml:"corpus_path" env:"CORPUS_PATH"` // CSV or SQLite word list
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Charset:  "all",
		Budget:   500,
		LogLevel: "info",
	}
}

// Load reads path, if not empty, over the defaults and applies the
// environment on top.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Budget < 0 {
		return cfg, fmt.Errorf("budget must not be negative, got %d", cfg.Budget)
	}
	return cfg, nil
}

// Logger builds a console logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	return zc.Build()
}
