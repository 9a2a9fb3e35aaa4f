package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/faizmokh/ij/internal/logging"
)

// DefaultEditor is used for `ij -e` when neither EDITOR nor the config file name one.
const DefaultEditor = "nano"

// LookupFunc reports the value of an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Config holds everything ij resolves once per invocation.
type Config struct {
	// LogDir overrides the log directory. Empty means ~/.ij_logs.
	LogDir   string `yaml:"log_dir" mapstructure:"log_dir"`
	Editor   string `yaml:"editor" mapstructure:"editor"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = []struct {
	key string
	env string
}{
	{key: "log_dir", env: "IJ_LOG_DIR"},
	{key: "editor", env: "EDITOR"},
	{key: "log_level", env: "IJ_LOG_LEVEL"},
}

// Load merges defaults, the optional YAML config file and environment
// overrides, in increasing order of precedence. Environment access goes
// through lookup so callers control it; nil means os.LookupEnv.
func Load(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("log_dir", "")
	v.SetDefault("editor", DefaultEditor)
	v.SetDefault("log_level", logging.DefaultLevel)

	path, explicit := configPath(lookup)
	if path != "" {
		if err := readConfigFile(v, path, explicit); err != nil {
			return Config{}, err
		}
	}

	for _, b := range envBindings {
		if val, ok := lookup(b.env); ok && strings.TrimSpace(val) != "" {
			v.Set(b.key, strings.TrimSpace(val))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if strings.TrimSpace(cfg.Editor) == "" {
		cfg.Editor = DefaultEditor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// configPath picks the config file location. explicit is true when the user
// named the file through IJ_CONFIG, in which case it must exist.
func configPath(lookup LookupFunc) (path string, explicit bool) {
	if p, ok := lookup("IJ_CONFIG"); ok && strings.TrimSpace(p) != "" {
		return strings.TrimSpace(p), true
	}
	if xdg, ok := lookup("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "ij", "config.yaml"), false
	}
	if home, ok := lookup("HOME"); ok && home != "" {
		return filepath.Join(home, ".config", "ij", "config.yaml"), false
	}
	return "", false
}

func readConfigFile(v *viper.Viper, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
