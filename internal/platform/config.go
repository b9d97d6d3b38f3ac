package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied on top of the config file.
const (
	EnvFileName = "NOTEKEEP_FILE"
	EnvLenient  = "NOTEKEEP_LENIENT"
)

// FileConfig mirrors the optional config.yaml next to the notes file.
// Zero values mean "not set"; precedence is flag > env > file > default.
type FileConfig struct {
	DataDir  string `yaml:"data_dir"`
	File     string `yaml:"file"`
	Lenient  bool   `yaml:"lenient"`
	LogLevel string `yaml:"log_level"`
}

// LoadConfig reads config.yaml from the given directory and applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func LoadConfig(dir string) (*FileConfig, error) {
	cfg := &FileConfig{}

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *FileConfig) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvFileName); v != "" {
		c.File = v
	}
	if v := os.Getenv(EnvLenient); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Lenient = b
		}
	}
}

// Options translates the file config into functional options.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.File != "" {
		opts = append(opts, WithFileName(c.File))
	}
	if c.Lenient {
		opts = append(opts, WithLenient(true))
	}
	return opts
}
