package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".nbforge.yml"

// Config is the top-level nbforge configuration.
type Config struct {
	Output OutputConfig `yaml:"output" toml:"output"`
	Kernel KernelConfig `yaml:"kernel" toml:"kernel"`
	Lint   LintConfig   `yaml:"lint" toml:"lint"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// OutputConfig controls where and how the notebook is written.
type OutputConfig struct {
	Path string `yaml:"path" toml:"path"` // destination file, must end in .ipynb
	Mode string `yaml:"mode" toml:"mode"` // octal permission, e.g. "0644"
}

// FileMode parses Mode as an octal permission.
func (o OutputConfig) FileMode() (os.FileMode, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(o.Mode, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("output.mode %q: %w", o.Mode, err)
	}
	return os.FileMode(v), nil
}

// KernelConfig is recorded in the notebook metadata.
type KernelConfig struct {
	Name        string `yaml:"name" toml:"name"`
	DisplayName string `yaml:"display_name" toml:"display_name"`
	Language    string `yaml:"language" toml:"language"`
}

// LintConfig controls the pre-write block checks.
type LintConfig struct {
	Enabled bool     `yaml:"enabled" toml:"enabled"`
	Checks  []string `yaml:"checks" toml:"checks"` // empty = all default-enabled checks
	Skip    []string `yaml:"skip" toml:"skip"`
}

// LogConfig selects the diagnostic log encoder.
type LogConfig struct {
	Mode string `yaml:"mode" toml:"mode"` // dev | prod
}

// Load reads configuration from a YAML or TOML file (chosen by extension).
// If path is empty, it tries the default file and returns defaults when that
// file doesn't exist. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		Output: OutputConfig{
			Path: "blood_pressure_exercise_with_answers.ipynb",
			Mode: "0644",
		},
		Kernel: KernelConfig{
			Name:        "python3",
			DisplayName: "Python 3",
			Language:    "python",
		},
		Lint: LintConfig{Enabled: true},
		Log:  LogConfig{Mode: "dev"},
	}
}
