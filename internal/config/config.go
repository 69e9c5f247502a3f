// Package config resolves where tasks are stored and the CLI defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	bitserrors "github.com/abatilo/tasks/internal/errors"
	"github.com/abatilo/tasks/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "tasks"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"

	// DataFile is the default task filename inside the data directory.
	DataFile = "tasks.json"

	// FileEnv overrides the task file path.
	FileEnv = "TASKS_FILE"
)

// Config holds the resolved settings.
type Config struct {
	// File is the task file path.
	File string

	// DefaultPriority is used when add is called without --priority.
	DefaultPriority task.Priority

	// Lock enables the single-instance file lock.
	Lock bool
}

// fileConfig is the YAML shape of config.yaml.
type fileConfig struct {
	File            string `yaml:"file"`
	DefaultPriority string `yaml:"default_priority"`
	Lock            *bool  `yaml:"lock"`
}

// Load resolves the configuration. Precedence for the task file is
// fileFlag, then $TASKS_FILE, then config.yaml, then the XDG data dir.
// An empty configPath means DefaultConfigPath. A missing config file is fine.
func Load(configPath, fileFlag string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	cfg := &Config{
		DefaultPriority: task.PriorityMedium,
		Lock:            true,
	}

	fc, err := readFile(configPath)
	if err != nil {
		return nil, err
	}

	if fc.DefaultPriority != "" {
		p, ok := task.ParsePriority(fc.DefaultPriority)
		if !ok {
			return nil, bitserrors.ConfigError{
				Path: configPath,
				Err:  bitserrors.InvalidPriorityError{Value: fc.DefaultPriority},
			}
		}
		cfg.DefaultPriority = p
	}
	if fc.Lock != nil {
		cfg.Lock = *fc.Lock
	}

	switch {
	case fileFlag != "":
		cfg.File = fileFlag
	case os.Getenv(FileEnv) != "":
		cfg.File = os.Getenv(FileEnv)
	case fc.File != "":
		cfg.File = expandHome(fc.File)
	default:
		cfg.File = filepath.Join(DefaultDataDir(), DataFile)
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, bitserrors.ConfigError{Path: path, Err: err}
	}

	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fc, bitserrors.ConfigError{Path: path, Err: err}
	}
	return fc, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tasks/config.yaml or
// $HOME/.config/tasks/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), AppName, ConfigFile)
}

// DefaultDataDir returns $XDG_DATA_HOME/tasks or $HOME/.local/share/tasks.
func DefaultDataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), AppName)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return "."
	}
	return filepath.Join(home, fallback)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
