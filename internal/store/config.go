package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	configFileName = "config.toml"
	localDirName   = ".todo"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Dir holds the state slot (file or sqlite backend).
	Dir string `toml:"dir" json:"dir,omitempty"`
	// Backend is one of: file|sqlite|memory
	Backend string `toml:"backend" json:"backend,omitempty"`
	// Key is the slot key; defaults to StateKey.
	Key string `toml:"key" json:"key,omitempty"`
	// Format is the CLI output format: json|yaml|text
	Format string `toml:"format" json:"format,omitempty"`

	LogLevel string `toml:"log_level" json:"logLevel,omitempty"`
	// LogFile enables a rotating log file instead of stderr.
	LogFile string `toml:"log_file" json:"logFile,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Backend:  BackendFile,
		Key:      StateKey,
		Format:   "json",
		LogLevel: "warn",
	}
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.todo).
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, localDirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig returns defaults overlaid with the config file, if any.
// A missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from TODO_* environment variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, k string) {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			*dst = v
		}
	}
	set(&c.Dir, "TODO_DIR")
	set(&c.Backend, "TODO_BACKEND")
	set(&c.Key, "TODO_KEY")
	set(&c.Format, "TODO_FORMAT")
	set(&c.LogLevel, "TODO_LOG_LEVEL")
	set(&c.LogFile, "TODO_LOG_FILE")
}

// ResolveDir fills Dir when unset: a .todo directory found from the working
// directory upwards, else the config dir.
func (c *Config) ResolveDir() error {
	if strings.TrimSpace(c.Dir) != "" {
		return nil
	}
	if cwd, err := os.Getwd(); err == nil {
		if found, ok := DiscoverDir(cwd); ok {
			c.Dir = found
			return nil
		}
	}
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	c.Dir = dir
	return nil
}

// DiscoverDir walks up from start looking for a .todo directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, localDirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
