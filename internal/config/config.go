package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables consulted by FromEnv.
const (
	EnvUsername      = "VSHELL_USERNAME"
	EnvHostname      = "VSHELL_HOSTNAME"
	EnvVFSPath       = "VSHELL_VFS"
	EnvStartupScript = "VSHELL_SCRIPT"
)

// SessionConfig holds the settings of one shell session.
type SessionConfig struct {
	Username      string `yaml:"username"`
	Hostname      string `yaml:"hostname"`
	VFSPath       string `yaml:"vfs_path"`
	StartupScript string `yaml:"startup_script,omitempty"`
}

// Load reads a yaml session configuration file.
func Load(configPath string) (*SessionConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg SessionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", vshell.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// FromEnv reads the VSHELL_* variables through getenv.
func FromEnv(getenv func(string) string) SessionConfig {
	return SessionConfig{
		Username:      getenv(EnvUsername),
		Hostname:      getenv(EnvHostname),
		VFSPath:       getenv(EnvVFSPath),
		StartupScript: getenv(EnvStartupScript),
	}
}

// Merge returns c with every non-empty field of override applied on top.
func (c SessionConfig) Merge(override SessionConfig) SessionConfig {
	if override.Username != "" {
		c.Username = override.Username
	}
	if override.Hostname != "" {
		c.Hostname = override.Hostname
	}
	if override.VFSPath != "" {
		c.VFSPath = override.VFSPath
	}
	if override.StartupScript != "" {
		c.StartupScript = override.StartupScript
	}
	return c
}

// Validate checks required fields. Errors wrap vshell.ErrInvalidConfig.
func (c SessionConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(c.Hostname) == "" {
		missing = append(missing, "hostname")
	}
	if strings.TrimSpace(c.VFSPath) == "" {
		missing = append(missing, "vfs_path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", vshell.ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// Resolve builds the effective configuration.
// Priority (highest to lowest): flags > environment (including .env) > config file > defaults.
//
// configPath names the yaml file; when explicit is false a missing file is
// not an error.
func Resolve(flags SessionConfig, configPath string, explicit bool) (SessionConfig, error) {
	_ = godotenv.Load()

	cfg := SessionConfig{Hostname: vshell.DefaultHostname}

	if configPath != "" {
		fileCfg, err := Load(configPath)
		switch {
		case err == nil:
			cfg = cfg.Merge(*fileCfg)
		case errors.Is(err, ErrConfigNotFound) && !explicit:
		case errors.Is(err, ErrConfigNotFound):
			return SessionConfig{}, fmt.Errorf("%w: %s", vshell.ErrInvalidConfig, configPath)
		default:
			return SessionConfig{}, err
		}
	}

	cfg = cfg.Merge(FromEnv(os.Getenv)).Merge(flags)
	if err := cfg.Validate(); err != nil {
		return SessionConfig{}, err
	}
	return cfg, nil
}
