package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aki/dircontents/internal/filemanager"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory name under the user config directory
	AppDir = "dircontents"
	// ConfigFile is the filename of the configuration
	ConfigFile = "config.yaml"
)

// ErrInvalid is returned when a configuration file fails validation
type ErrInvalid struct {
	Path string
	Err  error
}

func (e ErrInvalid) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e ErrInvalid) Unwrap() error {
	return e.Err
}

// Manager loads and stores the configuration file
type Manager struct {
	configPath string
	files      *filemanager.Manager[Config]
}

// NewManager creates a manager for the file at configPath
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		files:      filemanager.NewManager[Config](),
	}
}

// DefaultPath returns the per-user configuration path,
// e.g. ~/.config/dircontents/config.yaml on Linux
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFile), nil
}

// GetConfigPath returns the configuration file path
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Exists reports whether the configuration file is present
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.configPath)
	return err == nil
}

// Load reads the configuration. A missing or empty file yields the
// defaults; keys absent from the file keep their default values.
func (m *Manager) Load(ctx context.Context) (*Config, error) {
	data, err := m.files.ReadBytes(ctx, m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	if err := ValidateYAML(data); err != nil {
		return nil, ErrInvalid{Path: m.configPath, Err: err}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ErrInvalid{Path: m.configPath, Err: err}
	}
	applyDefaults(cfg)

	return cfg, nil
}

// Save writes cfg, replacing any existing file
func (m *Manager) Save(ctx context.Context, cfg *Config) error {
	if err := m.files.Write(ctx, m.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Init writes the default configuration. It fails with
// filemanager.ErrExists unless force is set.
func (m *Manager) Init(ctx context.Context, force bool) error {
	if force {
		return m.Save(ctx, DefaultConfig())
	}
	if err := m.files.Create(ctx, m.configPath, DefaultConfig()); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	return nil
}
