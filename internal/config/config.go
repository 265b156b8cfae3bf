package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskmaster.db"
	DefaultLogName        = "taskmaster.log"
	DefaultStorageKey     = "todos"

	// MemoryDBPath keeps tasks for the current session only.
	MemoryDBPath = ":memory:"

	// DefaultStorageQuota mirrors the usual per-origin local storage limit.
	DefaultStorageQuota = 5 * 1024 * 1024

	envConfigPath = "TASKMASTER_CONFIG"
	appDirName    = "taskmaster"
)

type Keymap struct {
	Quit            string `toml:"quit"`
	Add             string `toml:"add"`
	Up              string `toml:"up"`
	Down            string `toml:"down"`
	Toggle          string `toml:"toggle"`
	Delete          string `toml:"delete"`
	Detail          string `toml:"detail"`
	Confirm         string `toml:"confirm"`
	Cancel          string `toml:"cancel"`
	Edit            string `toml:"edit"`
	NextField       string `toml:"next_field"`
	PrevField       string `toml:"prev_field"`
	FilterAll       string `toml:"filter_all"`
	FilterActive    string `toml:"filter_active"`
	FilterCompleted string `toml:"filter_completed"`
	CycleFilter     string `toml:"cycle_filter"`
	Theme           string `toml:"theme"`
	Help            string `toml:"help"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	StorageKey    string `toml:"storage_key"`
	StorageQuota  int64  `toml:"storage_quota_bytes"`
	DefaultFilter string `toml:"default_filter"`
	Theme         string `toml:"theme"`
	ConfirmDelete bool   `toml:"confirm_delete"`
	LogPath       string `toml:"log_path"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TASKMASTER_CONFIG when set, otherwise
// config.toml inside the user's config directory. It falls back to the
// working directory when no config directory can be determined.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))
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
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated settings. Keys are not validated; an
// unbound key simply never matches.
func (c Config) Validate() error {
	switch strings.ToLower(c.DefaultFilter) {
	case "all", "active", "completed":
	default:
		return fmt.Errorf("default_filter must be all, active or completed, got %q", c.DefaultFilter)
	}
	switch strings.ToLower(c.Theme) {
	case "light", "dark":
	default:
		return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
	}
	if c.StorageQuota < 0 {
		return fmt.Errorf("storage_quota_bytes must not be negative")
	}
	return nil
}

func (c *Config) fillDefaults(dir string) {
	def := Default(dir)
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.StorageKey == "" {
		c.StorageKey = def.StorageKey
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = def.DefaultFilter
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LogPath == "" {
		c.LogPath = def.LogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in settings with files placed under dir.
func Default(dir string) Config {
	return Config{
		DBPath:        filepath.Join(dir, DefaultDBName),
		StorageKey:    DefaultStorageKey,
		StorageQuota:  DefaultStorageQuota,
		DefaultFilter: "all",
		Theme:         "light",
		ConfirmDelete: true,
		LogPath:       filepath.Join(dir, DefaultLogName),
		LogLevel:      "info",
		Keys: Keymap{
			Quit:            "q",
			Add:             "a",
			Up:              "k",
			Down:            "j",
			Toggle:          " ",
			Delete:          "d",
			Detail:          "enter",
			Confirm:         "enter",
			Cancel:          "esc",
			Edit:            "e",
			NextField:       "tab",
			PrevField:       "shift+tab",
			FilterAll:       "1",
			FilterActive:    "2",
			FilterCompleted: "3",
			CycleFilter:     "f",
			Theme:           "t",
			Help:            "?",
		},
	}
}
