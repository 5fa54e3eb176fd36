package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"studyorg/internal/items/data"
)

// Config holds the unified application configuration
type Config struct {
	StudentName string
	Theme       string
	DefaultTab  string
	SeedDemo    bool
	LogDir      string
	LogLevel    string
	Items       data.Seed
	ConfigPath  string
}

// Settings represents the config file structure
type Settings struct {
	StudentName string    `yaml:"student_name,omitempty"`
	Theme       string    `yaml:"theme,omitempty"`
	DefaultTab  string    `yaml:"default_tab,omitempty"`
	SeedDemo    *bool     `yaml:"seed_demo,omitempty"`
	LogDir      string    `yaml:"log_dir,omitempty"`
	LogLevel    string    `yaml:"log_level,omitempty"`
	Items       data.Seed `yaml:"items,omitempty"`
}

// CLIFlags holds parsed CLI flags. Empty values do not override.
type CLIFlags struct {
	ConfigPath  string
	StudentName string
	Theme       string
	DefaultTab  string
	NoSeed      bool
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		StudentName: "Student",
		Theme:       ThemeDark,
		DefaultTab:  "assignments",
		SeedDemo:    true,
		LogLevel:    "info",
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = os.Getenv("STUDYORG_CONFIG")
	}
	if configPath == "" {
		p, err := getConfigPath()
		if err == nil {
			configPath = p
		}
	}
	cfg.ConfigPath = expandPath(configPath)

	if cfg.ConfigPath != "" {
		fileConfig, err := loadConfigFile(cfg.ConfigPath)
		switch {
		case err == nil:
			applySettings(cfg, fileConfig)
		case os.IsNotExist(errors.Cause(err)):
			// no file yet, defaults stand
		default:
			return nil, err
		}
	}

	// Priority 2: Environment variables override config file
	if v := os.Getenv("STUDYORG_NAME"); v != "" {
		cfg.StudentName = v
	}
	if v := os.Getenv("STUDYORG_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("STUDYORG_TAB"); v != "" {
		cfg.DefaultTab = v
	}
	if v := os.Getenv("STUDYORG_LOG_DIR"); v != "" {
		cfg.LogDir = expandPath(v)
	}
	if v := os.Getenv("STUDYORG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Priority 1: CLI flags override everything
	if flags.StudentName != "" {
		cfg.StudentName = flags.StudentName
	}
	if flags.Theme != "" {
		cfg.Theme = flags.Theme
	}
	if flags.DefaultTab != "" {
		cfg.DefaultTab = flags.DefaultTab
	}
	if flags.NoSeed {
		cfg.SeedDemo = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applySettings(cfg *Config, s *Settings) {
	if s.StudentName != "" {
		cfg.StudentName = s.StudentName
	}
	if s.Theme != "" {
		cfg.Theme = s.Theme
	}
	if s.DefaultTab != "" {
		cfg.DefaultTab = s.DefaultTab
	}
	if s.SeedDemo != nil {
		cfg.SeedDemo = *s.SeedDemo
	}
	if s.LogDir != "" {
		cfg.LogDir = expandPath(s.LogDir)
	}
	if s.LogLevel != "" {
		cfg.LogLevel = s.LogLevel
	}
	cfg.Items = s.Items
}

// Validate normalizes the theme and tab and rejects unknown values.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return errors.Errorf("unknown theme %q (want dark or light)", c.Theme)
	}
	if _, err := data.ParseCategory(c.DefaultTab); err != nil {
		return errors.Wrap(err, "default tab")
	}
	return nil
}

// Tab returns the configured starting category.
func (c *Config) Tab() data.Category {
	cat, err := data.ParseCategory(c.DefaultTab)
	if err != nil {
		return data.CategoryAssignment
	}
	return cat
}

// Seed returns the items to load at startup: the demonstration set when
// enabled, followed by any items from the config file.
func (c *Config) Seed() data.Seed {
	var seed data.Seed
	if c.SeedDemo {
		seed = data.DefaultSeed()
	}
	seed.Assignments = append(seed.Assignments, c.Items.Assignments...)
	seed.Exams = append(seed.Exams, c.Items.Exams...)
	seed.Grades = append(seed.Grades, c.Items.Grades...)
	return seed
}

// GetDefaultLogDir returns the default directory for debug.log
func GetDefaultLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "studyorg"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "studyorg", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config dir")
	}

	seedDemo := true
	settings := Settings{
		StudentName: "Student",
		Theme:       ThemeDark,
		DefaultTab:  "assignments",
		SeedDemo:    &seedDemo,
		LogLevel:    "info",
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
