package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data sources
const (
	SourceAPI     = "api"
	SourceProfile = "profile"
)

// EnvPrefix prefixes every environment override, e.g. HIDENB_JOPLIN_TOKEN
const EnvPrefix = "HIDENB"

// Config holds the resolved settings for every entrypoint
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	Source   string `mapstructure:"source"`
	Joplin   Joplin `mapstructure:"joplin"`
}

// Joplin locates the desktop app
type Joplin struct {
	APIURL     string `mapstructure:"api_url"`
	Token      string `mapstructure:"token"`
	ProfileDir string `mapstructure:"profile_dir"`
}

// Load reads cfgFile, or config.yaml from the default config directory when
// cfgFile is empty, then applies .env and HIDENB_* overrides.
// A missing default config file is not an error.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, _ := os.UserHomeDir()
	v.SetDefault("data_dir", filepath.Join(dataHome(home), "hidenb"))
	v.SetDefault("log_level", "info")
	v.SetDefault("source", SourceAPI)
	v.SetDefault("joplin.api_url", "http://127.0.0.1:41184")
	v.SetDefault("joplin.token", "")
	v.SetDefault("joplin.profile_dir", filepath.Join(home, ".config", "joplin-desktop"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir, home)
	cfg.Joplin.ProfileDir = expandHome(cfg.Joplin.ProfileDir, home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected data source can be reached
func (c *Config) Validate() error {
	switch c.Source {
	case SourceAPI:
		if c.Joplin.Token == "" {
			return fmt.Errorf("joplin.token is required when source is %q (set %s_JOPLIN_TOKEN)", SourceAPI, EnvPrefix)
		}
	case SourceProfile:
		if c.Joplin.ProfileDir == "" {
			return fmt.Errorf("joplin.profile_dir is required when source is %q", SourceProfile)
		}
	default:
		return fmt.Errorf("unknown source %q: expected %q or %q", c.Source, SourceAPI, SourceProfile)
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/hidenb, defaulting to ~/.config/hidenb
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hidenb")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hidenb")
}

func dataHome(home string) string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(home, ".local", "share")
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
