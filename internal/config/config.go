// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/shesviral/viralkit/internal/logger"
)

// Config holds all configuration values for viralkit.
type Config struct {
	CatalogFile   string `mapstructure:"catalog_file" yaml:"catalog_file"`
	ExportDir     string `mapstructure:"export_dir" yaml:"export_dir"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	MCPPort       int    `mapstructure:"mcp_port" yaml:"mcp_port"`
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style"`
	Journal       bool   `mapstructure:"journal" yaml:"journal"`
}

const envPrefix = "VIRALKIT"

// keys lists every config key; each is bound to VIRALKIT_<KEY>.
var keys = []string{
	"catalog_file",
	"export_dir",
	"log_level",
	"log_file",
	"mcp_port",
	"markdown_style",
	"journal",
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"catalog":        "catalog_file",
	"export-dir":     "export_dir",
	"log-level":      "log_level",
	"log-file":       "log_file",
	"port":           "mcp_port",
	"markdown-style": "markdown_style",
}

// MarkdownStyles are the glamour styles accepted for markdown_style.
var MarkdownStyles = []string{"dark", "light", "notty", "ascii", "pink", "dracula", "tokyo-night"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CatalogFile:   "",
		ExportDir:     "exports",
		LogLevel:      "info",
		LogFile:       "",
		MCPPort:       0,
		MarkdownStyle: "dark",
		Journal:       true,
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// flags may be nil; only flags the user actually set override lower layers.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("viralkit")

	def := Default()
	v.SetDefault("catalog_file", def.CatalogFile)
	v.SetDefault("export_dir", def.ExportDir)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("mcp_port", def.MCPPort)
	v.SetDefault("markdown_style", def.MarkdownStyle)
	v.SetDefault("journal", def.Journal)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding --%s flag: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MCPPort < 0 || c.MCPPort > 65535 {
		return fmt.Errorf("mcp_port %d out of range 0-65535", c.MCPPort)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	valid := false
	for _, s := range MarkdownStyles {
		if c.MarkdownStyle == s {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("markdown_style %q not one of %s", c.MarkdownStyle, strings.Join(MarkdownStyles, ", "))
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path:
// $XDG_CONFIG_HOME/viralkit/viralkit.yml or ~/.config/viralkit/viralkit.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "viralkit", "viralkit.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "viralkit", "viralkit.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "viralkit.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
