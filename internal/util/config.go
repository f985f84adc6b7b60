// Package util provides common utilities for netsnap.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Connectivity probe settings
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	LocalhostTarget string        `mapstructure:"localhost_target"`
	InternetTarget  string        `mapstructure:"internet_target"`

	// Snapshot defaults
	PerInterface       bool     `mapstructure:"per_interface"`
	ConnectionKinds    []string `mapstructure:"connection_kinds"`
	ConnectionFamilies []string `mapstructure:"connection_families"`

	// HTTP API settings
	WebPort        int           `mapstructure:"web_port"`
	RateLimit      int           `mapstructure:"rate_limit"`
	RateWindow     time.Duration `mapstructure:"rate_window"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".netsnap")

	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		LogFile:  filepath.Join(dataDir, "netsnap.log"),

		ProbeTimeout:    3 * time.Second,
		LocalhostTarget: "127.0.0.1",
		InternetTarget:  "www.google.com",

		PerInterface:       false,
		ConnectionKinds:    []string{"tcp", "udp"},
		ConnectionFamilies: []string{"ipv4", "ipv6"},

		WebPort:        5000,
		RateLimit:      5,
		RateWindow:     time.Minute,
		AllowedOrigins: []string{"http://127.0.0.1", "http://localhost"},
	}
}

// LoadConfig loads configuration from file and environment.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	// Ensure config directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(cfg.DataDir)
	viper.AddConfigPath(".")

	// Set defaults in viper
	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("log_file", cfg.LogFile)
	viper.SetDefault("probe_timeout", cfg.ProbeTimeout)
	viper.SetDefault("localhost_target", cfg.LocalhostTarget)
	viper.SetDefault("internet_target", cfg.InternetTarget)
	viper.SetDefault("per_interface", cfg.PerInterface)
	viper.SetDefault("connection_kinds", cfg.ConnectionKinds)
	viper.SetDefault("connection_families", cfg.ConnectionFamilies)
	viper.SetDefault("web_port", cfg.WebPort)
	viper.SetDefault("rate_limit", cfg.RateLimit)
	viper.SetDefault("rate_window", cfg.RateWindow)
	viper.SetDefault("allowed_origins", cfg.AllowedOrigins)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// EnsureDir ensures a directory exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
