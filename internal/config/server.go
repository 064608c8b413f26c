package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds settings for the HTTP server. Values come from an
// optional YAML file overlaid on the defaults; flags may override the
// address fields afterwards.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	Environment     string        `yaml:"environment"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	MaxUploadSizeMB int64         `yaml:"max_upload_size_mb"`
	JobTTL          time.Duration `yaml:"job_ttl"`
	StaticDir       string        `yaml:"static_dir"`
}

// DefaultServerConfig returns the server defaults used when no config
// file is given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:            "0.0.0.0",
		Port:            "8080",
		Environment:     "development",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    10 * time.Minute,
		IdleTimeout:     2 * time.Minute,
		MaxUploadSizeMB: 512,
		JobTTL:          time.Hour,
		StaticDir:       "web/static",
	}
}

// serverConfigFile mirrors ServerConfig with durations as strings so
// values like "30s" can be written in YAML.
type serverConfigFile struct {
	Host            *string `yaml:"host"`
	Port            *string `yaml:"port"`
	Environment     *string `yaml:"environment"`
	ReadTimeout     *string `yaml:"read_timeout"`
	WriteTimeout    *string `yaml:"write_timeout"`
	IdleTimeout     *string `yaml:"idle_timeout"`
	MaxUploadSizeMB *int64  `yaml:"max_upload_size_mb"`
	JobTTL          *string `yaml:"job_ttl"`
	StaticDir       *string `yaml:"static_dir"`
}

// LoadServerConfig reads a YAML config file and overlays it on the
// defaults. An empty path returns the defaults unchanged.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read server config %s: %w", path, err)
	}

	var file serverConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse server config %s: %w", path, err)
	}

	if file.Host != nil {
		cfg.Host = *file.Host
	}
	if file.Port != nil {
		cfg.Port = *file.Port
	}
	if file.Environment != nil {
		cfg.Environment = *file.Environment
	}
	if file.MaxUploadSizeMB != nil {
		cfg.MaxUploadSizeMB = *file.MaxUploadSizeMB
	}
	if file.StaticDir != nil {
		cfg.StaticDir = *file.StaticDir
	}

	durations := []struct {
		name string
		raw  *string
		dst  *time.Duration
	}{
		{"read_timeout", file.ReadTimeout, &cfg.ReadTimeout},
		{"write_timeout", file.WriteTimeout, &cfg.WriteTimeout},
		{"idle_timeout", file.IdleTimeout, &cfg.IdleTimeout},
		{"job_ttl", file.JobTTL, &cfg.JobTTL},
	}
	for _, d := range durations {
		if d.raw == nil {
			continue
		}
		parsed, err := time.ParseDuration(*d.raw)
		if err != nil {
			return cfg, fmt.Errorf("parse server config %s: invalid %s: %w", path, d.name, err)
		}
		*d.dst = parsed
	}

	if cfg.MaxUploadSizeMB <= 0 {
		return cfg, fmt.Errorf("max_upload_size_mb must be positive, got %d", cfg.MaxUploadSizeMB)
	}

	return cfg, nil
}
