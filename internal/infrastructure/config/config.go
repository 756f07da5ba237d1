package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr   string `yaml:"http_addr"`
	QRCodeSize int    `yaml:"qr_code_size"`
	LogLevel   string `yaml:"log_level"`
}

// Load builds the configuration from an optional YAML file (CONFIG_FILE)
// with environment variables taking precedence.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:   ":8080",
		QRCodeSize: 256,
		LogLevel:   "info",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("QR_CODE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid QR_CODE_SIZE: %w", err)
		}
		cfg.QRCodeSize = size
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
