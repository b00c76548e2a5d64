package config

// Configuration loading and validation for IndustrialScanner-Lite

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frangelbarrera/IndustrialScanner-Lite/internal/errors"
)

// ModbusConfig controls the active read-only scanner.
type ModbusConfig struct {
	Port      int   `yaml:"port"`
	UnitID    uint8 `yaml:"unit_id"`
	TimeoutMS int   `yaml:"timeout_ms"`
	Workers   int   `yaml:"workers"`
}

// Timeout returns the per-probe timeout as a duration.
func (m ModbusConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutMS) * time.Millisecond
}

// S7Config controls the passive S7Comm analyzer.
type S7Config struct {
	Port uint16 `yaml:"port"`
}

// DNP3Config controls the passive DNP3 analyzer.
type DNP3Config struct {
	Port uint16 `yaml:"port"`
}

// Config is the top-level tool configuration.
type Config struct {
	ReportsDir string       `yaml:"reports_dir"`
	Modbus     ModbusConfig `yaml:"modbus"`
	S7         S7Config     `yaml:"s7"`
	DNP3       DNP3Config   `yaml:"dnp3"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ReportsDir: "reports",
		Modbus: ModbusConfig{
			Port:      502,
			UnitID:    1,
			TimeoutMS: 2000,
			Workers:   8,
		},
		S7:   S7Config{Port: 102},
		DNP3: DNP3Config{Port: 20000},
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("read config: %w", err), path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse config: %w", err), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}
	return cfg, nil
}

// Validate checks all fields for usable values.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return fmt.Errorf("reports_dir must not be empty")
	}
	if c.Modbus.Port < 1 || c.Modbus.Port > 65535 {
		return fmt.Errorf("modbus.port %d out of range 1-65535", c.Modbus.Port)
	}
	if c.Modbus.TimeoutMS <= 0 {
		return fmt.Errorf("modbus.timeout_ms must be positive, got %d", c.Modbus.TimeoutMS)
	}
	if c.Modbus.Workers < 1 {
		return fmt.Errorf("modbus.workers must be at least 1, got %d", c.Modbus.Workers)
	}
	if c.S7.Port == 0 {
		return fmt.Errorf("s7.port must not be zero")
	}
	if c.DNP3.Port == 0 {
		return fmt.Errorf("dnp3.port must not be zero")
	}
	return nil
}
