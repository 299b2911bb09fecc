package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPServer HTTPServer `yaml:"http_server"`
	Logger     Logger     `yaml:"logger"`
	Seed       Seed       `yaml:"seed"`
	Metrics    Metrics    `yaml:"metrics"`
}

type HTTPServer struct {
	Addr    string   `yaml:"addr"`
	Timeout Duration `yaml:"timeout"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Seed points at an optional JSON file of initial dishes and orders loaded
// into the in-memory stores at startup.
type Seed struct {
	Path string `yaml:"path"`
}

type Metrics struct {
	Namespace string `yaml:"namespace"`
}

// Duration parses yaml values like "5s" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func Default() *Config {
	return &Config{
		HTTPServer: HTTPServer{
			Addr:    ":8080",
			Timeout: Duration(5 * time.Second),
		},
		Logger:  Logger{Level: "INFO"},
		Metrics: Metrics{Namespace: "grubhouse"},
	}
}

// Load reads the config file at path, overlaying it onto defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}
