package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

type config struct {
	// Verbosity is handed to commonlog; higher logs more.
	Verbosity int `yaml:"verbosity"`
	// LogFile receives the log instead of stderr when set.
	LogFile string `yaml:"log_file"`
}

// loadConfig reads a YAML config file. An empty path or an empty file gives
// the defaults.
func loadConfig(fs billy.Filesystem, path string) (*config, error) {
	cfg := &config{}
	if path == "" {
		return cfg, nil
	}

	p, err := absPath(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	file, err := fs.Open(p)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

func (c *config) validate() error {
	if c.Verbosity < -4 || c.Verbosity > 4 {
		return fmt.Errorf("verbosity must be between -4 and 4, but got %d", c.Verbosity)
	}

	return nil
}
