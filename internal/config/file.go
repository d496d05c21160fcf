package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Dir    *string `yaml:"dir"`
	Input  *string `yaml:"input"`
	Output *string `yaml:"output"`
	Debug  *bool   `yaml:"debug"`
}

// LoadFromFile loads config from a YAML file. Keys absent from the file keep
// their defaults; unknown keys are rejected.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c := Default()
	if f.Dir != nil {
		c.Dir = *f.Dir
	}
	if f.Input != nil {
		c.Input = *f.Input
	}
	if f.Output != nil {
		c.Output = *f.Output
	}
	if f.Debug != nil {
		c.Debug = *f.Debug
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
