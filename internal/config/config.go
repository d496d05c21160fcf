package config

import (
	"errors"
	"path/filepath"
)

// Default file locations, relative to Dir.
const (
	DefaultInput  = "getAllChannel.json"
	DefaultOutput = "../tv.m3u"
)

var (
	ErrMissingInput  = errors.New("config: input path is required")
	ErrMissingOutput = errors.New("config: output path is required")
	ErrSamePath      = errors.New("config: input and output resolve to the same file")
)

// Config holds the converter settings: where to read the channel JSON and
// where to write the playlist.
type Config struct {
	Dir    string `yaml:"dir"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Debug  bool   `yaml:"debug"`
}

// Default returns the stock configuration: getAllChannel.json in the current
// directory, written to ../tv.m3u.
func Default() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// InputPath returns Input resolved against Dir.
func (c *Config) InputPath() string {
	return c.resolve(c.Input)
}

// OutputPath returns Output resolved against Dir.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

func (c *Config) resolve(p string) string {
	if c.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Validate checks that both paths are set and distinct.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	in, errIn := filepath.Abs(c.InputPath())
	out, errOut := filepath.Abs(c.OutputPath())
	if errIn == nil && errOut == nil && in == out {
		return ErrSamePath
	}
	return nil
}
