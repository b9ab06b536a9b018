package main

import "github.com/pkg/errors"

const (
	defaultImagePath = "sample_image.jpg"
	defaultOutPath   = "imgcoords.txt"
)

// Config describes a single conversion run.
type Config struct {
	ImagePath string
	OutPath   string
	Dimension int
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		ImagePath: defaultImagePath,
		OutPath:   defaultOutPath,
		Dimension: DefaultDimension,
	}
}

// Validate ensures all parts of the config are valid.
func (c Config) Validate() error {
	if c.ImagePath == "" {
		return errors.New("image path is required")
	}
	if c.OutPath == "" {
		return errors.New("output path is required")
	}
	if c.Dimension < 2 {
		return errors.Wrapf(ErrDimension, "got %d", c.Dimension)
	}
	return nil
}

// Lines is the number of lines a run over a w by h image writes.
func (c Config) Lines(w, h int) int {
	return 2*c.Dimension + w*h
}
