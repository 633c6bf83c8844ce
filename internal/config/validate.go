package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"bibmerge/internal/render"
	"bibmerge/internal/textutil"
)

// ErrInvalidThreshold is returned when the similarity threshold is outside [0, 1].
var ErrInvalidThreshold = errors.New("Threshold must be a valid number between 0 and 1 (e.g. 0.75)")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMerge() error {
	if err := ValidateThreshold(c.Merge.SimilarityThreshold); err != nil {
		return fmt.Errorf("merge.similarity_threshold: %w", err)
	}
	if _, err := textutil.ParseAlgorithm(c.Merge.Algorithm); err != nil {
		return fmt.Errorf("merge.algorithm: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Output.Path != "" {
		if err := ValidateOutputPath(c.Output.Path); err != nil {
			return fmt.Errorf("output.path: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// ValidateThreshold reports whether value is a usable similarity threshold.
func ValidateThreshold(value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return ErrInvalidThreshold
	}
	return nil
}

// ValidateOutputPath requires the .bib extension on an output file.
func ValidateOutputPath(path string) error {
	if !strings.EqualFold(filepath.Ext(path), OutputExtension) {
		return fmt.Errorf("output file %q must have the %s extension", path, OutputExtension)
	}
	return nil
}
