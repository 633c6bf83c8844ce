package config

import (
	"fmt"
	"os"
	"strings"

	"bibmerge/internal/render"
	"bibmerge/internal/textutil"
)

func (c *Config) normalize() error {
	c.normalizeMerge()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeMerge() {
	c.Merge.Algorithm = strings.TrimSpace(c.Merge.Algorithm)
	if c.Merge.Algorithm == "" {
		c.Merge.Algorithm = defaultAlgorithm
	}
	if alg, err := textutil.ParseAlgorithm(c.Merge.Algorithm); err == nil {
		c.Merge.Algorithm = alg.String()
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.TrimSpace(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if format, err := render.ParseFormat(c.Output.Format); err == nil {
		c.Output.Format = format.String()
	}
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path != "" {
		var err error
		if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
			return fmt.Errorf("output.path: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(logLevelEnv); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
