package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeEngine()
	c.normalizeOutput()
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeEngine() {
	c.Engine.Program = strings.TrimSpace(c.Engine.Program)
	if c.Engine.Program == "" {
		c.Engine.Program = defaultEngineProgram
	}
	c.Engine.HWAccel = strings.ToLower(strings.TrimSpace(c.Engine.HWAccel))
	if c.Engine.HWAccel == "" {
		c.Engine.HWAccel = defaultEngineHWAccel
	}
}

func (c *Config) normalizeOutput() {
	c.Output.CodecPreset = strings.ToLower(strings.TrimSpace(c.Output.CodecPreset))
	c.Output.Platform = strings.ToLower(strings.TrimSpace(c.Output.Platform))
}

func (c *Config) normalizeLibrary() error {
	if strings.TrimSpace(c.Library.Path) == "" {
		c.Library.Path = defaultLibraryPath
	}
	var err error
	if c.Library.Path, err = expandPath(c.Library.Path); err != nil {
		return fmt.Errorf("library.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
