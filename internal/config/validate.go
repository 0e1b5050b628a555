package config

import (
	"errors"
	"fmt"
	"strings"

	"montage/internal/preset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEngine() error {
	if c.Engine.Program == "" {
		return errors.New("engine.program must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.CodecPreset != "" {
		if _, ok := preset.LookupCodec(c.Output.CodecPreset); !ok {
			return fmt.Errorf("output.codec_preset %q is unknown (known: %s)",
				c.Output.CodecPreset, strings.Join(preset.CodecNames(), ", "))
		}
	}
	if c.Output.Platform != "" {
		if _, ok := preset.LookupPlatform(c.Output.Platform); !ok {
			return fmt.Errorf("output.platform %q is unknown (known: %s)",
				c.Output.Platform, strings.Join(preset.PlatformNames(), ", "))
		}
	}
	if c.Output.FrameRate < 0 {
		return errors.New("output.frame_rate must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is invalid (use debug, info, warn, or error)", c.Logging.Level)
	}
}
