package config

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.Port < 1 || c.UI.Port > 65535 {
		return fmt.Errorf("%w: %d (must be between 1 and 65535)", ErrInvalidPort, c.UI.Port)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidLogFormat, c.LogFormat, LogFormatText, LogFormatJSON)
	}

	return nil
}
