package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}

	// OpenSubtitles validation (the provider itself is optional)
	for i, lang := range c.OpenSubtitles.Languages {
		if lang == "" {
			errs = append(errs, fmt.Sprintf("opensubtitles.languages[%d]: must not be empty", i))
		}
	}

	// Refresh validation
	if c.Refresh.Parallelism < 0 {
		errs = append(errs, fmt.Sprintf("refresh.parallelism: must be positive, got %d", c.Refresh.Parallelism))
	}
	if c.Refresh.ProbeTimeoutSeconds < 0 {
		errs = append(errs, fmt.Sprintf("refresh.probe_timeout_seconds: must be positive, got %d", c.Refresh.ProbeTimeoutSeconds))
	}

	return errs
}
