package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000, LogLevel: "info"},
		TMDB:   TMDBConfig{APIKey: "abc123", Language: "en"},
		OpenSubtitles: OpenSubtitlesConfig{
			Languages: []string{"en"},
		},
		Refresh: RefreshConfig{Parallelism: 4, ProbeTimeoutSeconds: 30},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_MissingTMDBKey(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.APIKey = ""

	errs := cfg.Validate()
	assert.Contains(t, errs, "tmdb.api_key: required")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "server.port")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "server.log_level")
}

func TestValidate_EmptyLanguage(t *testing.T) {
	cfg := validConfig()
	cfg.OpenSubtitles.Languages = []string{"en", ""}

	errs := cfg.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "opensubtitles.languages[1]")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.APIKey = ""
	cfg.Server.Port = -1
	cfg.Server.LogLevel = "loud"

	errs := cfg.Validate()
	assert.Len(t, errs, 3)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Path: "config.toml", Errors: []string{"tmdb.api_key: required"}}
	assert.True(t, err.HasErrors())
	assert.Contains(t, err.Error(), "validation failed:")
	assert.Contains(t, err.Error(), "tmdb.api_key: required")

	empty := &ConfigError{}
	assert.False(t, empty.HasErrors())
	assert.Empty(t, empty.Error())
}
