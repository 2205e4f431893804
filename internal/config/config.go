// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Library       LibraryConfig       `toml:"library"`
	Database      DatabaseConfig      `toml:"database"`
	TMDB          TMDBConfig          `toml:"tmdb"`
	OpenSubtitles OpenSubtitlesConfig `toml:"opensubtitles"`
	Refresh       RefreshConfig       `toml:"refresh"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type LibraryConfig struct {
	MoviesDir    string `toml:"movies_dir"`
	PostersDir   string `toml:"posters_dir"`
	SubtitlesDir string `toml:"subtitles_dir"`
	MetadataPath string `toml:"metadata_path"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	Language string `toml:"language"`
}

type OpenSubtitlesConfig struct {
	APIKey    string   `toml:"api_key"`
	Languages []string `toml:"languages"`
}

type RefreshConfig struct {
	Parallelism         int    `toml:"parallelism"`
	ProbeTimeoutSeconds int    `toml:"probe_timeout_seconds"`
	FFprobePath         string `toml:"ffprobe_path"`
}

// ProbeTimeout returns the probe timeout as a duration.
func (r RefreshConfig) ProbeTimeout() time.Duration {
	return time.Duration(r.ProbeTimeoutSeconds) * time.Second
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Library.MoviesDir == "" {
		cfg.Library.MoviesDir = "movies"
	}
	if cfg.Library.PostersDir == "" {
		cfg.Library.PostersDir = "posters"
	}
	if cfg.Library.SubtitlesDir == "" {
		cfg.Library.SubtitlesDir = "subtitles"
	}
	if cfg.Library.MetadataPath == "" {
		cfg.Library.MetadataPath = "metadata.json"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/reelcat.db"
	}
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = "en"
	}
	if len(cfg.OpenSubtitles.Languages) == 0 {
		cfg.OpenSubtitles.Languages = []string{"en"}
	}
	if cfg.Refresh.Parallelism == 0 {
		cfg.Refresh.Parallelism = 4
	}
	if cfg.Refresh.ProbeTimeoutSeconds == 0 {
		cfg.Refresh.ProbeTimeoutSeconds = 30
	}
	if cfg.Refresh.FFprobePath == "" {
		cfg.Refresh.FFprobePath = "ffprobe"
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
