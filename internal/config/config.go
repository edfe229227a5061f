package config

import (
	"os"
	"strconv"
)

// Config holds all tracelens CLI configuration.
type Config struct {
	Source   SourceConfig
	Engine   EngineConfig
	Output   OutputConfig
	LogLevel string
}

// SourceConfig selects where the capture comes from.
type SourceConfig struct {
	Provider string // "file" or "stdin"
	Path     string // capture path for the file source
}

// EngineConfig bounds the normalization window, in microseconds on the
// trace clock. Zeroes mean the whole trace.
type EngineConfig struct {
	StartTime int64
	EndTime   int64
}

// OutputConfig selects the request-list destination.
type OutputConfig struct {
	Format string // "stdout" or "file"
	Path   string // output path for the file format
	Pretty bool   // indent stdout JSON
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Provider: getenv("TRACELENS_SOURCE", "file"),
			Path:     os.Getenv("TRACELENS_CAPTURE"),
		},
		Engine: EngineConfig{
			StartTime: getenvInt64("TRACELENS_START_TIME", 0),
			EndTime:   getenvInt64("TRACELENS_END_TIME", 0),
		},
		Output: OutputConfig{
			Format: getenv("TRACELENS_OUTPUT", "stdout"),
			Path:   os.Getenv("TRACELENS_OUTPUT_PATH"),
			Pretty: getenvBool("TRACELENS_PRETTY", false),
		},
		LogLevel: getenv("TRACELENS_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
