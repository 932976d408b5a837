// Package config provides configuration for the assistant server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration. It is built once at startup
// and never mutated afterwards.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Tool server settings
	ToolServerURL string
	ToolTimeout   time.Duration

	// LLM settings. Model is pinned per deployment, not caller-settable.
	OpenAIBaseURL string
	OpenAIAPIKey  string
	Model         string
	LLMTimeout    time.Duration

	// Speech synthesis settings
	TTSBaseURL     string
	TTSAPIKey      string
	TTSTimeout     time.Duration
	DefaultVoiceID string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnvInt("HTTP_PORT", 3001),
		DatabaseURL:    getEnv("DATABASE_URL", "file:quill.db?cache=shared&mode=rwc"),
		ToolServerURL:  getEnv("TOOL_SERVER_URL", "http://localhost:8008"),
		ToolTimeout:    time.Duration(getEnvInt("TOOL_TIMEOUT_MS", 60000)) * time.Millisecond,
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		TTSBaseURL:     getEnv("TTS_BASE_URL", "https://api.elevenlabs.io"),
		TTSAPIKey:      getEnv("TTS_API_KEY", ""),
		TTSTimeout:     time.Duration(getEnvInt("TTS_TIMEOUT_MS", 30000)) * time.Millisecond,
		DefaultVoiceID: getEnv("TTS_DEFAULT_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
