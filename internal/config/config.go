package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL      string
	LLMModelName    string
	LLMAPIKey       string
	Temperature     float64
	ArxivMaxDocs    int
	OutputDir       string
	MemoryFile      string
	MemoryMaxItems  int
	MemoryRetrieveK int
	LocalDocDir     string
	DBPath          string
	APIPort         string
	FastMode        bool
	LogLevel        slog.Level
	LogFormat       string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try current directory first, then walk up to find the project root.
	_ = godotenv.Load()
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:   getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModelName: getEnv("LLM_MODEL", "Llama-3.1-8B-Instruct"),
		LLMAPIKey:    getEnv("LLM_API_KEY", "dummy-key"),
		OutputDir:    getEnv("OUTPUT_DIR", "outputs"),
		MemoryFile:   getEnv("MEMORY_FILE", "memory/experiments.jsonl"),
		LocalDocDir:  getEnv("LOCAL_DOC_DIR", "local_docs"),
		DBPath:       getEnv("DB_PATH", "./data/mof-mlip-agent.db"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}

	cfg.Temperature, err = getEnvFloat("OPENAI_TEMPERATURE", 0.2)
	if err != nil {
		return nil, err
	}
	cfg.ArxivMaxDocs, err = getEnvInt("ARXIV_MAX_DOCS", 5)
	if err != nil {
		return nil, err
	}
	cfg.MemoryMaxItems, err = getEnvInt("MEMORY_MAX_ITEMS", 200)
	if err != nil {
		return nil, err
	}
	cfg.MemoryRetrieveK, err = getEnvInt("MEMORY_RETRIEVE_K", 3)
	if err != nil {
		return nil, err
	}
	cfg.FastMode, err = getEnvBool("FAST_MODE", false)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}
	if cfg.ArxivMaxDocs < 0 {
		return nil, fmt.Errorf("ARXIV_MAX_DOCS must not be negative")
	}
	if cfg.MemoryRetrieveK < 0 {
		return nil, fmt.Errorf("MEMORY_RETRIEVE_K must not be negative")
	}

	// Fast mode trades retrieval breadth for latency.
	if cfg.FastMode {
		cfg.ArxivMaxDocs = 0
		cfg.MemoryRetrieveK = 1
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", s)
	}
}
