package config

import (
	"os"
	"strconv"
	"time"
)

// ConvertConfig holds settings for the docx-to-pdf conversion pipeline.
type ConvertConfig struct {
	// BrowserBin overrides the rendering engine executable. Empty means the
	// engine's bundled default (downloaded on first run).
	BrowserBin string
	// Workers caps concurrent rasterizations; 0 means derive from CPU count.
	Workers int
	// RenderTimeout bounds a single rasterization, including page load.
	RenderTimeout time.Duration
}

// StorageConfig holds the two process-local working directories.
type StorageConfig struct {
	UploadDir string
	OutputDir string
	// CleanupDelay is the grace period between sending a response and deleting
	// its backing files, so deletion never races the in-flight transfer.
	CleanupDelay time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables at startup and passed
// explicitly into each component; nothing reads the environment afterwards.
type AppConfig struct {
	Port           string
	MaxUploadBytes int64
	Storage        StorageConfig
	Convert        ConvertConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "3000"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 50)) << 20,
		Storage: StorageConfig{
			UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
			OutputDir:    getEnv("OUTPUT_DIR", "files"),
			CleanupDelay: time.Duration(getEnvInt("CLEANUP_DELAY_MS", 3000)) * time.Millisecond,
		},
		Convert: ConvertConfig{
			BrowserBin:    getEnv("BROWSER_BIN", ""),
			Workers:       getEnvInt("RENDER_WORKERS", 0),
			RenderTimeout: time.Duration(getEnvInt("RENDER_TIMEOUT_SEC", 60)) * time.Second,
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
