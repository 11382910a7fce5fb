package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration values.
type Config struct {
	Port        string
	DatabaseURL string
	Gemini      GeminiConfig
	Image       ImageConfig
	Analysis    AnalysisConfig
	Trends      TrendsConfig
	Media       MediaConfig
}

// GeminiConfig describes the external AI model connection.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ImageConfig bounds accepted uploads and the normalized payload.
type ImageConfig struct {
	MaxFileBytes  int
	MinDimension  int
	WarnDimension int
	MaxDimension  int
	JPEGQuality   int
}

// AnalysisConfig tunes the market fan-out.
type AnalysisConfig struct {
	Workers          int
	DefaultLocations []string
}

// TrendsConfig controls caching of AI trend lookups.
type TrendsConfig struct {
	CacheTTL time.Duration
}

// MediaConfig describes optional S3/local archival of normalized images.
type MediaConfig struct {
	Bucket         string
	Region         string
	Endpoint       string
	PublicURL      string
	KeyPrefix      string
	ForcePathStyle bool
	LocalDir       string
}

// FromEnv loads configuration from environment variables and applies defaults.
func FromEnv() Config {
	cfg := Config{
		Port:        getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getenv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: time.Duration(getenvInt("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Image: ImageConfig{
			MaxFileBytes:  getenvInt("MAX_FILE_BYTES", 5*1024*1024),
			MinDimension:  getenvInt("MIN_IMAGE_DIMENSION", 100),
			WarnDimension: getenvInt("WARN_IMAGE_DIMENSION", 4000),
			MaxDimension:  getenvInt("MAX_IMAGE_DIMENSION", 1024),
			JPEGQuality:   getenvInt("JPEG_QUALITY", 85),
		},
		Analysis: AnalysisConfig{
			Workers:          getenvInt("ANALYSIS_WORKERS", 4),
			DefaultLocations: splitCSV(getenv("DEFAULT_LOCATIONS", "USA,India,UK")),
		},
		Trends: TrendsConfig{
			CacheTTL: time.Duration(getenvInt("TRENDS_CACHE_TTL_MINUTES", 30)) * time.Minute,
		},
		Media: MediaConfig{
			Bucket:         os.Getenv("S3_BUCKET"),
			Region:         os.Getenv("S3_REGION"),
			Endpoint:       os.Getenv("S3_ENDPOINT"),
			PublicURL:      os.Getenv("S3_PUBLIC_URL"),
			KeyPrefix:      strings.Trim(os.Getenv("S3_KEY_PREFIX"), "/"),
			ForcePathStyle: getenvBool("S3_FORCE_PATH_STYLE", false),
			LocalDir:       os.Getenv("MEDIA_LOCAL_DIR"),
		},
	}

	if cfg.Port == "" {
		log.Fatal("APP_PORT cannot be empty")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func splitCSV(raw string) []string {
	chunks := strings.Split(raw, ",")
	values := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
