package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Extraction modes. Simple stores text only and deletes the uploaded file
// after recognition; rich keeps the file and records confidence and image
// dimensions alongside the text.
const (
	ModeSimple = "simple"
	ModeRich   = "rich"
)

const defaultMaxUploadBytes = 16 << 20

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	UploadDir         string
	MaxUploadBytes    int64
	AllowedExtensions map[string]struct{}
	ExtractionMode    string
	OCRLanguage       string
	CORSAllowOrigins  []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
		DatabaseURL:       getEnv("DATABASE_URL", "photo2text.db"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:    getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		AllowedExtensions: extensionSet(getEnv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,bmp,tiff")),
		ExtractionMode:    normalizeMode(getEnv("EXTRACTION_MODE", ModeRich)),
		OCRLanguage:       getEnv("OCR_LANGUAGE", "eng"),
		CORSAllowOrigins:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("config: %s invalid, using default %d", key, def)
		return def
	}
	return val
}

func extensionSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ModeSimple:
		return ModeSimple
	default:
		return ModeRich
	}
}
