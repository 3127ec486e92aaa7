package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	DBPath           string
	FilesDir         string
	MaxUploadMB      int64
	BackendPublicURL string
	CORSOrigins      []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxMB, err := strconv.ParseInt(get("MAX_UPLOAD_MB", "512"), 10, 64)
	if err != nil || maxMB <= 0 {
		maxMB = 512
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		DBPath:           get("DB_PATH", "florisys.db"),
		FilesDir:         get("FILES_DIR", "./data/plots"),
		MaxUploadMB:      maxMB,
		BackendPublicURL: strings.TrimSpace(get("BACKEND_PUBLIC_URL", "")),
		CORSOrigins:      parseOrigins(os.Getenv("CORS_ORIGINS")),
	}
	slog.Info("config loaded", "port", cfg.Port, "db", cfg.DBPath, "files", cfg.FilesDir, "max_upload_mb", cfg.MaxUploadMB)
	return cfg
}

// MaxUploadBytes is the streaming ceiling handed to the upload pipelines.
func (c AppConfig) MaxUploadBytes() int64 { return c.MaxUploadMB * 1024 * 1024 }

func parseOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return out
}
