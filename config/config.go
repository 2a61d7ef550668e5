package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend selectors accepted in STORAGE_BACKEND.
const (
	BackendDisk  = "disk"
	BackendGCS   = "gcs"
	BackendMinio = "minio"
)

type Config struct {
	Port string

	GeminiAPIKey string

	StorageBackend string

	// disk backend
	UploadsPath string

	// gcs backend
	GCSBucketName string
	GCSProjectID  string
	GCSSignedURLs bool

	// minio backend
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioBucket        string
	MinioUseSSL        bool
	MinioPresignedURLs bool

	// Optional. When empty, no analysis records are persisted.
	DatabaseURL string
}

// Load reads configuration from the environment. Exactly one storage
// backend is active per deployment; the variables it needs are required,
// everything belonging to the other backends is ignored.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "No .env file loaded: %v\n", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		GeminiAPIKey:   mustEnv("GEMINI_API_KEY"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendDisk),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}

	switch cfg.StorageBackend {
	case BackendDisk:
		cfg.UploadsPath = mustEnv("UPLOADS_PATH")
	case BackendGCS:
		cfg.GCSBucketName = mustEnv("GCS_BUCKET_NAME")
		cfg.GCSProjectID = mustEnv("GCS_PROJECT_ID")
		cfg.GCSSignedURLs = boolEnv("GCS_SIGNED_URLS", false)
		if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" {
			os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "./credentials.json")
		}
	case BackendMinio:
		cfg.MinioEndpoint = mustEnv("MINIO_ENDPOINT")
		cfg.MinioAccessKey = mustEnv("MINIO_ACCESS_KEY")
		cfg.MinioSecretKey = mustEnv("MINIO_SECRET_KEY")
		cfg.MinioBucket = mustEnv("MINIO_BUCKET")
		cfg.MinioUseSSL = boolEnv("MINIO_USE_SSL", false)
		cfg.MinioPresignedURLs = boolEnv("MINIO_PRESIGNED_URLS", false)
	default:
		fmt.Fprintf(os.Stderr, "Unknown STORAGE_BACKEND %q (want disk, gcs or minio)\n", cfg.StorageBackend)
		os.Exit(1)
	}

	return cfg
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Fprintf(os.Stderr, "%s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
