package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	HealthPort      string
	DataDir         string
	UploadsDir      string
	ExportsDir      string
	MaxFileSizeMB   int
	SampleRows      int
	SeedSampleData  bool
	LogLevel        string
	PublicBaseURL   string
	ShutdownTimeout time.Duration
}

// MaxFileSize returns the upload limit in bytes.
func (c *Config) MaxFileSize() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

// Addr returns the listen address for the API server.
func (c *Config) Addr() string {
	return listenAddr(c.Port)
}

// HealthAddr returns the probe server address, or "" when it is disabled.
func (c *Config) HealthAddr() string {
	if strings.TrimSpace(c.HealthPort) == "" {
		return ""
	}
	return listenAddr(c.HealthPort)
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	maxFileSizeMB, err := intEnv("MAX_FILE_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	sampleRows, err := intEnv("SAMPLE_ROWS", 3)
	if err != nil {
		return nil, err
	}
	seed, err := boolEnv("SEED_SAMPLE_DATA", true)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	port := firstNonEmpty(os.Getenv("PORT"), "8001")
	return &Config{
		Port:            port,
		HealthPort:      strings.TrimSpace(os.Getenv("HEALTH_PORT")),
		DataDir:         firstNonEmpty(os.Getenv("DATA_DIR"), "data"),
		UploadsDir:      firstNonEmpty(os.Getenv("UPLOADS_DIR"), "uploads"),
		ExportsDir:      firstNonEmpty(os.Getenv("EXPORTS_DIR"), "exports"),
		MaxFileSizeMB:   maxFileSizeMB,
		SampleRows:      sampleRows,
		SeedSampleData:  seed,
		LogLevel:        strings.TrimSpace(os.Getenv("LOGGING_LEVEL")),
		PublicBaseURL:   firstNonEmpty(os.Getenv("PUBLIC_BASE_URL"), "http://localhost:"+strings.TrimPrefix(port, ":")),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func listenAddr(port string) string {
	port = strings.TrimSpace(port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", key, raw)
	}
	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: expected a boolean", key, raw)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
