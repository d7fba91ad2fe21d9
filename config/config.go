package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	Environment    string
	UpstreamConfig UpstreamConfig
	JWTConfig      JWTConfig
	TracingConfig  TracingConfig
}

type UpstreamConfig struct {
	BaseURL     string
	PlatformKey string
	TimeoutMs   int
}

type JWTConfig struct {
	JWTSecret string
	JWTKid    string
}

type TracingConfig struct {
	CollectorHost string
}

const defaultUpstreamTimeoutMs = 30000

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	timeoutMs := defaultUpstreamTimeoutMs
	if raw := os.Getenv("UPSTREAM_TIMEOUT_MS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeoutMs = parsed
		}
	}

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		UpstreamConfig: UpstreamConfig{
			BaseURL:     os.Getenv("UPSTREAM_BASE_URL"),
			PlatformKey: os.Getenv("UPSTREAM_PLATFORM_KEY"),
			TimeoutMs:   timeoutMs,
		},
		JWTConfig: JWTConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTKid:    os.Getenv("JWT_KID"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}
