package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type S3Options struct {
	Bucket    string        `env:"S3_BUCKET"`
	Region    string        `env:"S3_REGION" envDefault:"ap-southeast-1"`
	Endpoint  string        `env:"S3_ENDPOINT" envDefault:"s3.amazonaws.com"`
	AccessKey string        `env:"S3_ACCESS_KEY"`
	SecretKey string        `env:"S3_SECRET_KEY"`
	Expiry    time.Duration `env:"UPLOAD_EXPIRY" envDefault:"15m"`
	MaxBytes  int64         `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
}

// Enabled reports whether presigned uploads can be issued.
func (o S3Options) Enabled() bool {
	return o.Bucket != "" && o.AccessKey != "" && o.SecretKey != ""
}

type AppConfig struct {
	Port           string `env:"PORT" envDefault:"8080"`
	DBPath         string `env:"DB_PATH" envDefault:"farmdesk.db"`
	APIBaseURL     string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	S3             S3Options
}

// String hides secrets so the config can be logged at startup.
func (c AppConfig) String() string {
	return fmt.Sprintf("port=%s db=%s api=%s log=%s/%s metrics=%t s3.bucket=%s s3.region=%s uploads=%t",
		c.Port, c.DBPath, c.APIBaseURL, c.LogLevel, c.LogFormat, c.MetricsEnabled,
		c.S3.Bucket, c.S3.Region, c.S3.Enabled())
}

// Load reads .env (if any) and then the process environment.
func Load() (AppConfig, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("[cfg] error loading .env: %v", err)
		}
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
