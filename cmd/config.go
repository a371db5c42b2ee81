package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is read from an optional YAML file and then from the environment;
// a non-empty environment variable wins over the file.
type Config struct {
	HTTPPort   string `yaml:"HTTP_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPort     string `yaml:"DB_PORT"`
	DBUser     string `yaml:"DB_USER"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBName     string `yaml:"DB_NAME"`
	DBSslMode  string `yaml:"DB_SSLMODE"`

	LogLevel string `yaml:"LOG_LEVEL"`
	AppEnv   string `yaml:"APP_ENV"`

	GCSProjectID       string `yaml:"GCS_PROJECT_ID"`
	GCSBucket          string `yaml:"GCS_BUCKET"`
	GCSCredentialsFile string `yaml:"GCS_CREDENTIALS_FILE"`
	LocalPhotoDir      string `yaml:"LOCAL_PHOTO_DIR"`
	LocalPhotoBaseURL  string `yaml:"LOCAL_PHOTO_BASE_URL"`

	KafkaBrokers   []string `yaml:"KAFKA_BROKERS"`
	KafkaTaskTopic string   `yaml:"KAFKA_TASK_TOPIC"`

	RedisURL        string        `yaml:"REDIS_URL"`
	CatalogCacheTTL time.Duration `yaml:"CATALOG_CACHE_TTL"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:          "8080",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBSslMode:         "disable",
		LogLevel:          "info",
		AppEnv:            "production",
		LocalPhotoDir:     "photos",
		LocalPhotoBaseURL: "http://localhost:8080/photos",
		KafkaTaskTopic:    "dispatch.tasks",
		CatalogCacheTTL:   10 * time.Minute,
	}
}

// LoadConfig reads .env when present, then configFile (or CONFIG_FILE when
// configFile is empty), then the environment.
func LoadConfig(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaultConfig()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("HTTP_PORT", &c.HTTPPort)
	str("DB_HOST", &c.DBHost)
	str("DB_PORT", &c.DBPort)
	str("DB_USER", &c.DBUser)
	str("DB_PASSWORD", &c.DBPassword)
	str("DB_NAME", &c.DBName)
	str("DB_SSLMODE", &c.DBSslMode)
	str("LOG_LEVEL", &c.LogLevel)
	str("APP_ENV", &c.AppEnv)
	str("GCS_PROJECT_ID", &c.GCSProjectID)
	str("GCS_BUCKET", &c.GCSBucket)
	str("GCS_CREDENTIALS_FILE", &c.GCSCredentialsFile)
	str("LOCAL_PHOTO_DIR", &c.LocalPhotoDir)
	str("LOCAL_PHOTO_BASE_URL", &c.LocalPhotoBaseURL)
	str("KAFKA_TASK_TOPIC", &c.KafkaTaskTopic)
	str("REDIS_URL", &c.RedisURL)

	if v, ok := lookup("KAFKA_BROKERS"); ok && strings.TrimSpace(v) != "" {
		c.KafkaBrokers = c.KafkaBrokers[:0]
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				c.KafkaBrokers = append(c.KafkaBrokers, broker)
			}
		}
	}

	if v, ok := lookup("CATALOG_CACHE_TTL"); ok && strings.TrimSpace(v) != "" {
		ttl, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
		}
		c.CatalogCacheTTL = ttl
	}
	return nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
