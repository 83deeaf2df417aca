package config

import (
	"fmt"
	"os"
)

type KYCServiceConfig struct {
	Port        string
	DatabaseURL string
	S3Cfg       S3Config
	RabbitMQCfg RabbitMQConfig
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type RabbitMQConfig struct {
	Host     string
	Username string
	Password string
	Port     string
}

// New reads the environment. DATABASE_URL and the S3 credentials are the
// external contract and must be present; the process refuses to start
// without them.
func New() (*KYCServiceConfig, error) {
	cfg := &KYCServiceConfig{
		Port:        getEnvOrDefault("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		S3Cfg: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnvOrDefault("S3_REGION", "us-east-2"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_KEY"),
			SecretKey: os.Getenv("S3_SECRET"),
		},
		RabbitMQCfg: RabbitMQConfig{
			Host:     getEnvOrDefault("RABBITMQ_HOST", "rabbitmq"),
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set in environment variables")
	}
	for name, value := range map[string]string{
		"S3_ENDPOINT": cfg.S3Cfg.Endpoint,
		"S3_BUCKET":   cfg.S3Cfg.Bucket,
		"S3_KEY":      cfg.S3Cfg.AccessKey,
		"S3_SECRET":   cfg.S3Cfg.SecretKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s is not set in environment variables", name)
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
