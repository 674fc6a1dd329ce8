package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tekerra/acadlens-backend/internal/logger"
	"github.com/Tekerra/acadlens-backend/internal/utils"
)

type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	AllowedOrigins []string
	AutoBootstrap  bool
}

// fileConfig is the optional YAML overlay named by CONFIG_FILE.
// Environment variables still win over file values.
type fileConfig struct {
	ServiceName    string   `yaml:"service_name"`
	Environment    string   `yaml:"environment"`
	Port           string   `yaml:"port"`
	JWTSecretKey   string   `yaml:"jwt_secret_key"`
	AccessTokenTTL int      `yaml:"access_token_ttl"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AutoBootstrap  *bool    `yaml:"auto_bootstrap"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		ServiceName:    "acadlens",
		Environment:    "development",
		Version:        "0.1.0",
		Port:           "8080",
		JWTSecretKey:   "defaultsecret",
		AccessTokenTTL: time.Hour,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if fc.ServiceName != "" {
			cfg.ServiceName = fc.ServiceName
		}
		if fc.Environment != "" {
			cfg.Environment = fc.Environment
		}
		if fc.Port != "" {
			cfg.Port = fc.Port
		}
		if fc.JWTSecretKey != "" {
			cfg.JWTSecretKey = fc.JWTSecretKey
		}
		if fc.AccessTokenTTL > 0 {
			cfg.AccessTokenTTL = time.Duration(fc.AccessTokenTTL) * time.Second
		}
		if len(fc.AllowedOrigins) > 0 {
			cfg.AllowedOrigins = fc.AllowedOrigins
		}
		if fc.AutoBootstrap != nil {
			cfg.AutoBootstrap = *fc.AutoBootstrap
		}
		log.Info("Config file loaded", "path", path)
	}

	cfg.ServiceName = utils.GetEnv("SERVICE_NAME", cfg.ServiceName, log)
	cfg.Environment = utils.GetEnv("ENVIRONMENT", cfg.Environment, log)
	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	ttlSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", int(cfg.AccessTokenTTL.Seconds()), log)
	cfg.AccessTokenTTL = time.Duration(ttlSeconds) * time.Second
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		parts := strings.Split(origins, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, part)
			}
		}
	}
	cfg.AutoBootstrap = utils.GetEnvAsBool("AUTO_BOOTSTRAP", cfg.AutoBootstrap, log)
	return cfg, nil
}
