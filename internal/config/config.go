package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const insecureJWTSecret = "change-me"

type Config struct {
	Env       string          `yaml:"env"`
	DB        DBConfig        `yaml:"db"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Ops       OpsConfig       `yaml:"ops"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	SeedDemo  bool            `yaml:"seed_demo"`
}

type GRPCConfig struct {
	Addr string `yaml:"addr"`
}

// OpsConfig — служебный HTTP: /health и /metrics.
type OpsConfig struct {
	Addr string `yaml:"addr"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	Issuer    string        `yaml:"issuer"`
}

// RateLimitConfig — лимит запросов на одного участника; RPS <= 0 отключает лимит.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | text
}

// Load читает .env (если есть), затем переменные окружения с дефолтами,
// затем накладывает YAML-файл path, если он задан.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		DB:  defaultDBConfig(),
		GRPC: GRPCConfig{
			Addr: getEnv("GRPC_ADDR", ":50051"),
		},
		Ops: OpsConfig{
			Addr: getEnv("OPS_ADDR", ":8081"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", insecureJWTSecret),
			TokenTTL:  getEnvDuration("JWT_TTL", 24*time.Hour),
			Issuer:    getEnv("JWT_ISSUER", "homeservice-platform"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvInt("RATE_LIMIT_BURST", 20),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		SeedDemo: getEnvBool("SEED_DEMO", false),
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.DB.Validate(); err != nil {
		return err
	}
	if c.GRPC.Addr == "" {
		return fmt.Errorf("invalid config: grpc.addr must not be empty")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: auth.jwt_secret must not be empty")
	}
	if c.Auth.JWTSecret == insecureJWTSecret && c.Env != "development" {
		return fmt.Errorf("invalid config: default jwt secret is allowed only in development")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid config: auth.token_ttl must be positive")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("invalid config: rate_limit.burst must be positive")
	}
	return nil
}
