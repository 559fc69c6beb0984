package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URI  string `yaml:"uri"`
	Name string `yaml:"name"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret        string `yaml:"secret"`
	ExpiryMinutes int    `yaml:"expiry_minutes"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// CORSConfig holds the allowed origins list.
type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type Config struct {
	Mongo  MongoConfig  `yaml:"mongo"`
	JWT    JWTConfig    `yaml:"jwt"`
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
}

// Load reads config.yaml, applies environment variable overrides, and exits
// the process if a required value is missing.
func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	overrideFromEnv(&cfg)

	if cfg.Mongo.URI == "" || cfg.Mongo.Name == "" {
		log.Fatal("MONGO_URI and DB_NAME must be set")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.JWT.ExpiryMinutes <= 0 {
		cfg.JWT.ExpiryMinutes = 60
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8000"
	}

	return &cfg
}

func overrideFromEnv(cfg *Config) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Mongo.Name = name
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if expiry := os.Getenv("TOKEN_EXPIRY_MINUTES"); expiry != "" {
		if m, err := strconv.Atoi(expiry); err == nil {
			cfg.JWT.ExpiryMinutes = m
		}
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		cfg.CORS.Origins = cfg.CORS.Origins[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cfg.CORS.Origins = append(cfg.CORS.Origins, p)
			}
		}
	}
}
