package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type LoyaltyConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	LoyaltyDB    `yaml:"loyalty_db"`
	RedisCache   `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	LogConfig    `yaml:"log_config"`
	Loyalty      `yaml:"loyalty"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type LoyaltyDB struct {
	// Driver selects the storage backend: "postgres" or "memory". The
	// memory driver keeps everything in-process and is meant for local
	// runs and tests.
	Driver         string `yaml:"driver" env-default:"postgres"`
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type RedisCache struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl" env-default:"30s"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"validation-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
}

type Loyalty struct {
	// TokenTTL bounds the window between issuing a QR token and scanning it.
	TokenTTL      time.Duration `yaml:"token_ttl" env-default:"5m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

func MustLoad() *LoyaltyConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LOYALTY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LOYALTY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LoyaltyConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
