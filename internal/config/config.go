package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime settings. Everything comes from the environment,
// with a .env file honored when present.
type Config struct {
	HTTPAddr string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisAddr string
	RedisDB   int

	AMQPURL      string
	AMQPExchange string

	// TTL for cached product listings and trending results.
	ListingCacheTTL time.Duration
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		MySQLUser:     getEnv("MYSQL_USER", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:     getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "probidder"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       0,
		AMQPURL:       getEnv("RABBITMQ_URL", ""),
		AMQPExchange:  getEnv("RABBITMQ_EXCHANGE", "auction.events"),
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	ttlSec, err := getEnvInt("LISTING_CACHE_TTL_SEC", 30)
	if err != nil {
		return Config{}, fmt.Errorf("invalid LISTING_CACHE_TTL_SEC: %w", err)
	}
	if ttlSec <= 0 {
		return Config{}, fmt.Errorf("LISTING_CACHE_TTL_SEC must be > 0")
	}
	cfg.ListingCacheTTL = time.Duration(ttlSec) * time.Second

	if cfg.MySQLDatabase == "" {
		return Config{}, fmt.Errorf("MYSQL_DATABASE must not be empty")
	}

	return cfg, nil
}

func (c Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase)
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
