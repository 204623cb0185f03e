package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName    string
	TTL           time.Duration
	AdminUsername string
}

type UploadConfig struct {
	MaxPosterBytes int64
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Session:  GetSessionConfig(),
		Upload:   GetUploadConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test DB runs on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "welltix_test",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test Redis runs on 6380
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Addr: ":0"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Session:  SessionConfig{CookieName: "welltix_session", TTL: time.Minute, AdminUsername: "admin"},
		Upload:   UploadConfig{MaxPosterBytes: 5 << 20},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr: getEnv("SERVER_ADDR", ":3000"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "welltix"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetSessionConfig() SessionConfig {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "15m"))
	if err != nil {
		panic(err)
	}

	return SessionConfig{
		CookieName:    getEnv("SESSION_COOKIE_NAME", "welltix_session"),
		TTL:           ttl,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
	}
}

func GetUploadConfig() UploadConfig {
	maxBytes, err := strconv.ParseInt(getEnv("UPLOAD_MAX_POSTER_BYTES", "5242880"), 10, 64)
	if err != nil {
		panic(err)
	}

	return UploadConfig{
		MaxPosterBytes: maxBytes,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
