package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceAPI      = "api"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	GymAPI     GymAPIConfig
	DataSource string
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Attendance AttendanceConfig
	Company    CompanyConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	// AllowedOrigins are the CORS origins. Defaults to FrontendURL.
	AllowedOrigins []string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

type GymAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig is optional. An empty Addr disables response caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type StorageConfig struct {
	Type     string
	BasePath string
	// BaseURL is the public prefix of stored documents, ending at the API root.
	BaseURL string
}

type AttendanceConfig struct {
	FullDayHours      float64
	HalfDayFloorHours float64
	RefreshInterval   time.Duration
	Location          *time.Location
}

// CompanyConfig is printed on generated documents.
type CompanyConfig struct {
	Name    string
	Address string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}
	var err error

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	frontendURL := getEnv("FRONTEND_URL", "http://localhost:3000")
	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{frontendURL}
	}
	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    frontendURL,
		AllowedOrigins: origins,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Gym API configuration
	apiTimeout, err := getEnvDuration("GYM_API_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	config.GymAPI = GymAPIConfig{
		BaseURL: strings.TrimRight(getEnv("GYM_API_BASE_URL", ""), "/"),
		Timeout: apiTimeout,
	}

	config.DataSource = strings.ToLower(getEnv("ATTENDANCE_DATA_SOURCE", DataSourceAPI))

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gym"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	redisTTL, err := getEnvDuration("REDIS_TTL", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
		TTL:      redisTTL,
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
		BaseURL:  strings.TrimRight(getEnv("STORAGE_BASE_URL", fmt.Sprintf("http://localhost:%d/api/v1", appPort)), "/"),
	}

	// Attendance configuration
	fullDay, err := getEnvFloat("ATTENDANCE_FULLDAY_HOURS", 8)
	if err != nil {
		return nil, err
	}
	halfDayFloor, err := getEnvFloat("ATTENDANCE_HALFDAY_FLOOR_HOURS", 3)
	if err != nil {
		return nil, err
	}
	refresh, err := getEnvDuration("ATTENDANCE_REFRESH_INTERVAL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	config.Attendance = AttendanceConfig{
		FullDayHours:      fullDay,
		HalfDayFloorHours: halfDayFloor,
		RefreshInterval:   refresh,
		Location:          loadLocation(getEnv("ATTENDANCE_TIMEZONE", "")),
	}

	config.Company = CompanyConfig{
		Name:    getEnv("COMPANY_NAME", "Gym Republic"),
		Address: getEnv("COMPANY_ADDRESS", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.GymAPI.BaseURL == "" {
		return fmt.Errorf("GYM_API_BASE_URL is required")
	}
	if c.GymAPI.Timeout <= 0 {
		return fmt.Errorf("GYM_API_TIMEOUT must be positive")
	}

	switch c.DataSource {
	case DataSourceAPI:
	case DataSourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when ATTENDANCE_DATA_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("ATTENDANCE_DATA_SOURCE must be %q or %q", DataSourceAPI, DataSourcePostgres)
	}

	if c.Storage.Type != "local" {
		return fmt.Errorf("unsupported STORAGE_TYPE %q", c.Storage.Type)
	}

	if c.Attendance.FullDayHours <= 0 {
		return fmt.Errorf("ATTENDANCE_FULLDAY_HOURS must be positive")
	}
	if c.Attendance.HalfDayFloorHours <= 0 || c.Attendance.HalfDayFloorHours >= c.Attendance.FullDayHours {
		return fmt.Errorf("ATTENDANCE_HALFDAY_FLOOR_HOURS must be between 0 and ATTENDANCE_FULLDAY_HOURS")
	}
	if c.Attendance.RefreshInterval <= 0 {
		return fmt.Errorf("ATTENDANCE_REFRESH_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func loadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("Unknown ATTENDANCE_TIMEZONE, using local time", "timezone", name, "error", err)
		return time.Local
	}
	return loc
}
