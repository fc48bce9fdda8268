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

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Storage      StorageConfig
	Notification NotificationConfig
	AWS          AWSConfig
	Jornada      JornadaConfig
	Seed         SeedConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Port           int
	Env            string
	LogLevel       string
	Version        string
	Timezone       string
	RequestTimeout time.Duration
	FrontendURLs   []string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

type NotificationConfig struct {
	Channel     string
	SendTimeout time.Duration
	WorkerCount int
	Store       bool
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SQSQueueURL     string
}

// JornadaConfig holds the business rules for clock records.
type JornadaConfig struct {
	GeofenceRadiusMeters float64
	StandardShiftMinutes int
}

// SeedConfig controls the bootstrap data inserted into an empty database.
type SeedConfig struct {
	Enabled       bool
	AdminCedula   string
	AdminName     string
	AdminLastName string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	} else if err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	config := &Config{}

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
		Name:     getEnv("DB_NAME", "jornada"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	requestTimeout, err := getEnvDuration("REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "jornada-api"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "dev"),
		Timezone:       getEnv("APP_TIMEZONE", "America/Bogota"),
		RequestTimeout: requestTimeout,
		FrontendURLs:   getEnvSlice("FRONTEND_URL", []string{"http://localhost:5173"}),
	}

	// JWT configuration
	accessExpiration, err := getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", 8*time.Hour)
	if err != nil {
		return nil, err
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", fmt.Sprintf("http://localhost:%d/uploads", appPort)),
	}

	// Notification configuration
	sendTimeout, err := getEnvDuration("NOTIFICATION_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	workers, err := strconv.Atoi(getEnv("NOTIFICATION_WORKERS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_WORKERS: %w", err)
	}
	storeEnabled, err := getEnvBool("NOTIFICATION_STORE", true)
	if err != nil {
		return nil, err
	}

	config.Notification = NotificationConfig{
		Channel:     strings.ToLower(getEnv("NOTIFICATION_CHANNEL", "log")),
		SendTimeout: sendTimeout,
		WorkerCount: workers,
		Store:       storeEnabled,
	}

	config.AWS = AWSConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		Endpoint:        getEnv("AWS_ENDPOINT", ""),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		SQSQueueURL:     getEnv("SQS_QUEUE_URL", ""),
	}

	// Business rules
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "50"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}
	shift, err := strconv.Atoi(getEnv("STANDARD_SHIFT_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_SHIFT_MINUTES: %w", err)
	}

	config.Jornada = JornadaConfig{
		GeofenceRadiusMeters: radius,
		StandardShiftMinutes: shift,
	}

	// Seed configuration
	seed, err := getEnvBool("SEED_DEFAULTS", true)
	if err != nil {
		return nil, err
	}

	config.Seed = SeedConfig{
		Enabled:       seed,
		AdminCedula:   getEnv("ADMIN_CEDULA", "12345678"),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminLastName: getEnv("ADMIN_LAST_NAME", "Sistema"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if c.App.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if c.Storage.Type != "local" {
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}

	switch c.Notification.Channel {
	case "log", "console":
	case "sqs":
		if c.AWS.SQSQueueURL == "" {
			return fmt.Errorf("SQS_QUEUE_URL is required when NOTIFICATION_CHANNEL=sqs")
		}
	default:
		return fmt.Errorf("unsupported NOTIFICATION_CHANNEL: %s", c.Notification.Channel)
	}

	if c.Jornada.GeofenceRadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	if c.Jornada.StandardShiftMinutes <= 0 {
		return fmt.Errorf("STANDARD_SHIFT_MINUTES must be positive")
	}
	if c.Seed.Enabled && c.Seed.AdminCedula == "" {
		return fmt.Errorf("ADMIN_CEDULA is required when SEED_DEFAULTS is enabled")
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

// Location resolves App.Timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
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

func getEnvBool(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
