package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Seed     SeedConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	PublicBaseURL string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	ExpiryHours int
	WizardTTL   time.Duration
	CleanupCron string
}

type SeedConfig struct {
	OnStart  bool
	Stations []string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "train-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("WIZARD_TTL_MINUTES", 30)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_CLEANUP_CRON", "0 * * * *")
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("SEED_STATIONS", "Delhi,Mumbai,Chennai,Kolkata,Bangalore")
	viper.SetDefault("SMTP_PORT", 587)

	// .env opsional, environment tetap dipakai
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			PublicBaseURL: strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			WizardTTL:   time.Duration(viper.GetInt("WIZARD_TTL_MINUTES")) * time.Minute,
			CleanupCron: viper.GetString("SESSION_CLEANUP_CRON"),
		},
		Seed: SeedConfig{
			OnStart:  viper.GetBool("SEED_ON_START"),
			Stations: SplitList(viper.GetString("SEED_STATIONS")),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
	}

	return config, nil
}

// SplitList memecah "a, b,,c" menjadi [a b c]
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
