package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling. SlotGranularityMin is the single slot granularity for the
	// whole deployment; every booking, availability and statistics call uses
	// this value so the numbers can never drift apart.
	SlotGranularityMin int    `mapstructure:"SLOT_GRANULARITY_MIN"`
	SalonTimezone      string `mapstructure:"SALON_TIMEZONE"`

	// Payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`
	Currency  string `mapstructure:"CURRENCY"`

	// Email reports.
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	ReportFrom       string `mapstructure:"REPORT_FROM"`
	ReportRecipients string `mapstructure:"REPORT_RECIPIENTS"`
	ReportCronSpec   string `mapstructure:"REPORT_CRON_SPEC"`
	ReminderCronSpec string `mapstructure:"REMINDER_CRON_SPEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CART_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SLOT_GRANULARITY_MIN", 30)
	viper.SetDefault("SALON_TIMEZONE", "Europe/Paris")
	viper.SetDefault("CURRENCY", "eur")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("REPORT_CRON_SPEC", "0 20 * * *")
	viper.SetDefault("REMINDER_CRON_SPEC", "0 18 * * *")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SlotGranularity returns the deployment-wide slot granularity as a duration.
func SlotGranularity() time.Duration {
	g := AppConfig.SlotGranularityMin
	if g <= 0 {
		g = 30
	}
	return time.Duration(g) * time.Minute
}

// SalonLocation resolves the configured salon timezone. All working windows,
// breaks and blocks are interpreted in this single location.
func SalonLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.SalonTimezone)
	if err != nil {
		log.Printf("Invalid SALON_TIMEZONE %q, falling back to Local", AppConfig.SalonTimezone)
		return time.Local
	}
	return loc
}
