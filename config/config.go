package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // calendar.timezone must resolve without host zoneinfo

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Sessions
	Session   SessionConfig
	RateLimit RateLimitConfig

	// Transaction coordinator specifics
	Calendar     CalendarConfig
	Notification NotificationConfig
	Demo         DemoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SessionConfig struct {
	JWTSecret   string
	TTL         time.Duration
	MaxSessions int
}

type RateLimitConfig struct {
	LoginPerMinute int
	Capacity       int // number of client IPs tracked at once
}

type CalendarConfig struct {
	Timezone           string
	UpcomingWindowDays int
	ReminderMinutes    int
	UIDDomain          string
	Name               string
}

type NotificationConfig struct {
	ReminderDays []int
	DigestTime   string
}

type DemoConfig struct {
	Seed       bool
	RandomSeed uint64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Sessions
	cfg.Session.JWTSecret = expandEnvVar(viper.GetString("session.jwt_secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Session.JWTSecret = secret
	}
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.RateLimit.LoginPerMinute = viper.GetInt("rate_limit.login_per_minute")
	cfg.RateLimit.Capacity = viper.GetInt("rate_limit.capacity")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.UpcomingWindowDays = viper.GetInt("calendar.upcoming_window_days")
	cfg.Calendar.ReminderMinutes = viper.GetInt("calendar.reminder_minutes")
	cfg.Calendar.UIDDomain = viper.GetString("calendar.uid_domain")
	cfg.Calendar.Name = viper.GetString("calendar.name")

	// Notifications
	cfg.Notification.ReminderDays = viper.GetIntSlice("notification.reminder_days")
	cfg.Notification.DigestTime = viper.GetString("notification.digest_time")

	// Demo fixture
	cfg.Demo.Seed = viper.GetBool("demo.seed")
	cfg.Demo.RandomSeed = viper.GetUint64("demo.random_seed")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})

	viper.SetDefault("session.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("rate_limit.login_per_minute", 10)
	viper.SetDefault("rate_limit.capacity", 10000)

	viper.SetDefault("calendar.timezone", "America/New_York")
	viper.SetDefault("calendar.upcoming_window_days", 7)
	viper.SetDefault("calendar.reminder_minutes", 1440)
	viper.SetDefault("calendar.uid_domain", "parealestate.com")
	viper.SetDefault("calendar.name", "Transaction Deadlines")

	viper.SetDefault("notification.reminder_days", []int{3, 1})
	viper.SetDefault("notification.digest_time", "09:00")

	viper.SetDefault("demo.seed", true)
	viper.SetDefault("demo.random_seed", 20240101)
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port))
	}
	if cfg.Session.JWTSecret == "" {
		errs = append(errs, errors.New("session.jwt_secret is required"))
	}
	if cfg.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if cfg.RateLimit.LoginPerMinute <= 0 {
		errs = append(errs, errors.New("rate_limit.login_per_minute must be positive"))
	}
	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("calendar.timezone: %w", err))
	}
	if cfg.Calendar.UpcomingWindowDays < 1 || cfg.Calendar.UpcomingWindowDays > 90 {
		errs = append(errs, fmt.Errorf("calendar.upcoming_window_days %d must be 1..90", cfg.Calendar.UpcomingWindowDays))
	}
	if cfg.Calendar.ReminderMinutes < 0 {
		errs = append(errs, errors.New("calendar.reminder_minutes must not be negative"))
	}
	for _, d := range cfg.Notification.ReminderDays {
		if d < 1 || d > 30 {
			errs = append(errs, fmt.Errorf("notification.reminder_days: %d must be 1..30", d))
		}
	}
	if _, err := time.Parse("15:04", cfg.Notification.DigestTime); err != nil {
		errs = append(errs, fmt.Errorf("notification.digest_time %q must be HH:MM", cfg.Notification.DigestTime))
	}
	if cfg.Environment.Name == "production" && cfg.Session.JWTSecret == "dev-secret-change-me" {
		errs = append(errs, errors.New("session.jwt_secret must be set in production"))
	}
	return errors.Join(errs...)
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
