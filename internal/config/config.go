package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/schedule"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	Schedule     ScheduleConfig
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
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	AllowedOrigins []string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// ScheduleConfig holds the work calendar. Shift windows are "HH:mm-HH:mm",
// holidays a comma-separated list of "MM-dd" dates.
type ScheduleConfig struct {
	WeekdayShift  string
	FridayShift   string
	SaturdayShift string
	LunchBreak    string
	Holidays      []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
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
		Name:     getEnv("DB_NAME", "bodega_ferroactiva"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES", ""),
	}

	// Work calendar. Defaults mirror schedule.Default().
	config.Schedule = ScheduleConfig{
		WeekdayShift:  getEnv("WORK_WEEKDAY_SHIFT", "08:00-18:00"),
		FridayShift:   getEnv("WORK_FRIDAY_SHIFT", "08:00-17:00"),
		SaturdayShift: getEnv("WORK_SATURDAY_SHIFT", "09:00-14:00"),
		LunchBreak:    getEnv("WORK_LUNCH_BREAK", "13:00-14:00"),
		Holidays:      getEnvSlice("WORK_HOLIDAYS", ""),
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
	if c.OAuth2Google.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	if c.OAuth2Google.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}
	if c.OAuth2Google.RedirectURL == "" {
		return fmt.Errorf("REDIRECT_URL is required")
	}
	if len(c.OAuth2Google.Scopes) == 0 {
		return fmt.Errorf("SCOPES is required")
	}

	for name, window := range map[string]string{
		"WORK_WEEKDAY_SHIFT":  c.Schedule.WeekdayShift,
		"WORK_FRIDAY_SHIFT":   c.Schedule.FridayShift,
		"WORK_SATURDAY_SHIFT": c.Schedule.SaturdayShift,
		"WORK_LUNCH_BREAK":    c.Schedule.LunchBreak,
	} {
		if _, err := parseShiftWindow(window); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	for _, h := range c.Schedule.Holidays {
		if !validator.IsValidMonthDay(strings.TrimSpace(h)) {
			return fmt.Errorf("invalid WORK_HOLIDAYS entry %q: must be MM-dd", h)
		}
	}

	return nil
}

// WorkSchedule builds the domain calendar from the configured windows.
func (c *Config) WorkSchedule() (*schedule.WorkSchedule, error) {
	weekdays, err := parseShiftWindow(c.Schedule.WeekdayShift)
	if err != nil {
		return nil, err
	}
	friday, err := parseShiftWindow(c.Schedule.FridayShift)
	if err != nil {
		return nil, err
	}
	saturday, err := parseShiftWindow(c.Schedule.SaturdayShift)
	if err != nil {
		return nil, err
	}
	lunch, err := parseShiftWindow(c.Schedule.LunchBreak)
	if err != nil {
		return nil, err
	}

	holidays := c.Schedule.Holidays
	if len(holidays) == 0 {
		return schedule.New(weekdays, friday, saturday, lunch, defaultHolidays()), nil
	}
	return schedule.New(weekdays, friday, saturday, lunch, holidays), nil
}

func defaultHolidays() []string {
	base := schedule.Default()
	holidays := make([]string, 0, len(base.Holidays))
	for h := range base.Holidays {
		holidays = append(holidays, h)
	}
	return holidays
}

func parseShiftWindow(s string) (schedule.ShiftWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return schedule.ShiftWindow{}, fmt.Errorf("shift window %q must be HH:mm-HH:mm", s)
	}
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if !validator.IsValidClockTime(start) || !validator.IsValidClockTime(end) {
		return schedule.ShiftWindow{}, fmt.Errorf("shift window %q must be HH:mm-HH:mm", s)
	}
	return schedule.ShiftWindow{Start: start, End: end}, nil
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
