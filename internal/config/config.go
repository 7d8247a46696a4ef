package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
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
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the business constants that feed pay computations.
type PayrollConfig struct {
	HolidayMultiplier   decimal.Decimal
	VacationWeekDivisor int
	ConsumptionDiscount decimal.Decimal
	ScheduleYearFrom    int
	ScheduleYearTo      int
}

func Load() (*Config, error) {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "turnos"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	holidayMultiplier, err := decimal.NewFromString(getEnv("HOLIDAY_PAY_MULTIPLIER", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_PAY_MULTIPLIER: %w", err)
	}
	consumptionDiscount, err := decimal.NewFromString(getEnv("CONSUMPTION_DISCOUNT", "0.8"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONSUMPTION_DISCOUNT: %w", err)
	}
	vacationDivisor, err := strconv.Atoi(getEnv("VACATION_WEEK_DIVISOR", "5"))
	if err != nil || vacationDivisor <= 0 {
		return nil, fmt.Errorf("invalid VACATION_WEEK_DIVISOR")
	}
	yearFrom, err := strconv.Atoi(getEnv("SCHEDULE_YEAR_FROM", "2024"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_YEAR_FROM: %w", err)
	}
	yearTo, err := strconv.Atoi(getEnv("SCHEDULE_YEAR_TO", "2027"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_YEAR_TO: %w", err)
	}
	if yearTo < yearFrom {
		return nil, fmt.Errorf("SCHEDULE_YEAR_TO must not precede SCHEDULE_YEAR_FROM")
	}

	config.Payroll = PayrollConfig{
		HolidayMultiplier:   holidayMultiplier,
		VacationWeekDivisor: vacationDivisor,
		ConsumptionDiscount: consumptionDiscount,
		ScheduleYearFrom:    yearFrom,
		ScheduleYearTo:      yearTo,
	}

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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
