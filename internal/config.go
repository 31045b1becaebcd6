package internal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Database      DatabaseConfig      `mapstructure:"database"`
	Payroll       PayrollConfig       `mapstructure:"payroll"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type DatabaseConfig struct {
	Dialect         string        `mapstructure:"dialect"`
	Source          string        `mapstructure:"source"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// PayrollConfig carries the calculation parameters the engine is
// constructed with. StandardMonthlyHours is the divisor for deriving an
// hourly rate from a monthly salary.
type PayrollConfig struct {
	TaxRate              float64 `mapstructure:"tax_rate"`
	OvertimeMultiplier   float64 `mapstructure:"overtime_multiplier"`
	StandardMonthlyHours float64 `mapstructure:"standard_monthly_hours"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultTaxRate              = 0.13
	DefaultOvertimeMultiplier   = 1.5
	DefaultStandardMonthlyHours = 176
)

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a configuration from environment variables for
// deployments that carry no config file.
func LoadConfigFromEnv() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dialect:      getEnv("DB_DIALECT", "sqlite"),
			Source:       getEnv("DB_SOURCE", "payroll.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Payroll: PayrollConfig{
			TaxRate:              getEnvAsFloat("PAYROLL_TAX_RATE", DefaultTaxRate),
			OvertimeMultiplier:   getEnvAsFloat("PAYROLL_OVERTIME_MULTIPLIER", DefaultOvertimeMultiplier),
			StandardMonthlyHours: getEnvAsFloat("PAYROLL_STANDARD_MONTHLY_HOURS", DefaultStandardMonthlyHours),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Payroll.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("payroll config: %v", err))
	}

	if err := c.Observability.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *DatabaseConfig) Validate() error {
	switch c.Dialect {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported dialect %q (expected sqlite or postgres)", c.Dialect)
	}
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}

func (c *PayrollConfig) Validate() error {
	if c.TaxRate < 0 || c.TaxRate > 1 {
		return errors.New("tax_rate must be between 0 and 1")
	}
	if c.OvertimeMultiplier <= 0 {
		return errors.New("overtime_multiplier must be positive")
	}
	if c.StandardMonthlyHours <= 0 {
		return errors.New("standard_monthly_hours must be positive")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", c.Format)
	}
	return nil
}
