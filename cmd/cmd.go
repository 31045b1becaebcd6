package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/frahmantamala/payroll-management/internal"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/frahmantamala/payroll-management/internal/employee/storage"
	"github.com/frahmantamala/payroll-management/internal/importer"
	"github.com/frahmantamala/payroll-management/internal/payroll"
	"github.com/frahmantamala/payroll-management/internal/reports"
	"github.com/frahmantamala/payroll-management/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "payroll-management",
	Short: "Payroll Management",
	Long:  `For computing periodic compensation and reconciling employee records.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.dialect", "sqlite")
	v.SetDefault("database.source", "payroll.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("payroll.tax_rate", internal.DefaultTaxRate)
	v.SetDefault("payroll.overtime_multiplier", internal.DefaultOvertimeMultiplier)
	v.SetDefault("payroll.standard_monthly_hours", internal.DefaultStandardMonthlyHours)
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "text")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

type services struct {
	config    *internal.Config
	employees *employee.Service
	payroll   *payroll.Service
	importer  *importer.Service
	reports   *reports.Service
}

func buildServices(cfg *internal.Config) (*services, error) {
	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	log := logger.LoggerWrapper()

	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	employeeService := employee.NewService(storage.NewEmployeeRepository(db), log)

	taxService, err := payroll.NewTaxService(cfg.Payroll.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate: %w", err)
	}

	return &services{
		config:    cfg,
		employees: employeeService,
		payroll:   payroll.NewService(employeeService, payroll.NewCalculator(cfg.Payroll), taxService, log),
		importer:  importer.NewService(employeeService, log),
		reports:   reports.NewService(employeeService, cfg.Payroll.TaxRate, log),
	}, nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
}
