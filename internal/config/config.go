package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// DBConfig is optional: without a DSN the service runs on the built-in
// holiday table only.
type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

func (c DBConfig) Enabled() bool {
	return c.DSN != ""
}

type PayrollConfig struct {
	MinimumWage        float64
	TransportAllowance float64
	MonthlyHours       float64
	SundayTiers        []time.Time
	ExtraHolidays      []string
	OvertimePolicy     string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Payroll     PayrollConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	tiers, err := parseDates(v.GetString("PAYROLL_SUNDAY_TIERS"))
	if err != nil {
		return nil, fmt.Errorf("PAYROLL_SUNDAY_TIERS: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Payroll: PayrollConfig{
			MinimumWage:        v.GetFloat64("PAYROLL_MINIMUM_WAGE"),
			TransportAllowance: v.GetFloat64("PAYROLL_TRANSPORT_ALLOWANCE"),
			MonthlyHours:       v.GetFloat64("PAYROLL_MONTHLY_HOURS"),
			SundayTiers:        tiers,
			ExtraHolidays:      parseList(v.GetString("PAYROLL_EXTRA_HOLIDAYS")),
			OvertimePolicy:     strings.ToLower(strings.TrimSpace(v.GetString("PAYROLL_OVERTIME_POLICY"))),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}
	if cfg.Payroll.MinimumWage == 0 {
		cfg.Payroll.MinimumWage = 1300000
	}
	if cfg.Payroll.TransportAllowance == 0 {
		cfg.Payroll.TransportAllowance = 162000
	}
	if cfg.Payroll.MonthlyHours == 0 {
		cfg.Payroll.MonthlyHours = 220
	}
	if len(cfg.Payroll.SundayTiers) == 0 {
		cfg.Payroll.SundayTiers = []time.Time{
			time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2027, time.July, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	if cfg.Payroll.OvertimePolicy == "" {
		cfg.Payroll.OvertimePolicy = "holiday"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTP.Port)
	}
	if cfg.Payroll.MinimumWage < 0 {
		return fmt.Errorf("PAYROLL_MINIMUM_WAGE must be positive")
	}
	if cfg.Payroll.TransportAllowance < 0 {
		return fmt.Errorf("PAYROLL_TRANSPORT_ALLOWANCE must be positive")
	}
	if cfg.Payroll.MonthlyHours < 0 {
		return fmt.Errorf("PAYROLL_MONTHLY_HOURS must be positive")
	}
	if len(cfg.Payroll.SundayTiers) != 3 {
		return fmt.Errorf("PAYROLL_SUNDAY_TIERS needs exactly 3 dates, got %d", len(cfg.Payroll.SundayTiers))
	}
	for i := 1; i < len(cfg.Payroll.SundayTiers); i++ {
		if !cfg.Payroll.SundayTiers[i].After(cfg.Payroll.SundayTiers[i-1]) {
			return fmt.Errorf("PAYROLL_SUNDAY_TIERS must be in ascending order")
		}
	}
	if _, err := parseDates(strings.Join(cfg.Payroll.ExtraHolidays, ",")); err != nil {
		return fmt.Errorf("PAYROLL_EXTRA_HOLIDAYS: %w", err)
	}
	switch cfg.Payroll.OvertimePolicy {
	case "holiday", "flat":
	default:
		return fmt.Errorf("PAYROLL_OVERTIME_POLICY must be holiday or flat, got %q", cfg.Payroll.OvertimePolicy)
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func parseDates(raw string) ([]time.Time, error) {
	items := parseList(raw)
	result := make([]time.Time, 0, len(items))
	for _, item := range items {
		d, err := time.Parse("2006-01-02", item)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", item)
		}
		result = append(result, d)
	}
	return result, nil
}
