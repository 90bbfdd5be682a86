package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, production
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings. DATABASE_URL, when
// set, wins over the individual fields.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	if strings.TrimSpace(d.URL) != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PricingConfig carries the two tariff knobs of the pricing engine. Rates
// are kept as strings so they reach the decimal layer without passing
// through binary floating point.
type PricingConfig struct {
	// TaxRate is the flat VAT rate applied to the subtotal, e.g. "0.21".
	TaxRate string `mapstructure:"tax_rate"`
	// BreakfastRate is the flat breakfast price per adult per night.
	BreakfastRate string `mapstructure:"breakfast_rate"`
}

// Load reads configuration from environment variables (PENSION_SERVER_PORT,
// PENSION_DATABASE_URL, PENSION_PRICING_TAX_RATE, ...) on top of defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "pension-backend")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pension")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("pricing.tax_rate", "0.21")
	v.SetDefault("pricing.breakfast_rate", "8")

	v.SetEnvPrefix("PENSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bare DATABASE_URL is what the hosting platform provides.
	_ = v.BindEnv("database.url", "PENSION_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("server.port", "PENSION_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	return &cfg, nil
}
