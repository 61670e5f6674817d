package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"infly-warehouse"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// Source is the operational MySQL database the pipeline extracts from.
	Source struct {
		Host     string `envconfig:"SOURCE_DB_HOST" default:"localhost"`
		Port     int    `envconfig:"SOURCE_DB_PORT" default:"3306"`
		User     string `envconfig:"SOURCE_DB_USER" default:"root"`
		Password string `envconfig:"SOURCE_DB_PASSWORD" default:""`
		Name     string `envconfig:"SOURCE_DB_NAME" default:"infly_anonima"`
	}

	// Warehouse is the analytical Postgres database the pipeline loads into
	// and the reporting API reads from.
	Warehouse struct {
		Host     string `envconfig:"DW_DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DW_DB_PORT" default:"5432"`
		User     string `envconfig:"DW_DB_USER" default:"postgres"`
		Password string `envconfig:"DW_DB_PASSWORD" default:""`
		Name     string `envconfig:"DW_DB_NAME" default:"dw_infly"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret   string        `envconfig:"AUTH_SECRET"`
		TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"30m"`
	}
}

func (c *Config) SourceDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		c.Source.User, c.Source.Password, c.Source.Host, c.Source.Port, c.Source.Name)
}

func (c *Config) WarehouseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Warehouse.User, c.Warehouse.Password, c.Warehouse.Host, c.Warehouse.Port, c.Warehouse.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
