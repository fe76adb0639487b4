// Package config loads the API server configuration from the environment and,
// optionally, a YAML file pointed to by CONFIG_PATH.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendSQL      = "sql"
	BackendDynamoDB = "dynamodb"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnsupportedBackend = errors.New("unsupported store backend")

type Config struct {
	Env        string           `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Log        LogConfig        `yaml:"log"`
	Store      StoreConfig      `yaml:"store"`
	DynamoDB   DynamoDBConfig   `yaml:"dynamodb"`
	Seed       SeedConfig       `yaml:"seed"`
	Validation ValidationConfig `yaml:"validation"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env:"PORT" env-default:"4000"`
}

// Addr returns the listen address for gin.
func (h HTTPConfig) Addr() string {
	return ":" + strconv.Itoa(h.Port)
}

type LogConfig struct {
	Mode string `yaml:"mode" env:"LOG_MODE" env-default:"dev"`
}

type StoreConfig struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"sql"`
	Driver  string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	DSN     string `yaml:"dsn" env:"DB_DSN" env-default:"database.sqlite"`
}

// DynamoDBConfig mirrors the local-friendly variables of the DynamoDB client.
// Local DynamoDB does not validate credentials, hence the "local" defaults.
type DynamoDBConfig struct {
	Region           string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID      string `yaml:"access_key_id" env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey  string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	Endpoint         string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
	EntriesTable     string `yaml:"entries_table" env:"ENTRIES_TABLE" env-default:"parliament_entries"`
	RegionsTable     string `yaml:"regions_table" env:"REGIONS_TABLE" env-default:"autonomous_regions"`
	DataSourcesTable string `yaml:"data_sources_table" env:"DATA_SOURCES_TABLE" env-default:"data_sources"`
}

type SeedConfig struct {
	Defaults    bool   `yaml:"defaults" env:"SEED_DEFAULTS" env-default:"true"`
	EntriesFile string `yaml:"entries_file" env:"ENTRIES_SEED_FILE"`
}

type ValidationConfig struct {
	Strict bool `yaml:"strict" env:"STRICT_VALIDATION" env-default:"false"`
}

// Load reads the configuration. When path is empty CONFIG_PATH is consulted;
// without a file only the environment (and defaults) are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendSQL:
		switch c.Store.Driver {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("%w: sql driver %q", ErrUnsupportedBackend, c.Store.Driver)
		}
	case BackendDynamoDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedBackend, c.Store.Backend)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.HTTP.Port)
	}
	return nil
}
