package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pauloatx/page-teste02/internal/db"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	UniqueEmail    bool          `yaml:"unique_email"`
	RateLimit      RateLimit     `yaml:"rate_limit"`
	Database       Database      `yaml:"database"`
}

type RateLimit struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

type Database struct {
	Engine   string `yaml:"engine"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	UseTLS   bool   `yaml:"use_tls"`
	TLSCA    string `yaml:"tls_ca"`
}

// LoadConfig builds the configuration from environment variables and,
// when path is non-empty, overlays values from a YAML file. The env
// names follow the deployment surface the service has always used
// (DB_HOST, DB_USER, DB_PASSWORD, DB_DATABASE, DB_PORT, DB_USE_SSL).
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         ":" + getEnv("PORT", "3000"),
		APITimeout:   15 * time.Second,
		MaxBodyBytes: 10 << 10,
		UniqueEmail:  getEnv("UNIQUE_EMAIL", "") == "true",
		RateLimit: RateLimit{
			Max:    getEnvInt("RATE_LIMIT_MAX", 100),
			Window: time.Duration(getEnvInt("RATE_LIMIT_WINDOW", 900)) * time.Second,
		},
		Database: Database{
			Engine:   getEnv("DB_ENGINE", db.EngineSQLite),
			Path:     getEnv("DB_PATH", "atendimentos.db"),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvInt("DB_PORT", 0),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_DATABASE", ""),
			UseTLS:   getEnv("DB_USE_SSL", "") == "true",
			TLSCA:    getEnv("DB_SSL_CA", ""),
		},
	}

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Engine {
	case db.EngineSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	case db.EngineMySQL, db.EnginePostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return fmt.Errorf("database host, user and name are required for %s", c.Database.Engine)
		}
	default:
		return fmt.Errorf("unknown database engine %q", c.Database.Engine)
	}

	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit max and window must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive")
	}

	return nil
}

// DBOptions maps the database section onto store-open options,
// applying the engine's default port when none is set.
func (c *Config) DBOptions() db.Options {
	port := c.Database.Port
	if port == 0 {
		switch c.Database.Engine {
		case db.EngineMySQL:
			port = 3306
		case db.EnginePostgres:
			port = 5432
		}
	}

	return db.Options{
		Engine:   c.Database.Engine,
		Path:     c.Database.Path,
		Host:     c.Database.Host,
		Port:     port,
		User:     c.Database.User,
		Password: c.Database.Password,
		Database: c.Database.Name,
		UseTLS:   c.Database.UseTLS,
		TLSCA:    c.Database.TLSCA,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return def
}
