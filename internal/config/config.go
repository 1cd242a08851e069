package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureJWTSecret = "surftrack-dev-secret"

type Config struct {
	Addr        string `yaml:"addr"`
	Environment string `yaml:"environment"`

	// DatabaseURL is a full DSN and takes precedence over DatabasePath.
	DatabaseURL  string `yaml:"database_url"`
	DatabasePath string `yaml:"database_path"`

	DBPoolSize    int           `yaml:"db_pool_size"`
	DBIdleTimeout time.Duration `yaml:"db_idle_timeout"`
	DBConnTimeout time.Duration `yaml:"db_connection_timeout"`

	APITimeout  time.Duration `yaml:"timeout"`
	FrontendURL string        `yaml:"frontend_url"`

	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	AuthRequired  bool          `yaml:"auth_required"`

	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// LoadConfig reads configuration from environment variables and, when path is
// non-empty, overlays values from a YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("SURFTRACK_ADDR", defaultAddr()),
		Environment:    getEnv("SURFTRACK_ENV", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabasePath:   getEnv("SURFTRACK_DATABASE_PATH", "surftrack.db"),
		DBPoolSize:     getEnvInt("SURFTRACK_DB_POOL_SIZE", 20),
		DBIdleTimeout:  getEnvDuration("SURFTRACK_DB_IDLE_TIMEOUT", 30*time.Second),
		DBConnTimeout:  getEnvDuration("SURFTRACK_DB_CONNECTION_TIMEOUT", 2*time.Second),
		APITimeout:     getEnvDuration("SURFTRACK_API_TIMEOUT", 15*time.Second),
		FrontendURL:    getEnv("SURFTRACK_FRONTEND_URL", ""),
		JWTSecret:      getEnv("SURFTRACK_JWT_SECRET", insecureJWTSecret),
		TokenDuration:  getEnvDuration("SURFTRACK_TOKEN_DURATION", time.Hour),
		AuthRequired:   getEnvBool("SURFTRACK_AUTH_REQUIRED", false),
		MetricsEnabled: getEnvBool("SURFTRACK_METRICS", false),
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

// DSN returns the connection string for the store: the full DATABASE_URL when
// set, otherwise the plain database path.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DatabasePath
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DSN() == "" {
		return fmt.Errorf("database path or url must be set")
	}
	if c.DBPoolSize <= 0 {
		return fmt.Errorf("db_pool_size must be positive, got %d", c.DBPoolSize)
	}
	if c.JWTSecret == insecureJWTSecret && c.Environment != "development" {
		return fmt.Errorf("default jwt secret is not allowed in %q environment", c.Environment)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	// accept plain milliseconds as well as Go duration strings
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
