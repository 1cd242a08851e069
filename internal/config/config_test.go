package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kainoa/surftrack/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080 got %q", cfg.Addr)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected development got %q", cfg.Environment)
	}
	if cfg.DBPoolSize != 20 {
		t.Fatalf("expected pool size 20 got %d", cfg.DBPoolSize)
	}
	if cfg.DBIdleTimeout != 30*time.Second {
		t.Fatalf("expected 30s idle timeout got %v", cfg.DBIdleTimeout)
	}
	if cfg.DBConnTimeout != 2*time.Second {
		t.Fatalf("expected 2s connection timeout got %v", cfg.DBConnTimeout)
	}
	if cfg.AuthRequired {
		t.Fatalf("expected auth off by default")
	}
}

func TestLoadConfig_PortEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9100" {
		t.Fatalf("expected :9100 got %q", cfg.Addr)
	}
}

func TestLoadConfig_EnvDurationsAcceptMilliseconds(t *testing.T) {
	t.Setenv("SURFTRACK_DB_IDLE_TIMEOUT", "1500")
	t.Setenv("SURFTRACK_DB_CONNECTION_TIMEOUT", "3s")
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DBIdleTimeout != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s got %v", cfg.DBIdleTimeout)
	}
	if cfg.DBConnTimeout != 3*time.Second {
		t.Fatalf("expected 3s got %v", cfg.DBConnTimeout)
	}
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "addr: \":9999\"\nenvironment: staging\njwt_secret: file-secret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("expected file addr got %q", cfg.Addr)
	}
	if cfg.Environment != "staging" {
		t.Fatalf("expected staging got %q", cfg.Environment)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("expected file secret got %q", cfg.JWTSecret)
	}
	// values absent from the file keep their env defaults
	if cfg.DBPoolSize != 20 {
		t.Fatalf("expected default pool size got %d", cfg.DBPoolSize)
	}
}

func TestDSN_URLTakesPrecedence(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "file:custom?mode=memory", DatabasePath: "surftrack.db"}
	if got := cfg.DSN(); got != "file:custom?mode=memory" {
		t.Fatalf("expected url to win, got %q", got)
	}

	cfg = &config.Config{DatabasePath: "surftrack.db"}
	if got := cfg.DSN(); got != "surftrack.db" {
		t.Fatalf("expected path fallback, got %q", got)
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	cfg := &config.Config{
		Addr:          ":8080",
		Environment:   "production",
		DatabasePath:  "surftrack.db",
		DBPoolSize:    20,
		JWTSecret:     "surftrack-dev-secret",
		TokenDuration: time.Hour,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for default JWT secret in production")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	cfg := &config.Config{
		Addr:          ":8080",
		Environment:   "development",
		DatabasePath:  "surftrack.db",
		DBPoolSize:    20,
		JWTSecret:     "surftrack-dev-secret",
		TokenDuration: time.Hour,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development, got: %v", err)
	}
}

func TestValidate_RejectsBrokenValues(t *testing.T) {
	cfg := &config.Config{Environment: "development", DatabasePath: "x", DBPoolSize: 1, JWTSecret: "s"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected empty addr to fail")
	}

	cfg = &config.Config{Addr: ":8080", Environment: "development", DBPoolSize: 1, JWTSecret: "s"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing dsn to fail")
	}

	cfg = &config.Config{Addr: ":8080", Environment: "development", DatabasePath: "x", DBPoolSize: 0, JWTSecret: "s"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected zero pool size to fail")
	}
}

func TestIsProduction(t *testing.T) {
	if (&config.Config{Environment: "development"}).IsProduction() {
		t.Fatalf("development is not production")
	}
	if !(&config.Config{Environment: "production"}).IsProduction() {
		t.Fatalf("expected production true")
	}
}
