// Package config собирает настройки клиента из флагов, окружения и .env файла
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iudanet/fitkeeper/internal/client/guard"
)

// Переменные окружения, задающие значения флагов по умолчанию
const (
	EnvServer      = "FITKEEPER_SERVER"
	EnvDB          = "FITKEEPER_DB"
	EnvStore       = "FITKEEPER_STORE"
	EnvLogLevel    = "FITKEEPER_LOG_LEVEL"
	EnvPublicEntry = "FITKEEPER_PUBLIC_ENTRY"
	EnvPassword    = "FITKEEPER_PASSWORD"
)

// Поддерживаемые реализации локального хранилища
const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
)

// ErrInvalidConfig некорректное значение настройки
var ErrInvalidConfig = errors.New("invalid config")

// Config настройки процесса клиента
type Config struct {
	ServerURL    string
	DBPath       string
	Store        string
	LogLevel     string
	PublicEntry  string
	EnvFile      string
	PasswordFile string
	Password     string
	Args         []string
	ShowVersion  bool
}

// Load разбирает аргументы командной строки.
// Приоритет: флаг, затем переменная окружения (в том числе из .env), затем значение по умолчанию.
// Переменные, уже заданные в окружении, файл .env не перезаписывает.
func Load(args []string, output io.Writer) (*Config, error) {
	envFile := envFileFromArgs(args)
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Config{EnvFile: envFile}

	fs := flag.NewFlagSet("fitkeeper", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", getenv(EnvServer, "http://localhost:5000"), "Server URL")
	fs.StringVar(&cfg.DBPath, "db", getenv(EnvDB, "fitkeeper-client.db"), "Path to local database")
	fs.StringVar(&cfg.Store, "store", getenv(EnvStore, StoreBolt), "Local storage backend (bolt|sqlite)")
	fs.StringVar(&cfg.LogLevel, "log-level", getenv(EnvLogLevel, "warn"), "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.PublicEntry, "public-entry", getenv(EnvPublicEntry, guard.ViewLogin), "View to redirect unauthenticated users to")
	fs.StringVar(&cfg.EnvFile, "env-file", envFile, "Path to .env file")
	fs.StringVar(&cfg.PasswordFile, "password-file", "", "Path to file containing the account password")
	fs.StringVar(&cfg.Password, "password", "", "Account password (not recommended, use env var or file)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения настроек
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidConfig, c.ServerURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: db path is empty", ErrInvalidConfig)
	}
	switch c.Store {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("%w: unknown store %q (use %s or %s)", ErrInvalidConfig, c.Store, StoreBolt, StoreSQLite)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.PublicEntry, "/") {
		return fmt.Errorf("%w: public entry %q must start with /", ErrInvalidConfig, c.PublicEntry)
	}
	return nil
}

// SlogLevel переводит LogLevel в slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// GuardConfig настройки SessionGuard
func (c *Config) GuardConfig() guard.Config {
	return guard.Config{PublicEntry: c.PublicEntry}
}

// envFileFromArgs находит -env-file до разбора остальных флагов,
// чтобы значения из файла успели стать значениями по умолчанию.
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "env-file" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ".env"
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
