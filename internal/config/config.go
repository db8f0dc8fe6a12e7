// Package config loads and validates application configuration from an
// optional YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the contact book.
// Load fills it from defaults, then the YAML file named by CONFIG_FILE,
// then environment variables; later sources win.
type Config struct {
	// DataFile is the JSON address book used when DatabaseURL is empty.
	// Defaults to "data/addressbook.json".
	DataFile string `yaml:"data_file" validate:"required"`

	// SnapshotDir is the directory snapshots are archived to.
	// Defaults to "snapshots", relative to the working directory.
	SnapshotDir string `yaml:"snapshot_dir" validate:"required"`

	// DatabaseURL is an optional Postgres connection string, either a URL
	// or keyword/value form ("host=localhost dbname=contactbook"). When set, the
	// address book lives in Postgres instead of DataFile.
	DatabaseURL string `yaml:"database_url" validate:"omitempty,pg_dsn"`

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat selects the slog handler. Defaults to "json".
	LogFormat string `yaml:"log_format" validate:"oneof=json text"`

	// Addr is the listen address of `serve`. Defaults to "127.0.0.1:8080".
	Addr string `yaml:"addr" validate:"hostname_port"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataFile:    "data/addressbook.json",
		SnapshotDir: "snapshots",
		LogLevel:    "info",
		LogFormat:   "json",
		Addr:        "127.0.0.1:8080",
		CORSOrigins: []string{"http://localhost:5173"},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("pg_dsn", func(fl validator.FieldLevel) bool {
		_, err := pgconn.ParseConfig(fl.Field().String())
		return err == nil
	})
	return v
}

// Load reads configuration and returns a validated Config, taking the YAML
// file from CONFIG_FILE. An unset CONFIG_FILE means no file.
func Load() (Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit YAML file path. A file that cannot be
// read or parsed is an error; an empty path skips the file.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.DataFile = getEnv("DATA_FILE", cfg.DataFile)
	cfg.SnapshotDir = getEnv("SNAPSHOT_DIR", cfg.SnapshotDir)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))
	cfg.Addr = getEnv("ADDR", cfg.Addr)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %s", describe(err))
	}
	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// describe lists the offending fields of a validation failure.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
