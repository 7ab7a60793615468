package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Driver             string `yaml:"driver"`
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Name               string `yaml:"name"`
	SSLMode            string `yaml:"sslmode"`
	TimeZone           string `yaml:"timezone"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMin int    `yaml:"conn_max_lifetime_min"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"` // development or production
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Port        string    `yaml:"port"`
	GinMode     string    `yaml:"gin_mode"`
	CORSOrigins []string  `yaml:"cors_origins"`
	DigestCron  string    `yaml:"digest_cron"`
	DigestDays  int       `yaml:"digest_days"`
	DB          DBConfig  `yaml:"database"`
	Log         LogConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		Port:        "8080",
		GinMode:     "debug",
		CORSOrigins: []string{"http://localhost:3000"},
		DigestCron:  "0 7 * * *",
		DigestDays:  1,
		DB: DBConfig{
			Driver:             "postgres",
			Host:               "localhost",
			Port:               5432,
			User:               "medspa_user",
			Password:           "medspa_password",
			Name:               "medspa",
			SSLMode:            "disable",
			TimeZone:           "UTC",
			MaxOpenConns:       25,
			MaxIdleConns:       5,
			ConnMaxLifetimeMin: 30,
		},
		Log: LogConfig{Mode: "development", Level: "info"},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when it does not exist), then .env and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "parse %s", path)
			}
		case !os.IsNotExist(err):
			return cfg, errors.Wrapf(err, "read %s", path)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.DigestCron = getEnv("DIGEST_CRON", cfg.DigestCron)
	cfg.DigestDays = getEnvInt("DIGEST_DAYS", cfg.DigestDays)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	cfg.DB.Driver = getEnv("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.Host = getEnv("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = getEnvInt("DB_PORT", cfg.DB.Port)
	cfg.DB.User = getEnv("DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnv("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = getEnv("DB_NAME", cfg.DB.Name)
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", cfg.DB.SSLMode)
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", cfg.DB.TimeZone)
	cfg.DB.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)
	cfg.DB.ConnMaxLifetimeMin = getEnvInt("DB_CONN_MAX_LIFETIME_MIN", cfg.DB.ConnMaxLifetimeMin)

	cfg.Log.Mode = getEnv("LOG_MODE", cfg.Log.Mode)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case "postgres":
		if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
			return errors.New("database host, user and name are required")
		}
	case "sqlite":
		if c.DB.Name == "" {
			return errors.New("database name is required")
		}
	default:
		return errors.Errorf("unsupported database driver %q", c.DB.Driver)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
