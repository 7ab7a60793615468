package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "medspa", cfg.DB.Name)
	assert.Equal(t, "medspa_user", cfg.DB.User)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medspa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
cors_origins:
  - https://book.example.com
database:
  host: db.internal
  name: medspa_prod
  max_open_conns: 50
log:
  mode: production
`), 0o600))

	t.Setenv("DB_HOST", "db.override")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "db.override", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "medspa_prod", cfg.DB.Name)
	assert.Equal(t, 50, cfg.DB.MaxOpenConns)
	assert.Equal(t, "medspa_user", cfg.DB.User)
	assert.Equal(t, "production", cfg.Log.Mode)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medspa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [not, a, map]"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load("")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := Default().DB
	assert.Equal(t,
		"host=localhost port=5432 user=medspa_user password=medspa_password dbname=medspa sslmode=disable TimeZone=UTC",
		cfg.DSN())

	cfg.Driver = "sqlite"
	cfg.Name = "local.db"
	assert.Equal(t, "local.db", cfg.DSN())
}

func TestConnectSQLite(t *testing.T) {
	db, err := ConnectDB(DBConfig{Driver: "sqlite", Name: filepath.Join(t.TempDir(), "c.db")})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
}

func TestInitLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "medspa.log")
	l, err := InitLogger(LogConfig{Mode: "production", Level: "debug", File: file})
	require.NoError(t, err)
	l.Info("hello")
	_ = l.Sync()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)

	_, err = InitLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}
