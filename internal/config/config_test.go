package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  host: db.local
  port: 5433
  user: pos
  password: secret
  database: noodle_pos

rabbitmq:
  host: mq.local
  user: guest
  password: guest

http:
  port: 8080
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "db.local", cfg.Database.Host)
	require.Equal(t, 5433, cfg.Database.Port)
	require.Equal(t, "disable", cfg.Database.SSLMode) // default kept
	require.Equal(t, "mq.local", cfg.RabbitMQ.Host)
	require.Equal(t, 5672, cfg.RabbitMQ.Port) // default kept
	require.Equal(t, "/", cfg.RabbitMQ.VHost)
	require.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_Incomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  host: db.local
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
