package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, "auction_house.db", cfg.DB.Path)
	require.Equal(t, 24, cfg.Token.TTLHours)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`
server:
  addr: ":9090"
db:
  driver: mysql
  host: db.internal
  port: 3307
  user: auction
  password: hunter2
  name: auctions
token:
  ttl_hours: 2
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "mysql", cfg.DB.Driver)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, 3307, cfg.DB.Port)
	require.Equal(t, "auctions", cfg.DB.Name)
	require.Equal(t, 2, cfg.Token.TTLHours)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
