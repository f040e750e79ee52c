package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DB holds the relational database settings. Driver selects between the
// mysql and sqlite backends; Path is only used by sqlite.
type DB struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string
}

// Config is the full server configuration, loaded once at startup and passed
// to constructors explicitly.
type Config struct {
	Addr  string
	DB    DB
	Token struct {
		TTLHours int
	}
}

// Load reads configuration from an optional YAML file, falling back to
// defaults suitable for local development.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "auction_house")
	v.SetDefault("db.path", "auction_house.db")
	v.SetDefault("token.ttl_hours", 24)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Addr: v.GetString("server.addr"),
		DB: DB{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			Path:     v.GetString("db.path"),
		},
	}
	cfg.Token.TTLHours = v.GetInt("token.ttl_hours")
	if cfg.Token.TTLHours <= 0 {
		cfg.Token.TTLHours = 24
	}
	return cfg, nil
}
