package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type API struct {
	Key  string
	Base string
}

type DB struct {
	Type string // sqlite | mysql | redshift
	Path string // sqlite file
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr    string
	LockTTL int // seconds
}

type Report struct {
	Limit int
}

type Config struct {
	API    API
	DB     DB
	Redis  Redis
	Report Report
}

// Load reads the optional yaml file at path and merges environment
// overrides (API_KEY, DB_TYPE, DB_HOST, ...). An empty path means
// environment-only configuration.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("api.base", "api-dev.headspin.io")
	v.SetDefault("db.type", "sqlite")
	v.SetDefault("db.path", "device_inventory.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 0)
	v.SetDefault("redis.lock_ttl", 300)
	v.SetDefault("report.limit", 10)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// legacy env names from the previous deployment
	_ = v.BindEnv("api.key", "API_KEY")
	_ = v.BindEnv("db.type", "DB_TYPE")
	_ = v.BindEnv("db.user", "DB_USER")
	_ = v.BindEnv("db.pass", "DB_PASSWORD")
	_ = v.BindEnv("db.host", "DB_HOST")
	_ = v.BindEnv("db.port", "DB_PORT")
	_ = v.BindEnv("db.name", "DB_NAME")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		API: API{
			Key:  v.GetString("api.key"),
			Base: v.GetString("api.base"),
		},
		DB: DB{
			Type: strings.ToLower(v.GetString("db.type")),
			Path: v.GetString("db.path"),
			Host: v.GetString("db.host"),
			Port: v.GetInt("db.port"),
			User: v.GetString("db.user"),
			Pass: v.GetString("db.pass"),
			Name: v.GetString("db.name"),
		},
		Redis: Redis{
			Addr:    v.GetString("redis.addr"),
			LockTTL: v.GetInt("redis.lock_ttl"),
		},
		Report: Report{Limit: v.GetInt("report.limit")},
	}

	if cfg.Report.Limit <= 0 {
		cfg.Report.Limit = 10
	}

	switch cfg.DB.Type {
	case "sqlite", "":
		cfg.DB.Type = "sqlite"
	case "mysql", "redshift":
		if cfg.DB.User == "" || cfg.DB.Pass == "" || cfg.DB.Host == "" || cfg.DB.Port == 0 || cfg.DB.Name == "" {
			return nil, fmt.Errorf("db type %s requires DB_USER, DB_PASSWORD, DB_HOST, DB_PORT and DB_NAME", cfg.DB.Type)
		}
	default:
		return nil, fmt.Errorf("unsupported db type %q", cfg.DB.Type)
	}

	return cfg, nil
}
