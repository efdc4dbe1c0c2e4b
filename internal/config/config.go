package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Storage struct {
	SQLitePath string `toml:"sqlite_path"`
}

type Config struct {
	Server  Server
	Storage Storage
}

func New() (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	if path := os.Getenv("PADELENGINE_DB"); path != "" {
		cfg.Storage.SQLitePath = path
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "padelengine.sqlite"
	}
	return cfg, nil
}
