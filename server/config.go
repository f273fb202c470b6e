package server

import (
	"github.com/joeshaw/envdecode"
)

// Config holds server settings, populated from the environment
type Config struct {
	Addr         string `env:"ROOK_ADDR,default=:8000"`
	WinningScore int    `env:"ROOK_WINNING_SCORE,default=300"`
}

// ConfigFromEnv reads configuration from the environment
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
