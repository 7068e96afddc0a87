package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Node        string      `yaml:"node" env:"NODE_NAME" env-default:"arena1"`
	Redis       Redis       `yaml:"redis"`
	Match       Match       `yaml:"match"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Session     Session     `yaml:"session"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Match struct {
	Module      string        `yaml:"module" env-default:"tic_tac_toe"`
	TickRate    int           `yaml:"tick-rate" env-default:"10"`
	GracePeriod time.Duration `yaml:"grace-period" env-default:"5s"`
	ListLimit   int           `yaml:"list-limit" env-default:"10"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env-default:"1h"`
	ResultTTL   time.Duration `yaml:"result-ttl" env-default:"24h"`
}

type Leaderboard struct {
	ID    string `yaml:"id" env-default:"global_leaderboard"`
	Limit int    `yaml:"limit" env-default:"20"`
}

type Session struct {
	WriteWait      time.Duration `yaml:"write-wait" env-default:"10s"`
	PongWait       time.Duration `yaml:"pong-wait" env-default:"60s"`
	MaxMessageSize int64         `yaml:"max-message-size" env-default:"4096"`
}

var ErrInvalidConfig = errors.New("invalid config")

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the file at path, applies env overrides and defaults, then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch {
	case that.Match.TickRate <= 0:
		return fmt.Errorf("%w: match tick-rate must be positive", ErrInvalidConfig)
	case that.Match.GracePeriod < 0:
		return fmt.Errorf("%w: match grace-period must not be negative", ErrInvalidConfig)
	case that.Leaderboard.Limit <= 0:
		return fmt.Errorf("%w: leaderboard limit must be positive", ErrInvalidConfig)
	case that.Session.PongWait <= 0:
		return fmt.Errorf("%w: session pong-wait must be positive", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// PingPeriod must stay below PongWait so the peer answers before the read deadline.
func (that *Session) PingPeriod() time.Duration {
	return that.PongWait * 9 / 10
}
