package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config fields whose zero value is meaningful carry no env-default,
// cleanenv would otherwise overwrite a zero read from the file.
type Config struct {
	LogLevel          string        `yaml:"log-level"           env:"LOG_LEVEL"           env-default:"info"`
	HTTPPort          string        `yaml:"http-port"           env:"HTTP_PORT"           env-default:"9090"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	GameTTL           time.Duration `yaml:"game-ttl"            env:"GAME_TTL"`
	Bot               Bot           `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Bot struct {
	Difficulty string `yaml:"difficulty" env:"BOT_DIFFICULTY" env-default:"hard"`
	Sequential bool   `yaml:"sequential" env:"BOT_SEQUENTIAL"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
