package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"MASTERMIND_LOG_LEVEL" env-default:"warn"`
	Colors   int    `yaml:"colors" env:"MASTERMIND_COLORS" env-default:"6"`
	Scores   Scores `yaml:"scores"`
	Redis    Redis  `yaml:"redis"`
}

type Scores struct {
	Backend    string `yaml:"backend" env:"MASTERMIND_SCORES_BACKEND" env-default:"file"`
	FilePath   string `yaml:"file-path" env:"MASTERMIND_SCORES_FILE" env-default:"high_scores.txt"`
	SQLitePath string `yaml:"sqlite-path" env:"MASTERMIND_SCORES_SQLITE" env-default:"high_scores.db"`
}

type Redis struct {
	Host string `yaml:"host" env:"MASTERMIND_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"MASTERMIND_REDIS_PORT" env-default:"6379"`
}

// Load reads the config file at path, then the environment. A missing file leaves only
// the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
