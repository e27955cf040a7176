package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	appDir   = "tictactoe-arcade"
	fileName = "config.yml"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777"`
	Redis             Redis  `yaml:"redis" env-prefix:"REDIS_"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./storage/arcade.db"`
	JWTSecretKey      string `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY"`
	Match             Match  `yaml:"match" env-prefix:"MATCH_"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

type Match struct {
	GameID            string        `yaml:"game-id" env:"GAME_ID" env-default:"tic-tac-toe"`
	ReplyDelay        time.Duration `yaml:"reply-delay" env:"REPLY_DELAY" env-default:"500ms"`
	DefaultDifficulty string        `yaml:"default-difficulty" env:"DEFAULT_DIFFICULTY" env-default:"medium"`
	ScoreTimeout      time.Duration `yaml:"score-timeout" env:"SCORE_TIMEOUT" env-default:"5s"`
}

// MustLoad - load all configurations from path, or from the environment alone when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate finds config.yml under the XDG config dirs, then in the working directory.
// It returns "" when there is none.
func Locate() string {
	if path, err := xdg.SearchConfigFile(filepath.Join(appDir, fileName)); err == nil {
		return path
	}

	if _, err := os.Stat(fileName); err == nil {
		if abs, err := filepath.Abs(fileName); err == nil {
			return abs
		}
	}

	return ""
}

func (that *Config) Validate() error {
	if _, err := entity.ParseDifficulty(that.Match.DefaultDifficulty); err != nil {
		return fmt.Errorf("match.default-difficulty: %w", err)
	}

	if that.Match.ReplyDelay < 0 {
		return fmt.Errorf("match.reply-delay must not be negative, got %s", that.Match.ReplyDelay)
	}

	return nil
}

func (that *Match) Difficulty() entity.Difficulty {
	difficulty, err := entity.ParseDifficulty(that.DefaultDifficulty)
	if err != nil {
		return entity.Medium
	}
	return difficulty
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
