package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeProcess = "process"
	ModeInProc  = "inproc"

	ScoreBackendFile   = "file"
	ScoreBackendRedis  = "redis"
	ScoreBackendSQLite = "sqlite"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"ARENA_MODE" env-default:"process"`
	Players  []int  `yaml:"players" env:"ARENA_PLAYERS" env-default:"0,1,2"`

	ShmName    string `yaml:"shm-name" env:"ARENA_SHM_NAME" env-default:"game_shm"`
	PipePrefix string `yaml:"pipe-prefix" env:"ARENA_PIPE_PREFIX" env-default:"/tmp/player_pipe_"`
	LogFile    string `yaml:"log-file" env:"ARENA_LOG_FILE" env-default:"game.log"`

	// HTTPPort - status endpoints; empty disables them.
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:""`

	ScoreFile    string `yaml:"score-file" env:"ARENA_SCORE_FILE" env-default:"scores.txt"`
	ScoreBackend string `yaml:"score-backend" env:"ARENA_SCORE_BACKEND" env-default:"file"`

	SchedulerInterval time.Duration `yaml:"scheduler-interval" env-default:"1s"`
	WorkerInterval    time.Duration `yaml:"worker-interval" env-default:"1s"`
	DrainInterval     time.Duration `yaml:"drain-interval" env-default:"100ms"`

	Redis  Redis  `yaml:"redis"`
	SQLite SQLite `yaml:"sqlite"`
	NATS   NATS   `yaml:"nats"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Key  string `yaml:"key" env-default:"tictactoe:scores"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"scores.db"`
}

// NATS - event broadcast settings. An empty URL disables the broadcast.
type NATS struct {
	URL     string `yaml:"url" env:"NATS_URL" env-default:""`
	Subject string `yaml:"subject" env-default:"tictactoe.events"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, overlays the environment and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
