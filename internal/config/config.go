package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local" validate:"oneof=local dev prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Upload     Upload     `yaml:"upload"`
	RateLimit  RateLimit  `yaml:"rate_limit"`
	Database   Database   `yaml:"database"`
	Kafka      Kafka      `yaml:"kafka"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env-default:""`
	Port            string        `yaml:"port" env:"PORT" env-default:"3000" validate:"required,numeric"`
	Timeout         time.Duration `yaml:"timeout" env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s" validate:"required"`
}

type Storage struct {
	UploadDir    string `yaml:"upload_dir" env-default:"./uploads" validate:"required"`
	PublicDir    string `yaml:"public_dir" env-default:"./static" validate:"required"`
	ThumbnailDir string `yaml:"thumbnail_dir" env-default:"./thumbnails" validate:"required"`
}

type Upload struct {
	MaxSize      int64    `yaml:"max_size" env-default:"5242880" validate:"gt=0"`
	AllowedTypes []string `yaml:"allowed_types" env-default:"image/jpeg,image/jpg,image/png,image/gif,image/webp" validate:"required,min=1"`
}

type RateLimit struct {
	Max             int           `yaml:"max" env-default:"20" validate:"gt=0"`
	Window          time.Duration `yaml:"window" env-default:"15m" validate:"required"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"1m" validate:"required"`
}

type Database struct {
	Enabled  bool   `yaml:"enabled" env-default:"false"`
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" env-default:"gallery"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env-default:"false"`
	Brokers []string `yaml:"brokers" env-default:"localhost:9092" validate:"required_if=Enabled true"`
	Topic   string   `yaml:"topic" env-default:"image-uploads" validate:"required_if=Enabled true"`
	GroupID string   `yaml:"group_id" env-default:"image-gallery" validate:"required_if=Enabled true"`
}

// MustLoad reads the config file named by --config or CONFIG_PATH. Without
// one, only the environment and the defaults above are used.
func MustLoad() *Config {
	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
