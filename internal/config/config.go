package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	LogsPath    string `yaml:"logs_path" env:"LOGS_PATH" env-default:"logs/app.log"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"storage/app.db"`
	HTTP        HTTP   `yaml:"http"`
	Auth        Auth   `yaml:"auth"`
}

type HTTP struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Auth struct {
	Secret   string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// MustLoad reads configuration from the file named by --config/CONFIG_PATH,
// falling back to environment variables only. A .env file is loaded first
// when present. Panics on any failure; the app cannot run half-configured.
func MustLoad() *Config {
	_ = godotenv.Load()

	path := fetchConfigPath()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("failed to read config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}
	return &cfg
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
