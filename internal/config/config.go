package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string     `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	HTTP        HTTPConfig `yaml:"http"`
	Auth        AuthConfig `yaml:"auth"`
}

type HTTPConfig struct {
	Port           int      `yaml:"port" env:"HTTP_PORT" env-default:"8082"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
}

type AuthConfig struct {
	// Shared HS256 secret of the identity provider that issues access tokens.
	AppSecret string `yaml:"app_secret" env:"AUTH_APP_SECRET" env-required:"true"`
}

func Load(path string) *Config {
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
