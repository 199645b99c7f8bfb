package config

import (
	"log"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production"`
		Port      int    `env:"APP_PORT" env-default:"8080" validate:"gte=1,lte=65535"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Notion struct {
		Secret  string `env:"NOTION_SECRET"`
		Version string `env:"NOTION_VERSION" env-default:"2022-06-28"`
		BaseURL string `env:"NOTION_BASE_URL" env-default:"https://api.notion.com" validate:"url"`
	}
	Tenants struct {
		Default string `env:"NOTION_DATABASE_ID"`
		Brutus  string `env:"NOTION_DATABASE_ID_BRUTUS"`
	}
	Widget struct {
		Platforms string `env:"WIDGET_PLATFORMS"`
		Formats   string `env:"WIDGET_FORMATS"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// .env.local wins over .env; both are optional in production
		_ = godotenv.Load(".env.local", ".env")

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}

		if err := validator.New().Struct(cfg); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
	})
	return cfg, nil
}
