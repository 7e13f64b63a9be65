package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Backend  BackendConfig  `yaml:"backend"`
	Mongo    MongoConfig    `yaml:"mongo"`
	WebApp   WebAppConfig   `yaml:"webapp"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
}

type MongoConfig struct {
	Url string `yaml:"url"`
}

type WebAppConfig struct {
	Addr string `yaml:"addr"`
	// FormURL is where the New House form is hosted; the uuid of the
	// prefill payload is appended as a query parameter.
	FormURL string `yaml:"form_url"`
}

type OpenAIConfig struct {
	Token string `yaml:"token"`
}

// LoadConfig reads the yaml file and applies environment overrides on top.
// A missing file is fine as long as the environment carries the values.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(&cfg)

	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend base url is not set")
	}
	if cfg.WebApp.Addr == "" {
		cfg.WebApp.Addr = ":5556"
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TG_BOT_API_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("LALA_API_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("ME_CONFIG_MONGODB_URL"); v != "" {
		cfg.Mongo.Url = v
	}
	if v := os.Getenv("WEBAPP_ADDR"); v != "" {
		cfg.WebApp.Addr = v
	}
	if v := os.Getenv("WEBAPP_FORM_URL"); v != "" {
		cfg.WebApp.FormURL = v
	}
	if v := os.Getenv("OPEN_AI_TOKEN"); v != "" {
		cfg.OpenAI.Token = v
	}
}
