package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the service.
type Config struct {
	HTTPPort    int
	GinMode     string
	DatabaseURL string
	LogLevel    string

	WhatsApp WhatsAppConfig
	Telegram TelegramConfig
	Digest   DigestConfig
}

type WhatsAppConfig struct {
	Token         string
	VerifyToken   string
	PhoneNumberID string
}

type TelegramConfig struct {
	Token string // empty disables the Telegram channel
}

type DigestConfig struct {
	Time       string // HH:MM, empty disables the daily digest
	WhatsAppTo string
	TelegramTo int64
}

// Load reads configuration through Viper: optional config.yaml, environment
// variables on top, sane defaults underneath.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.mode", "release")
	v.SetDefault("database.url", "task_manager.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("whatsapp.verify_token", "your_verify_token")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		HTTPPort:    v.GetInt("http.port"),
		GinMode:     v.GetString("http.mode"),
		DatabaseURL: v.GetString("database.url"),
		LogLevel:    v.GetString("log.level"),
		WhatsApp: WhatsAppConfig{
			Token:         v.GetString("whatsapp.token"),
			VerifyToken:   v.GetString("whatsapp.verify_token"),
			PhoneNumberID: v.GetString("whatsapp.phone_number_id"),
		},
		Telegram: TelegramConfig{
			Token: v.GetString("telegram.token"),
		},
		Digest: DigestConfig{
			Time:       v.GetString("digest.time"),
			WhatsAppTo: v.GetString("digest.whatsapp_to"),
			TelegramTo: v.GetInt64("digest.telegram_to"),
		},
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("invalid http port %d", cfg.HTTPPort)
	}

	return cfg, nil
}
