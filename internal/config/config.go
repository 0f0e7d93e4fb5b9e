package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL      string        `env:"API_BASE_URL"`
	APIToken        string        `env:"API_TOKEN"`
	CurrentUserID   string        `env:"CURRENT_USER_ID"`
	MetricsAddress  string        `env:"METRICS_ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
	PageLimit       int           `env:"PAGE_LIMIT"`
}

func LoadConfig() (*Config, error) {
	// .env подхватывается по возможности, его отсутствие не ошибка.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.APIBaseURL == "" {
		return nil, errors.New("API base URL is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.APIBaseURL, "a", "", "Order/membership API base URL")
	flag.StringVar(&flagConfig.APIToken, "t", "", "Bearer token for the API")
	flag.StringVar(&flagConfig.CurrentUserID, "u", "", "Current user identifier")
	flag.StringVar(&flagConfig.MetricsAddress, "m", "localhost:9190", "Metrics endpoint address in format host:port")
	flag.DurationVar(&flagConfig.RequestTimeout, "r", 10*time.Second, "Authoritative call timeout")
	flag.DurationVar(&flagConfig.RefreshInterval, "i", time.Minute, "Membership refresh interval")
	flag.IntVar(&flagConfig.PageLimit, "l", 100, "Page size for list requests")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		APIBaseURL:      defaultIfBlank(envConfig.APIBaseURL, flagsConfig.APIBaseURL),
		APIToken:        defaultIfBlank(envConfig.APIToken, flagsConfig.APIToken),
		CurrentUserID:   defaultIfBlank(envConfig.CurrentUserID, flagsConfig.CurrentUserID),
		MetricsAddress:  defaultIfBlank(envConfig.MetricsAddress, flagsConfig.MetricsAddress),
		RequestTimeout:  defaultIfZero(envConfig.RequestTimeout, flagsConfig.RequestTimeout),
		RefreshInterval: defaultIfZero(envConfig.RefreshInterval, flagsConfig.RefreshInterval),
		PageLimit:       defaultIfZero(envConfig.PageLimit, flagsConfig.PageLimit),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
