package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Carousel CarouselConfig
	View     ViewConfig
	Redis    RedisConfig
	Log      LogConfig
}

type AppConfig struct {
	Port          string
	Env           string
	DefaultRegion string
	CORSOrigin    string
}

type CarouselConfig struct {
	AutoplayInterval time.Duration
	ServiceWindow    int
}

type ViewConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// Enabled reports whether a snapshot store was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type LogConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Environment-only deployments ship without a .env file.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:          viper.GetString("APP_PORT"),
			Env:           viper.GetString("APP_ENV"),
			DefaultRegion: viper.GetString("APP_DEFAULT_REGION"),
			CORSOrigin:    viper.GetString("APP_CORS_ORIGIN"),
		},
		Carousel: CarouselConfig{
			AutoplayInterval: parseDuration("CAROUSEL_AUTOPLAY_INTERVAL", 5*time.Second),
			ServiceWindow:    viper.GetInt("CAROUSEL_SERVICE_WINDOW"),
		},
		View: ViewConfig{
			IdleTimeout:   parseDuration("VIEW_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval: parseDuration("VIEW_SWEEP_INTERVAL", time.Minute),
		},
		Redis: RedisConfig{
			Host:        viper.GetString("REDIS_HOST"),
			Port:        viper.GetString("REDIS_PORT"),
			Password:    viper.GetString("REDIS_PASSWORD"),
			DB:          viper.GetInt("REDIS_DB"),
			SnapshotTTL: parseDuration("REDIS_SNAPSHOT_TTL", 30*time.Minute),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if config.Carousel.ServiceWindow < 1 {
		config.Carousel.ServiceWindow = 3
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_DEFAULT_REGION", "chile")
	viper.SetDefault("APP_CORS_ORIGIN", "*")
	viper.SetDefault("CAROUSEL_SERVICE_WINDOW", 3)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("LOG_LEVEL", "info")
}

// parseDuration falls back to def when the key is unset or malformed.
func parseDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
