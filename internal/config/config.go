package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	WebDir  string `mapstructure:"web_dir"`
}

// StorageConfig selects and configures one of the three storage
// backends: "file", "sqlite" or "postgres".
type StorageConfig struct {
	Backend     string `mapstructure:"backend"`
	DataDir     string `mapstructure:"data_dir"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresURL string `mapstructure:"postgres_url"`
	LogMode     bool   `mapstructure:"log_mode"`
}

// AdminConfig holds the single admin account. Password may be plain
// text or a bcrypt hash (recognized by its $2 prefix).
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type EmailConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Recipient string `mapstructure:"recipient"`
	From      string `mapstructure:"from"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Email   EmailConfig   `mapstructure:"email"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. PORTFOLIO_SERVER_PORT=9000
		v.SetEnvPrefix("PORTFOLIO")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		// env names the original deployment already uses
		_ = v.BindEnv("storage.postgres_url", "PORTFOLIO_STORAGE_POSTGRES_URL", "DATABASE_URL")
		_ = v.BindEnv("admin.username", "PORTFOLIO_ADMIN_USERNAME", "ADMIN_USERNAME")
		_ = v.BindEnv("admin.password", "PORTFOLIO_ADMIN_PASSWORD", "ADMIN_PASSWORD")
		_ = v.BindEnv("email.api_key", "PORTFOLIO_EMAIL_API_KEY", "EMAIL_SECRET_KEY")
		_ = v.BindEnv("email.recipient", "PORTFOLIO_EMAIL_RECIPIENT", "RECIPIENT_EMAIL")
		_ = v.BindEnv("email.from", "PORTFOLIO_EMAIL_FROM", "RESEND_FROM_EMAIL")

		v.SetDefault("server.address", "0.0.0.0")
		v.SetDefault("server.port", 8000)
		v.SetDefault("server.web_dir", ".")
		v.SetDefault("storage.backend", "file")
		v.SetDefault("storage.data_dir", "data")
		v.SetDefault("storage.sqlite_path", "portfolio.db")
		v.SetDefault("email.from", "onboarding@resend.dev")

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
